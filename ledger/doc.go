// Package ledger implements an append-only, hash-chained history of
// simulation runs.
//
// # Core Components
//
// Blockchain: an append-only log of runs with SHA-256 hash chaining for
// tamper detection.
//
// Block: a single run (parameters, hit count, estimate and seed) together
// with its run ID and the hash of the previous block.
//
// # Usage
//
// Create a blockchain, or rebuild one from stored blocks with FromBlocks,
// then Append a block per run. Verify can be called at any time to ensure
// the chain remains intact; FromBlocks refuses a chain that does not verify.
package ledger
