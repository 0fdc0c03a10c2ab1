// Package simulation estimates the probability of a poker hand category
// appearing at showdown by Monte Carlo simulation.
//
// Each trial deals random pockets and a full board, then asks the evaluator
// whether any player (or the board alone) makes the target category. Trials
// are spread over independent workers, each with its own random stream
// derived from a single master seed, and their hit counts are summed.
package simulation
