package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

const genesisPrevHash = "0"

type Blockchain struct {
	mu     sync.RWMutex
	blocks []Block
}

// NewBlockchain creates a new blockchain with an initialized genesis block.
// The genesis block has index 0, previous hash "0" and an empty run.
func NewBlockchain() *Blockchain {
	bc := &Blockchain{
		blocks: make([]Block, 0),
	}

	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  genesisPrevHash,
		Run:       Run{Status: "genesis"},
		Metadata:  Metadata{RunID: uuid.NewString()},
	}
	genesis.Hash = calculateHash(genesis)
	bc.blocks = append(bc.blocks, genesis)

	return bc
}

// FromBlocks rebuilds a blockchain from previously stored blocks and verifies it.
func FromBlocks(blocks []Block) (*Blockchain, error) {
	bc := &Blockchain{blocks: append([]Block(nil), blocks...)}
	if err := bc.Verify(); err != nil {
		return nil, err
	}
	return bc, nil
}

// Append adds a block recording run to the chain and returns it. The extra
// parameter can optionally contain additional metadata.
func (bc *Blockchain) Append(run Run, extra ...map[string]string) (Block, error) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if len(bc.blocks) == 0 {
		return Block{}, fmt.Errorf("blockchain is empty")
	}

	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = extra[0]
	}
	latest := bc.blocks[len(bc.blocks)-1]

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Run:       run,
		Metadata: Metadata{
			RunID: uuid.NewString(),
			Extra: extraMsg,
		},
	}
	newBlock.Hash = calculateHash(newBlock)

	if err := validateBlock(newBlock, latest); err != nil {
		return Block{}, fmt.Errorf("invalid block: %w", err)
	}

	bc.blocks = append(bc.blocks, newBlock)
	return newBlock, nil
}

// GetLatest returns the most recently added block in the blockchain.
// Returns an error if the blockchain is empty.
func (bc *Blockchain) GetLatest() (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return Block{}, fmt.Errorf("blockchain is empty")
	}

	return bc.blocks[len(bc.blocks)-1], nil
}

// GetByIndex retrieves a block by its index in the chain.
func (bc *Blockchain) GetByIndex(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("index out of range")
	}

	return bc.blocks[index], nil
}

// Blocks returns a copy of every block, genesis first.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return append([]Block(nil), bc.blocks...)
}

func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return len(bc.blocks)
}

// Verify validates the integrity of the entire blockchain by checking the genesis block
// and verifying each subsequent block's hash, index continuity, and previous hash linkage.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return fmt.Errorf("empty blockchain")
	}

	genesis := bc.blocks[0]
	if genesis.Index != 0 || genesis.PrevHash != genesisPrevHash || genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("invalid genesis block")
	}

	for i := 1; i < len(bc.blocks); i++ {
		if err := validateBlock(bc.blocks[i], bc.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}

	return nil
}

// validateBlock verifies that a block is valid relative to the previous block. It checks
// index continuity, previous hash linkage and current hash validity.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}

	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}

	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}

	return nil
}

// calculateHash computes the SHA256 hash of a block based on its index, timestamp, previous
// hash, run, run ID and extra metadata. Run and extra are JSON marshaled before hashing.
func calculateHash(block Block) string {
	runBytes, _ := json.Marshal(block.Run)
	// nil and empty Extra hash alike, as the store loads both as nil.
	var extraBytes []byte
	if len(block.Metadata.Extra) > 0 {
		extraBytes, _ = json.Marshal(block.Metadata.Extra)
	}

	data := fmt.Sprintf("%d%d%s%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(runBytes),
		block.Metadata.RunID,
		string(extraBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
