package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/luca-patrignani/poker-odds/ledger"
)

// SQLiteDB persists run ledger blocks in a SQLite database.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB creates a new SQLite database connection
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Migrate creates the ledger tables if they do not exist yet.
func (s *SQLiteDB) Migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS blocks (
			idx INTEGER PRIMARY KEY,
			timestamp INTEGER NOT NULL,
			prev_hash TEXT NOT NULL,
			hash TEXT NOT NULL UNIQUE,
			run_id TEXT NOT NULL,
			hand TEXT NOT NULL,
			players INTEGER NOT NULL,
			probability REAL NOT NULL,
			run_json TEXT NOT NULL,
			extra_json TEXT NOT NULL DEFAULT '{}',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_blocks_hand ON blocks(hand, players)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.ExecContext(ctx, migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SaveBlock stores a ledger block. Blocks are keyed by index, so saving the
// same index twice fails.
func (s *SQLiteDB) SaveBlock(ctx context.Context, b ledger.Block) error {
	runJSON, err := json.Marshal(b.Run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}
	extra := b.Metadata.Extra
	if extra == nil {
		extra = map[string]string{}
	}
	extraJSON, err := json.Marshal(extra)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	query := `
		INSERT INTO blocks (idx, timestamp, prev_hash, hash, run_id, hand, players, probability, run_json, extra_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query,
		b.Index, b.Timestamp, b.PrevHash, b.Hash, b.Metadata.RunID,
		b.Run.Hand, b.Run.Players, b.Run.Probability,
		string(runJSON), string(extraJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save block %d: %w", b.Index, err)
	}
	return nil
}

// LoadBlocks returns every stored block ordered by index.
func (s *SQLiteDB) LoadBlocks(ctx context.Context) ([]ledger.Block, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT idx, timestamp, prev_hash, hash, run_id, run_json, extra_json FROM blocks ORDER BY idx`)
	if err != nil {
		return nil, fmt.Errorf("failed to query blocks: %w", err)
	}
	defer rows.Close()

	var blocks []ledger.Block
	for rows.Next() {
		var b ledger.Block
		var runJSON, extraJSON string
		if err := rows.Scan(&b.Index, &b.Timestamp, &b.PrevHash, &b.Hash, &b.Metadata.RunID, &runJSON, &extraJSON); err != nil {
			return nil, fmt.Errorf("failed to scan block: %w", err)
		}
		if err := json.Unmarshal([]byte(runJSON), &b.Run); err != nil {
			return nil, fmt.Errorf("failed to decode run of block %d: %w", b.Index, err)
		}
		var extra map[string]string
		if err := json.Unmarshal([]byte(extraJSON), &extra); err != nil {
			return nil, fmt.Errorf("failed to decode metadata of block %d: %w", b.Index, err)
		}
		if len(extra) > 0 {
			b.Metadata.Extra = extra
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

// OpenLedger loads the chain stored in the database, verifying it, or starts
// a new one and stores its genesis block when the database is empty.
func (s *SQLiteDB) OpenLedger(ctx context.Context) (*ledger.Blockchain, error) {
	blocks, err := s.LoadBlocks(ctx)
	if err != nil {
		return nil, err
	}
	if len(blocks) > 0 {
		bc, err := ledger.FromBlocks(blocks)
		if err != nil {
			return nil, fmt.Errorf("stored ledger is corrupted: %w", err)
		}
		return bc, nil
	}

	bc := ledger.NewBlockchain()
	genesis, err := bc.GetLatest()
	if err != nil {
		return nil, err
	}
	if err := s.SaveBlock(ctx, genesis); err != nil {
		return nil, err
	}
	return bc, nil
}

// Record appends run to bc and stores the new block.
func (s *SQLiteDB) Record(ctx context.Context, bc *ledger.Blockchain, run ledger.Run, extra ...map[string]string) (ledger.Block, error) {
	b, err := bc.Append(run, extra...)
	if err != nil {
		return ledger.Block{}, err
	}
	if err := s.SaveBlock(ctx, b); err != nil {
		return ledger.Block{}, err
	}
	return b, nil
}
