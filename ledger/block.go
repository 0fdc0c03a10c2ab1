package ledger

// Block is one entry of the run ledger.
type Block struct {
	Index     int      `json:"index"`
	Timestamp int64    `json:"timestamp"`
	PrevHash  string   `json:"prev_hash"`
	Hash      string   `json:"hash"`
	Run       Run      `json:"run"`
	Metadata  Metadata `json:"metadata"`
}

// Run records the parameters and outcome of a single simulation.
type Run struct {
	Players     int     `json:"players"`
	Hand        string  `json:"hand"`
	Cumulative  bool    `json:"cumulative"`
	Status      string  `json:"status"`
	Hits        int     `json:"hits"`
	Trials      int     `json:"trials"`
	Probability float64 `json:"probability"`
	Seed        uint64  `json:"seed"`
	Workers     int     `json:"workers"`
}

type Metadata struct {
	RunID string            `json:"run_id"`
	Extra map[string]string `json:"extra,omitempty"`
}
