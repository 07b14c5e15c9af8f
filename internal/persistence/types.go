package persistence

import "time"

const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Record is one processed input file in the history store. Filled counts
// entries that kept their original text after translation retries ran out.
type Record struct {
	InputPath   string
	OutputPath  string
	ScriptPath  string
	Status      string
	Filled      int
	RunID       string
	ProcessedAt time.Time
}
