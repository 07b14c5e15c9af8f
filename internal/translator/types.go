package translator

import "context"

// Collaborator is the external translation boundary: a single chat-style
// call that may fail transiently or return malformed text. No retry or
// backoff lives behind this interface; the orchestrator owns both.
type Collaborator interface {
	Complete(ctx context.Context, systemPrompt, userPayload string) (string, error)
}

// Outcome tags how an entry's text was resolved.
type Outcome int

const (
	// OutcomeTranslated means the collaborator supplied the text.
	OutcomeTranslated Outcome = iota
	// OutcomeFilled means the retry budget ran out and the original
	// text was kept.
	OutcomeFilled
)

// Resolution is one entry's resolved text plus how it was obtained.
type Resolution struct {
	Text    string
	Outcome Outcome
}

const (
	// DefaultBatchSize is the number of entries sent per collaborator call.
	DefaultBatchSize = 10
	// DefaultMaxAttempts bounds retries per batch.
	DefaultMaxAttempts = 5
)

// Config tunes the batch orchestrator.
type Config struct {
	BatchSize    int
	MaxAttempts  int
	SystemPrompt string
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.SystemPrompt == "" {
		c.SystemPrompt = BilingualSystemPrompt("English", "Chinese")
	}
	return c
}
