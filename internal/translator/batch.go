package translator

import (
	"context"
	"fmt"
	"strings"

	"github.com/ytbili/subpipe/internal/subtitle"
	"github.com/ytbili/subpipe/pkg/log"
)

// BatchTranslator drives the collaborator over a caption stream in
// fixed-size sequential batches. The collaborator is treated as a
// single-flight, rate-sensitive dependency: one batch must finish
// (success or retry exhaustion) before the next begins.
type BatchTranslator struct {
	collaborator Collaborator
	cfg          Config
}

func NewBatchTranslator(collaborator Collaborator, cfg Config) *BatchTranslator {
	return &BatchTranslator{
		collaborator: collaborator,
		cfg:          cfg.withDefaults(),
	}
}

// TranslateAll resolves a text for every entry. Translation misses degrade
// to the original text, never to an error; the only returned error is a
// context cancellation, which stops further batches.
func (t *BatchTranslator) TranslateAll(ctx context.Context, entries []subtitle.Entry) ([]Resolution, error) {
	resolved := make([]Resolution, 0, len(entries))

	for offset := 0; offset < len(entries); offset += t.cfg.BatchSize {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("translation cancelled: %w", err)
		}

		end := min(offset+t.cfg.BatchSize, len(entries))
		batch := entries[offset:end]

		best := t.translateBatch(ctx, batch, offset)

		filled := 0
		for i, entry := range batch {
			seq := offset + i + 1
			if text, ok := best[seq]; ok && text != "" {
				resolved = append(resolved, Resolution{Text: text, Outcome: OutcomeTranslated})
			} else {
				resolved = append(resolved, Resolution{Text: entry.Text, Outcome: OutcomeFilled})
				filled++
			}
		}
		if filled > 0 {
			log.Warn("batch %d-%d: %d of %d entries untranslated after %d attempts, kept original text",
				offset+1, end, filled, len(batch), t.cfg.MaxAttempts)
		}
	}

	// Should be unreachable: per-batch fill always yields one resolution
	// per entry. Kept as a guard against future batch-logic regressions.
	if len(resolved) != len(entries) {
		log.Error("resolved %d texts for %d entries, refilling from originals", len(resolved), len(entries))
		refilled := make([]Resolution, len(entries))
		for i, entry := range entries {
			if i < len(resolved) {
				refilled[i] = resolved[i]
			} else {
				refilled[i] = Resolution{Text: entry.Text, Outcome: OutcomeFilled}
			}
		}
		resolved = refilled
	}

	return resolved, nil
}

// translateBatch runs the retry loop for one batch and returns the best
// map of global sequence number to unit text seen across attempts. The
// best map only ever grows (monotonic improvement); a complete and
// format-valid parse short-circuits the loop.
func (t *BatchTranslator) translateBatch(ctx context.Context, batch []subtitle.Entry, offset int) map[int]string {
	payload := FormatBatch(batch, offset)
	best := make(map[int]string)

	for attempt := 1; attempt <= t.cfg.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return best
		}

		response, err := t.collaborator.Complete(ctx, t.cfg.SystemPrompt, payload)
		if err != nil {
			log.Warn("translation attempt %d/%d for batch %d-%d failed: %v",
				attempt, t.cfg.MaxAttempts, offset+1, offset+len(batch), err)
			continue
		}

		parsed, valid := ParseBatchResult(response)
		if len(parsed) > len(best) {
			best = parsed
		}
		if valid && coversBatch(parsed, offset, len(batch)) {
			return parsed
		}
		log.Debug("attempt %d/%d for batch %d-%d: %d/%d units, format valid=%v",
			attempt, t.cfg.MaxAttempts, offset+1, offset+len(batch), len(parsed), len(batch), valid)
	}

	return best
}

// FormatBatch renders entries as "<global-seq>: <text>" lines, one per
// entry. Internal display line breaks are flattened to spaces so each
// entry occupies exactly one payload line.
func FormatBatch(batch []subtitle.Entry, offset int) string {
	lines := make([]string, len(batch))
	for i, entry := range batch {
		text := strings.ReplaceAll(entry.Text, "\n", " ")
		lines[i] = fmt.Sprintf("%d: %s", offset+i+1, text)
	}
	return strings.Join(lines, "\n")
}

func coversBatch(parsed map[int]string, offset, size int) bool {
	for i := 0; i < size; i++ {
		if text, ok := parsed[offset+i+1]; !ok || text == "" {
			return false
		}
	}
	return true
}
