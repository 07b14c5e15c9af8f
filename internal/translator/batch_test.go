package translator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytbili/subpipe/internal/subtitle"
)

// fakeCollaborator replays scripted responses; an empty script entry
// means the attempt errors.
type fakeCollaborator struct {
	responses []string
	calls     int
	payloads  []string
}

func (f *fakeCollaborator) Complete(_ context.Context, _, payload string) (string, error) {
	f.calls++
	f.payloads = append(f.payloads, payload)
	if len(f.responses) == 0 {
		return "", errors.New("no response scripted")
	}
	response := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	if response == "" {
		return "", errors.New("transient failure")
	}
	return response, nil
}

func testEntries(n int) []subtitle.Entry {
	entries := make([]subtitle.Entry, n)
	for i := range entries {
		entries[i] = subtitle.Entry{
			Index: i + 1,
			Start: time.Duration(i) * time.Second,
			End:   time.Duration(i)*time.Second + 900*time.Millisecond,
			Text:  fmt.Sprintf("Line %d", i+1),
		}
	}
	return entries
}

func bilingualResponse(seqs ...int) string {
	var lines []string
	for _, seq := range seqs {
		lines = append(lines, fmt.Sprintf("%d: Line %d", seq, seq))
		lines = append(lines, fmt.Sprintf("第%d行", seq))
	}
	return strings.Join(lines, "\n")
}

func TestFormatBatch(t *testing.T) {
	entries := []subtitle.Entry{
		{Index: 1, Text: "First subtitle"},
		{Index: 2, Text: "Second\nsubtitle"},
		{Index: 3, Text: "Third subtitle"},
	}

	formatted := FormatBatch(entries, 0)
	assert.Equal(t, "1: First subtitle\n2: Second subtitle\n3: Third subtitle", formatted)

	// global sequence numbers follow the offset, not the entry indices
	formatted = FormatBatch(entries[:2], 5)
	assert.Equal(t, "6: First subtitle\n7: Second subtitle", formatted)
}

func TestTranslateAllCompleteFirstAttempt(t *testing.T) {
	collab := &fakeCollaborator{responses: []string{bilingualResponse(1, 2, 3)}}
	tr := NewBatchTranslator(collab, Config{BatchSize: 10})

	resolved, err := tr.TranslateAll(context.Background(), testEntries(3))
	require.NoError(t, err)
	require.Len(t, resolved, 3)

	assert.Equal(t, 1, collab.calls, "complete valid response should not be retried")
	for i, r := range resolved {
		assert.Equal(t, OutcomeTranslated, r.Outcome)
		assert.Equal(t, fmt.Sprintf("Line %d\n第%d行", i+1, i+1), r.Text)
	}
}

func TestTranslateAllFillsMissingAfterRetries(t *testing.T) {
	// collaborator only ever returns units 1, 3 and 5
	collab := &fakeCollaborator{responses: []string{bilingualResponse(1, 3, 5)}}
	tr := NewBatchTranslator(collab, Config{BatchSize: 10, MaxAttempts: 5})

	resolved, err := tr.TranslateAll(context.Background(), testEntries(5))
	require.NoError(t, err)
	require.Len(t, resolved, 5)

	assert.Equal(t, 5, collab.calls, "incomplete responses should exhaust the retry budget")

	assert.Equal(t, OutcomeTranslated, resolved[0].Outcome)
	assert.Equal(t, OutcomeFilled, resolved[1].Outcome)
	assert.Equal(t, OutcomeTranslated, resolved[2].Outcome)
	assert.Equal(t, OutcomeFilled, resolved[3].Outcome)
	assert.Equal(t, OutcomeTranslated, resolved[4].Outcome)

	assert.Equal(t, "Line 2", resolved[1].Text)
	assert.Equal(t, "Line 4", resolved[3].Text)
}

func TestTranslateAllKeepsBestMapAcrossAttempts(t *testing.T) {
	// first attempt covers two units, second attempt errors, third covers
	// all three; the best map grows monotonically
	collab := &fakeCollaborator{responses: []string{
		bilingualResponse(1, 2),
		"",
		bilingualResponse(1, 2, 3),
	}}
	tr := NewBatchTranslator(collab, Config{BatchSize: 10, MaxAttempts: 5})

	resolved, err := tr.TranslateAll(context.Background(), testEntries(3))
	require.NoError(t, err)

	assert.Equal(t, 3, collab.calls, "should stop as soon as a complete valid map arrives")
	for _, r := range resolved {
		assert.Equal(t, OutcomeTranslated, r.Outcome)
	}
}

func TestTranslateAllErrorsConsumeRetries(t *testing.T) {
	collab := &fakeCollaborator{} // every call errors
	tr := NewBatchTranslator(collab, Config{BatchSize: 10, MaxAttempts: 3})

	resolved, err := tr.TranslateAll(context.Background(), testEntries(2))
	require.NoError(t, err, "translation exhaustion is degradation, not failure")
	require.Len(t, resolved, 2)

	assert.Equal(t, 3, collab.calls)
	for i, r := range resolved {
		assert.Equal(t, OutcomeFilled, r.Outcome)
		assert.Equal(t, fmt.Sprintf("Line %d", i+1), r.Text)
	}
}

func TestTranslateAllBatchOffsets(t *testing.T) {
	// 5 entries with batch size 2: offsets 0, 2, 4 and sequence
	// numbers 1-2, 3-4, 5
	collab := &fakeCollaborator{responses: []string{
		bilingualResponse(1, 2),
		bilingualResponse(3, 4),
		bilingualResponse(5),
	}}
	tr := NewBatchTranslator(collab, Config{BatchSize: 2})

	resolved, err := tr.TranslateAll(context.Background(), testEntries(5))
	require.NoError(t, err)
	require.Len(t, resolved, 5)

	require.Equal(t, 3, collab.calls)
	assert.Equal(t, "1: Line 1\n2: Line 2", collab.payloads[0])
	assert.Equal(t, "3: Line 3\n4: Line 4", collab.payloads[1])
	assert.Equal(t, "5: Line 5", collab.payloads[2])

	for i, r := range resolved {
		assert.Equal(t, OutcomeTranslated, r.Outcome, "entry %d", i+1)
	}
}

func TestTranslateAllCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	collab := &fakeCollaborator{responses: []string{bilingualResponse(1)}}
	tr := NewBatchTranslator(collab, Config{})

	_, err := tr.TranslateAll(ctx, testEntries(1))
	assert.Error(t, err)
	assert.Zero(t, collab.calls)
}
