package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// DefaultWriter is the default subtitle file writer
type DefaultWriter struct{}

// NewWriter creates a new subtitle file writer
func NewWriter() Writer {
	return &DefaultWriter{}
}

// Write serializes the subtitle stream to path in SRT form
func (w *DefaultWriter) Write(path string, subtitle *File) error {
	if subtitle == nil {
		return fmt.Errorf("subtitle data is empty")
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	return Serialize(writer, subtitle.Entries)
}

// Serialize writes entries in SRT block form: index line, time line,
// text lines, trailing blank line. The exact inverse of Parse for
// well-formed input.
func Serialize(w io.Writer, entries []Entry) error {
	for _, entry := range entries {
		_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n",
			entry.Index,
			FormatTimestamp(entry.Start),
			FormatTimestamp(entry.End),
			entry.Text)
		if err != nil {
			return fmt.Errorf("failed to write subtitle entry %d: %w", entry.Index, err)
		}
	}
	return nil
}
