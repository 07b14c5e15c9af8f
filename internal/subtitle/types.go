package subtitle

import (
	"time"

	"golang.org/x/text/language"
)

// Reader is the interface for reading subtitle files
type Reader interface {
	Read(path string) (*File, error)
}

// Writer is the interface for writing subtitle files
type Writer interface {
	Write(path string, subtitle *File) error
}

// Entry represents a single timed caption. Text holds one or more display
// lines joined with "\n". Index is the ordinal carried by the source file;
// it is not required to be contiguous.
type Entry struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// File represents a parsed subtitle stream
type File struct {
	Entries  []Entry
	Language language.Tag
	Format   string // e.g. SRT
	Skipped  int    // blocks dropped by the tolerant parser
}
