package subtitle

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"

	"github.com/ytbili/subpipe/pkg/log"
)

var timeLineRe = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2},\d{3})\s*-->\s*(\d{2}:\d{2}:\d{2},\d{3})`)

// DefaultReader is the default subtitle file reader
type DefaultReader struct{}

// NewReader creates a new subtitle file reader
func NewReader() Reader {
	return &DefaultReader{}
}

// Read parses an SRT file into a File. Malformed blocks are skipped,
// not fatal; only I/O level failures return an error.
func (r *DefaultReader) Read(path string) (*File, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".srt") {
		return nil, fmt.Errorf("only SRT format subtitle files are supported: %s", path)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("subtitle file does not exist: %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}

	entries, skipped := Parse(string(content))
	if skipped > 0 {
		log.Warn("skipped %d malformed subtitle blocks in %s", skipped, path)
	}

	return &File{
		Entries:  entries,
		Language: detectLanguage(entries),
		Format:   "SRT",
		Skipped:  skipped,
	}, nil
}

var blockSepRe = regexp.MustCompile(`\n\s*\n`)

// Parse splits SRT content into blank-line separated blocks and parses each
// one. Blocks with a non-integer index or a malformed time line are counted
// and dropped so trailing garbage never aborts the stream.
func Parse(content string) (entries []Entry, skipped int) {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	for _, block := range blockSepRe.Split(strings.TrimSpace(content), -1) {
		entry, err := parseBlock(block)
		if err != nil {
			if strings.TrimSpace(block) != "" {
				log.Debug("skipping unparsable subtitle block: %v", err)
				skipped++
			}
			continue
		}
		entries = append(entries, entry)
	}

	return entries, skipped
}

func parseBlock(block string) (Entry, error) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	if len(lines) < 3 {
		return Entry{}, fmt.Errorf("block has %d lines, need at least 3", len(lines))
	}

	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return Entry{}, fmt.Errorf("non-integer index %q", lines[0])
	}

	matches := timeLineRe.FindStringSubmatch(strings.TrimSpace(lines[1]))
	if matches == nil {
		return Entry{}, fmt.Errorf("malformed time line %q", lines[1])
	}

	start, err := ParseTimestamp(matches[1])
	if err != nil {
		return Entry{}, err
	}
	end, err := ParseTimestamp(matches[2])
	if err != nil {
		return Entry{}, err
	}

	var textLines []string
	for _, line := range lines[2:] {
		textLines = append(textLines, strings.TrimSpace(line))
	}

	return Entry{
		Index: index,
		Start: start,
		End:   end,
		Text:  strings.Join(textLines, "\n"),
	}, nil
}

// detectLanguage picks the dominant language across all entries
func detectLanguage(entries []Entry) language.Tag {
	if len(entries) == 0 {
		return language.Und
	}

	langMap := make(map[string]int)

	for _, entry := range entries {
		lang := whatlanggo.DetectLang(entry.Text).Iso6391()
		langMap[lang]++
	}

	var topLang string
	var topCount int
	for lang, count := range langMap {
		if count > topCount {
			topLang = lang
			topCount = count
		}
	}

	return language.All.Make(topLang)
}
