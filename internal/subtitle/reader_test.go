package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:04,000
Hello, world!

2
00:00:04,500 --> 00:00:08,000
This is a test.
Second line.

3
00:00:08,500 --> 00:00:12,000
Let's learn programming.
`

func TestParse(t *testing.T) {
	entries, skipped := Parse(sampleSRT)
	require.Len(t, entries, 3)
	assert.Zero(t, skipped)

	assert.Equal(t, 1, entries[0].Index)
	assert.Equal(t, "Hello, world!", entries[0].Text)
	assert.Equal(t, "This is a test.\nSecond line.", entries[1].Text)
	assert.Equal(t, "00:00:08,500", FormatTimestamp(entries[2].Start))
	assert.Equal(t, "00:00:12,000", FormatTimestamp(entries[2].End))
}

func TestParseSkipsMalformedBlocks(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:04,000
Good block

not-a-number
00:00:04,500 --> 00:00:08,000
Bad index

2
garbage time line
Bad time

3
00:00:08,500 --> 00:00:12,000
Second good block
`
	entries, skipped := Parse(content)
	require.Len(t, entries, 2)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, 1, entries[0].Index)
	assert.Equal(t, 3, entries[1].Index)
}

func TestParseCRLFAndTrailingGarbage(t *testing.T) {
	content := strings.ReplaceAll(sampleSRT, "\n", "\r\n") + "\r\ntrailing junk\r\n"
	entries, skipped := Parse(content)
	assert.Len(t, entries, 3)
	assert.Equal(t, 1, skipped)
}

func TestReadDetectsLanguage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.srt")
	require.NoError(t, os.WriteFile(path, []byte(sampleSRT), 0644))

	file, err := NewReader().Read(path)
	require.NoError(t, err)
	assert.Equal(t, "SRT", file.Format)
	assert.Equal(t, language.English, file.Language)
	assert.Len(t, file.Entries, 3)
}

func TestReadRejectsNonSRT(t *testing.T) {
	_, err := NewReader().Read("video.ass")
	assert.Error(t, err)
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewReader().Read(filepath.Join(t.TempDir(), "missing.srt"))
	assert.Error(t, err)
}
