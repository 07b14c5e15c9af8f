package ass

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytbili/subpipe/internal/subtitle"
)

func renderToString(t *testing.T, entries []subtitle.Entry, opts Options) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, NewRenderer(opts).Render(&sb, entries))
	return sb.String()
}

func TestRenderHeader(t *testing.T) {
	script := renderToString(t, nil, Options{})

	assert.Contains(t, script, "[Script Info]")
	assert.Contains(t, script, "Title: Bilingual Subtitles")
	assert.Contains(t, script, "PlayResX: 1280")
	assert.Contains(t, script, "PlayResY: 720")
	assert.Contains(t, script, "Style: Primary,Arial,20,")
	assert.Contains(t, script, "Style: Secondary,Arial,16,")
	assert.Contains(t, script, "[Events]")
}

func TestRenderBilingualEntry(t *testing.T) {
	entries := []subtitle.Entry{
		{
			Index: 1,
			Start: 1500 * time.Millisecond,
			End:   3750 * time.Millisecond,
			Text:  "Hello world\n你好世界",
		},
	}

	script := renderToString(t, entries, Options{})

	assert.Contains(t, script, "Dialogue: 1,0:00:01.50,0:00:03.75,Primary,,0,0,0,,你好世界")
	assert.Contains(t, script, "Dialogue: 0,0:00:01.50,0:00:03.75,Secondary,,0,0,0,,Hello world")
}

func TestRenderMonolingualEntryOmitsEmptyGroup(t *testing.T) {
	entries := []subtitle.Entry{
		{Index: 1, Start: 0, End: time.Second, Text: "Only English here"},
		{Index: 2, Start: 2 * time.Second, End: 3 * time.Second, Text: "只有中文"},
	}

	script := renderToString(t, entries, Options{})

	assert.Equal(t, 1, strings.Count(script, "Secondary,,"))
	assert.Equal(t, 1, strings.Count(script, "Primary,,"))
	assert.NotContains(t, script, ",,\n", "no event should carry empty text")
}

func TestRenderMultilineGroupsJoinedWithHardBreak(t *testing.T) {
	entries := []subtitle.Entry{
		{
			Index: 1,
			Start: 0,
			End:   2 * time.Second,
			Text:  "first line\nsecond line\n第一行\n第二行",
		},
	}

	script := renderToString(t, entries, Options{})

	assert.Contains(t, script, `first line\Nsecond line`)
	assert.Contains(t, script, `第一行\N第二行`)
}

func TestWriteEmitsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ass")
	file := &subtitle.File{Entries: []subtitle.Entry{
		{Index: 1, Start: 0, End: time.Second, Text: "Hello\n你好"},
	}}

	require.NoError(t, NewRenderer(Options{}).Write(path, file))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\xEF\xBB\xBF[Script Info]"))
}

func TestCustomFontSizes(t *testing.T) {
	script := renderToString(t, nil, Options{PrimaryFontSize: 17, SecondaryFontSize: 13})

	assert.Contains(t, script, "Style: Primary,Arial,17,")
	assert.Contains(t, script, "Style: Secondary,Arial,13,")
}
