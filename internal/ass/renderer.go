// Package ass renders bilingual caption streams as Advanced SubStation
// Alpha scripts, with separate styles for the two languages so players
// can show the translation larger than the source text.
package ass

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ytbili/subpipe/internal/subtitle"
	"github.com/ytbili/subpipe/pkg/log"
)

const (
	// PrimaryStyle is the target-language style (larger CJK font).
	PrimaryStyle = "Primary"
	// SecondaryStyle is the source-language style (smaller font).
	SecondaryStyle = "Secondary"

	DefaultPrimaryFontSize   = 20
	DefaultSecondaryFontSize = 16

	utf8BOM = "\xEF\xBB\xBF"
)

// Options control the script header and the two dialogue styles.
type Options struct {
	Title             string
	PrimaryFontSize   int
	SecondaryFontSize int
	PlayResX          int
	PlayResY          int
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Bilingual Subtitles"
	}
	if o.PrimaryFontSize <= 0 {
		o.PrimaryFontSize = DefaultPrimaryFontSize
	}
	if o.SecondaryFontSize <= 0 {
		o.SecondaryFontSize = DefaultSecondaryFontSize
	}
	if o.PlayResX <= 0 {
		o.PlayResX = 1280
	}
	if o.PlayResY <= 0 {
		o.PlayResY = 720
	}
	return o
}

// Renderer writes *.ass scripts. It satisfies subtitle.Writer so the
// pipeline can treat SRT and ASS outputs uniformly.
type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts.withDefaults()}
}

// Write renders the file's entries to path as UTF-8 with a BOM. Players
// on Windows still sniff the BOM to pick the right decoder.
func (r *Renderer) Write(path string, file *subtitle.File) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create ASS file %s: %w", path, err)
	}
	defer out.Close()

	if _, err := io.WriteString(out, utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM to %s: %w", path, err)
	}
	if err := r.Render(out, file.Entries); err != nil {
		return fmt.Errorf("failed to render ASS file %s: %w", path, err)
	}

	log.Info("Rendered ASS script: %s (%d entries)", path, len(file.Entries))
	return nil
}

// Render emits the script header, both styles and one or two Dialogue
// events per entry. Lines inside an entry are classified by CJK content:
// CJK lines form a Primary event on layer 1, the rest a Secondary event
// on layer 0. An event is omitted when its group is empty.
func (r *Renderer) Render(w io.Writer, entries []subtitle.Entry) error {
	var script strings.Builder

	r.writeHeader(&script)

	for _, entry := range entries {
		start := subtitle.FormatScriptTimestamp(entry.Start)
		end := subtitle.FormatScriptTimestamp(entry.End)

		primary, secondary := splitByScript(entry.Text)
		if primary != "" {
			fmt.Fprintf(&script, "Dialogue: 1,%s,%s,%s,,0,0,0,,%s\n", start, end, PrimaryStyle, primary)
		}
		if secondary != "" {
			fmt.Fprintf(&script, "Dialogue: 0,%s,%s,%s,,0,0,0,,%s\n", start, end, SecondaryStyle, secondary)
		}
	}

	_, err := io.WriteString(w, script.String())
	return err
}

func (r *Renderer) writeHeader(script *strings.Builder) {
	fmt.Fprintf(script, "[Script Info]\n")
	fmt.Fprintf(script, "Title: %s\n", r.opts.Title)
	fmt.Fprintf(script, "ScriptType: v4.00+\n")
	fmt.Fprintf(script, "WrapStyle: 0\n")
	fmt.Fprintf(script, "PlayResX: %d\n", r.opts.PlayResX)
	fmt.Fprintf(script, "PlayResY: %d\n", r.opts.PlayResY)
	fmt.Fprintf(script, "ScaledBorderAndShadow: yes\n\n")

	fmt.Fprintf(script, "[V4+ Styles]\n")
	fmt.Fprintf(script, "Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	fmt.Fprintf(script, "Style: %s,Arial,%d,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,0,2,10,10,10,1\n",
		PrimaryStyle, r.opts.PrimaryFontSize)
	fmt.Fprintf(script, "Style: %s,Arial,%d,&H00D8D8D8,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,0,2,10,10,28,1\n\n",
		SecondaryStyle, r.opts.SecondaryFontSize)

	fmt.Fprintf(script, "[Events]\n")
	fmt.Fprintf(script, "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
}

// splitByScript partitions an entry's display lines into the CJK group
// and the rest, each joined with the ASS hard line break.
func splitByScript(text string) (primary, secondary string) {
	var primaryLines, secondaryLines []string
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		if subtitle.ContainsCJK(line) {
			primaryLines = append(primaryLines, line)
		} else {
			secondaryLines = append(secondaryLines, line)
		}
	}
	return strings.Join(primaryLines, `\N`), strings.Join(secondaryLines, `\N`)
}
