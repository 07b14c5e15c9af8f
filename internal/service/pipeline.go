// Package service wires the subtitle stages into end-to-end operations:
// overlap repair, pair merging, batched translation, bilingual rebuild
// and ASS rendering.
package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/ytbili/subpipe/internal/ass"
	"github.com/ytbili/subpipe/internal/config"
	"github.com/ytbili/subpipe/internal/llm"
	"github.com/ytbili/subpipe/internal/subtitle"
	"github.com/ytbili/subpipe/internal/translator"
	"github.com/ytbili/subpipe/pkg/file"
	"github.com/ytbili/subpipe/pkg/log"
)

// Suffix conventions for derived output paths.
const (
	BilingualSuffix = "_bilingual"
	FixSuffix       = "_fix"
	MergeSuffix     = "_merged"
)

// Result summarizes one pipeline run for logging and the history store.
type Result struct {
	InputPath  string
	OutputPath string
	ScriptPath string
	Entries    int
	Skipped    int
	Filled     int
}

// Pipeline runs subtitle transformations. Zero-value collaborator means
// a real LLM client is built from config on first use, so offline
// operations never require an API key.
type Pipeline struct {
	cfg          *config.Config
	reader       subtitle.Reader
	writer       subtitle.Writer
	renderer     *ass.Renderer
	collaborator translator.Collaborator

	group singleflight.Group
}

func NewPipeline(cfg *config.Config) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		reader: subtitle.NewReader(),
		writer: subtitle.NewWriter(),
		renderer: ass.NewRenderer(ass.Options{
			PrimaryFontSize:   cfg.Render.PrimaryFontSize,
			SecondaryFontSize: cfg.Render.SecondaryFontSize,
		}),
	}
}

// WithCollaborator substitutes the translation backend. Used by watch
// mode to share one client and by tests to avoid the network.
func (p *Pipeline) WithCollaborator(c translator.Collaborator) *Pipeline {
	p.collaborator = c
	return p
}

// Translate runs the full chain on one SRT file: repair overlaps, merge
// caption pairs, translate in batches, rebuild with bilingual text, write
// <base>_bilingual.srt and render <base>_bilingual.ass. Concurrent calls
// for the same input share a single run.
func (p *Pipeline) Translate(ctx context.Context, inputPath string) (*Result, error) {
	v, err, _ := p.group.Do(inputPath, func() (any, error) {
		return p.translate(ctx, inputPath)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

func (p *Pipeline) translate(ctx context.Context, inputPath string) (*Result, error) {
	collaborator, err := p.translationBackend()
	if err != nil {
		return nil, err
	}

	parsed, err := p.reader.Read(inputPath)
	if err != nil {
		return nil, err
	}
	log.Info("Read %s: %d entries, %d malformed blocks skipped, language %s",
		inputPath, len(parsed.Entries), parsed.Skipped, parsed.Language)

	entries := subtitle.FixOverlaps(parsed.Entries, p.cfg.Pipeline.FPS)
	entries = subtitle.MergePairs(entries)
	log.Info("Prepared %d entries for translation (%d before merge)", len(entries), len(parsed.Entries))

	batcher := translator.NewBatchTranslator(collaborator, translator.Config{
		BatchSize:    p.cfg.Pipeline.BatchSize,
		MaxAttempts:  p.cfg.Pipeline.MaxAttempts,
		SystemPrompt: translator.BilingualSystemPrompt(p.cfg.Pipeline.SourceLanguage, p.cfg.Pipeline.TargetLanguage),
	})

	resolved, err := batcher.TranslateAll(ctx, entries)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(resolved))
	filled := 0
	for i, r := range resolved {
		texts[i] = r.Text
		if r.Outcome == translator.OutcomeFilled {
			filled++
		}
	}

	rebuilt := subtitle.RebuildWithTexts(entries, texts)
	out := &subtitle.File{
		Entries:  rebuilt,
		Language: p.cfg.Pipeline.TargetTag,
		Format:   parsed.Format,
	}

	outputPath := file.WithSuffix(inputPath, BilingualSuffix)
	if err := p.writer.Write(outputPath, out); err != nil {
		return nil, err
	}

	scriptPath := file.ReplaceExt(outputPath, "ass")
	if err := p.renderer.Write(scriptPath, out); err != nil {
		return nil, err
	}

	log.Info("Pipeline finished for %s: %d entries, %d kept original text", inputPath, len(rebuilt), filled)
	return &Result{
		InputPath:  inputPath,
		OutputPath: outputPath,
		ScriptPath: scriptPath,
		Entries:    len(rebuilt),
		Skipped:    parsed.Skipped,
		Filled:     filled,
	}, nil
}

// Fix repairs overlapping display intervals and writes the result. An
// empty outputPath derives <base>_fix.srt from the input.
func (p *Pipeline) Fix(inputPath, outputPath string) (*Result, error) {
	parsed, err := p.reader.Read(inputPath)
	if err != nil {
		return nil, err
	}

	fixed := subtitle.FixOverlaps(parsed.Entries, p.cfg.Pipeline.FPS)

	if outputPath == "" {
		outputPath = file.WithSuffix(inputPath, FixSuffix)
	}
	if err := p.writer.Write(outputPath, &subtitle.File{Entries: fixed, Language: parsed.Language, Format: parsed.Format}); err != nil {
		return nil, err
	}

	return &Result{InputPath: inputPath, OutputPath: outputPath, Entries: len(fixed), Skipped: parsed.Skipped}, nil
}

// Merge combines adjacent caption pairs and writes the result. An empty
// outputPath derives <base>_merged.srt from the input.
func (p *Pipeline) Merge(inputPath, outputPath string) (*Result, error) {
	parsed, err := p.reader.Read(inputPath)
	if err != nil {
		return nil, err
	}

	merged := subtitle.MergePairs(parsed.Entries)

	if outputPath == "" {
		outputPath = file.WithSuffix(inputPath, MergeSuffix)
	}
	if err := p.writer.Write(outputPath, &subtitle.File{Entries: merged, Language: parsed.Language, Format: parsed.Format}); err != nil {
		return nil, err
	}

	return &Result{InputPath: inputPath, OutputPath: outputPath, Entries: len(merged), Skipped: parsed.Skipped}, nil
}

// Bilingual merges two already translated streams by caption index, then
// writes the combined SRT and its ASS rendering. The first stream drives
// timing and ordering.
func (p *Pipeline) Bilingual(firstPath, secondPath, outputPath string) (*Result, error) {
	first, err := p.reader.Read(firstPath)
	if err != nil {
		return nil, err
	}
	second, err := p.reader.Read(secondPath)
	if err != nil {
		return nil, err
	}

	merged := subtitle.MergeBilingual(first.Entries, second.Entries)
	out := &subtitle.File{Entries: merged, Language: second.Language, Format: first.Format}

	if outputPath == "" {
		outputPath = file.WithSuffix(firstPath, BilingualSuffix)
	}
	if err := p.writer.Write(outputPath, out); err != nil {
		return nil, err
	}

	scriptPath := file.ReplaceExt(outputPath, "ass")
	if err := p.renderer.Write(scriptPath, out); err != nil {
		return nil, err
	}

	return &Result{
		InputPath:  firstPath,
		OutputPath: outputPath,
		ScriptPath: scriptPath,
		Entries:    len(merged),
		Skipped:    first.Skipped + second.Skipped,
	}, nil
}

// RenderScript renders an existing (usually bilingual) SRT file as ASS.
// An empty outputPath swaps the extension of the input.
func (p *Pipeline) RenderScript(inputPath, outputPath string) (*Result, error) {
	parsed, err := p.reader.Read(inputPath)
	if err != nil {
		return nil, err
	}

	if outputPath == "" {
		outputPath = file.ReplaceExt(inputPath, "ass")
	}
	if err := p.renderer.Write(outputPath, parsed); err != nil {
		return nil, err
	}

	return &Result{InputPath: inputPath, ScriptPath: outputPath, Entries: len(parsed.Entries), Skipped: parsed.Skipped}, nil
}

func (p *Pipeline) translationBackend() (translator.Collaborator, error) {
	if p.collaborator != nil {
		return p.collaborator, nil
	}
	client, err := llm.NewClient(p.cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	p.collaborator = client
	return p.collaborator, nil
}
