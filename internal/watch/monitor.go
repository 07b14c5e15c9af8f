// Package watch scans media directories on a cron schedule and pushes
// every new subtitle file through the translation pipeline exactly once.
package watch

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/singleflight"

	"github.com/ytbili/subpipe/internal/config"
	"github.com/ytbili/subpipe/internal/persistence"
	"github.com/ytbili/subpipe/internal/service"
	"github.com/ytbili/subpipe/pkg/file"
	"github.com/ytbili/subpipe/pkg/icron"
	"github.com/ytbili/subpipe/pkg/log"
)

// Monitor owns the scheduled scan loop. Scan ticks that fire while a
// previous scan is still running are coalesced into it.
type Monitor struct {
	cfg      *config.Config
	pipeline *service.Pipeline
	store    *persistence.SQLiteStore
	cron     *cron.Cron

	group singleflight.Group
}

func NewMonitor(cfg *config.Config, pipeline *service.Pipeline, store *persistence.SQLiteStore, c *cron.Cron) *Monitor {
	return &Monitor{
		cfg:      cfg,
		pipeline: pipeline,
		store:    store,
		cron:     c,
	}
}

// Schedule registers the scan on the cron instance. The caller starts
// and stops the cron itself.
func (m *Monitor) Schedule(ctx context.Context) error {
	expr := m.cfg.Watch.CronExpr

	if info, err := icron.GetTriggerInfo(expr, time.Now()); err == nil {
		log.Info("Watch schedule %q, next run in %s", expr, info.TimeUntilNext)
	}

	runFunc := func() {
		_, _, _ = m.group.Do("scan", func() (any, error) {
			if err := m.Scan(ctx); err != nil {
				log.Error("Scan failed: %v", err)
			}
			return nil, nil
		})
	}
	_, err := m.cron.AddFunc(expr, runFunc)
	return err
}

// Scan walks the watch directories once and processes every candidate
// sequentially. One failed file does not stop the rest of the scan.
func (m *Monitor) Scan(ctx context.Context) error {
	runID := uuid.NewString()

	for _, dir := range m.cfg.Watch.Dirs {
		paths, err := file.FindWithExt(dir, ".srt")
		if err != nil {
			log.Error("[%s] Failed to scan dir %s: %v", runID, dir, err)
			continue
		}
		log.Info("[%s] Scanned %s: %d subtitle files", runID, dir, len(paths))

		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return err
			}

			candidate, err := m.isCandidate(ctx, path)
			if err != nil {
				return err
			}
			if !candidate {
				continue
			}

			m.process(ctx, runID, path)
		}
	}
	return nil
}

// isCandidate filters out pipeline outputs, inputs that already have a
// bilingual sibling on disk and inputs the history store knows succeeded.
func (m *Monitor) isCandidate(ctx context.Context, path string) (bool, error) {
	if file.HasSuffix(path, service.BilingualSuffix) ||
		file.HasSuffix(path, service.FixSuffix) ||
		file.HasSuffix(path, service.MergeSuffix) {
		return false, nil
	}
	if _, err := os.Stat(file.WithSuffix(path, service.BilingualSuffix)); err == nil {
		return false, nil
	}

	rec, ok, err := m.store.Lookup(ctx, path)
	if err != nil {
		return false, err
	}
	if ok && rec.Status == persistence.StatusSucceeded {
		return false, nil
	}
	return true, nil
}

func (m *Monitor) process(ctx context.Context, runID, path string) {
	log.Info("[%s] Processing %s", runID, path)

	res, err := m.pipeline.Translate(ctx, path)
	if err != nil {
		log.Error("[%s] Failed to process %s: %v", runID, path, err)
		_ = m.store.Record(ctx, persistence.Record{
			InputPath: path,
			Status:    persistence.StatusFailed,
			RunID:     runID,
		})
		return
	}

	if err := m.store.Record(ctx, persistence.Record{
		InputPath:  path,
		OutputPath: res.OutputPath,
		ScriptPath: res.ScriptPath,
		Status:     persistence.StatusSucceeded,
		Filled:     res.Filled,
		RunID:      runID,
	}); err != nil {
		log.Error("[%s] Failed to record %s: %v", runID, path, err)
	}
	log.Info("[%s] Finished %s: %d entries, %d kept original text", runID, path, res.Entries, res.Filled)
}
