package main

import (
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/ytbili/subpipe/internal/persistence"
	"github.com/ytbili/subpipe/internal/watch"
	"github.com/ytbili/subpipe/pkg/log"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Scan watch directories on a schedule and translate new subtitle files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			pipeline, err := ctx.ensurePipeline()
			if err != nil {
				return err
			}

			store, err := persistence.NewSQLiteStore(cfg.Watch.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			c := cron.New()
			monitor := watch.NewMonitor(cfg, pipeline, store, c)
			if err := monitor.Schedule(cmd.Context()); err != nil {
				return err
			}

			// one immediate pass so a fresh deployment does not sit idle
			// until the first tick
			if err := monitor.Scan(cmd.Context()); err != nil {
				log.Error("Initial scan failed: %v", err)
			}

			c.Start()
			log.Info("Watching %v on schedule %q", cfg.Watch.Dirs, cfg.Watch.CronExpr)

			<-cmd.Context().Done()
			<-c.Stop().Done()
			return cmd.Context().Err()
		},
	}
}
