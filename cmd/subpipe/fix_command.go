package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFixCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var fpsFlag float64

	cmd := &cobra.Command{
		Use:   "fix <input.srt>",
		Short: "Repair overlapping display intervals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, err := ctx.ensurePipeline()
			if err != nil {
				return err
			}
			if fpsFlag > 0 {
				ctx.cfg.Pipeline.FPS = fpsFlag
			}

			res, err := pipeline.Fix(args[0], outputFlag)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fixed SRT: %s (%d entries)\n", res.OutputPath, res.Entries)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output path (default: <input>_fix.srt)")
	cmd.Flags().Float64Var(&fpsFlag, "fps", 0, "Frame rate for the one-frame gap (default: config)")
	return cmd
}
