package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newASSCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "ass <input.srt>",
		Short: "Render an SRT file as an ASS script with per-language styles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, err := ctx.ensurePipeline()
			if err != nil {
				return err
			}

			res, err := pipeline.RenderScript(args[0], outputFlag)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ASS script: %s (%d entries)\n", res.ScriptPath, res.Entries)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output path (default: <input>.ass)")
	return cmd
}
