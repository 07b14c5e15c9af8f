package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "merge <input.srt>",
		Short: "Merge adjacent caption pairs into longer captions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, err := ctx.ensurePipeline()
			if err != nil {
				return err
			}

			res, err := pipeline.Merge(args[0], outputFlag)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Merged SRT: %s (%d entries)\n", res.OutputPath, res.Entries)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output path (default: <input>_merged.srt)")
	return cmd
}
