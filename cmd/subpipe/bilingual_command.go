package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBilingualCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "bilingual <original.srt> <translated.srt>",
		Short: "Merge two translated streams into one bilingual SRT and ASS",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, err := ctx.ensurePipeline()
			if err != nil {
				return err
			}

			res, err := pipeline.Bilingual(args[0], args[1], outputFlag)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Bilingual SRT: %s (%d entries)\n", res.OutputPath, res.Entries)
			fmt.Fprintf(out, "ASS script:    %s\n", res.ScriptPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output path (default: <original>_bilingual.srt)")
	return cmd
}
