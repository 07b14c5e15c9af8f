package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTranslateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "translate <input.srt>",
		Short: "Run the full pipeline: fix, merge, translate, write bilingual SRT and ASS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, err := ctx.ensurePipeline()
			if err != nil {
				return err
			}

			res, err := pipeline.Translate(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Bilingual SRT: %s\n", res.OutputPath)
			fmt.Fprintf(out, "ASS script:    %s\n", res.ScriptPath)
			fmt.Fprintf(out, "Entries: %d", res.Entries)
			if res.Skipped > 0 {
				fmt.Fprintf(out, " (%d malformed blocks skipped)", res.Skipped)
			}
			fmt.Fprintln(out)
			if res.Filled > 0 {
				fmt.Fprintf(out, "Warning: %d entries kept their original text\n", res.Filled)
			}
			return nil
		},
	}
}
