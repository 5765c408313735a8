package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"substation/internal/pipeline"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Process all subtitle sources and write exports",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			p, err := pipeline.New(cfg, logger)
			if err != nil {
				return err
			}
			defer p.Close()

			summary, err := p.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Episodes", "Exported", "Skipped", "Remuxed", "Elapsed"},
				[][]string{{
					strconv.Itoa(summary.Episodes),
					strconv.Itoa(summary.Exported),
					strconv.Itoa(summary.Skipped),
					strconv.Itoa(summary.Remuxed),
					summary.Elapsed.Round(timePrecision).String(),
				}},
				[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}
}
