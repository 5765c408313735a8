package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"substation/internal/state"
)

const timePrecision = time.Millisecond

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show recorded subtitle exports",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := state.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			exports, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(exports) == 0 {
				fmt.Fprintln(out, "No exports recorded")
				return nil
			}

			rows := make([][]string, 0, len(exports))
			for _, export := range exports {
				rows = append(rows, []string{
					export.Episode,
					export.Language,
					export.OutputPath,
					export.ExportedAt.Local().Format("2006-01-02 15:04:05"),
				})
			}

			if isTerminal(out) {
				fmt.Fprintln(out, renderTable(
					[]string{"Episode", "Language", "Output", "Exported"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				))
				return nil
			}
			for _, row := range rows {
				fmt.Fprintln(out, strings.Join(row, "\t"))
			}
			return nil
		},
	}
}
