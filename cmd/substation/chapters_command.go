package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"substation/internal/pipeline"
	"substation/internal/services"
)

func newChaptersCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "chapters EPISODE",
		Short: "Print ffmetadata chapter blocks for an episode",
		Args:  cobra.ExactArgs(1),
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

			documents, err := p.Documents(cmd.Context())
			if err != nil {
				return err
			}

			episode := args[0]
			doc, ok := documents[episode]
			if !ok {
				return services.Wrap(services.ErrNotFound, "chapters", "lookup", fmt.Sprintf("episode %q has no subtitle source", episode), nil)
			}

			metadata, err := pipeline.ReleaseMetadata(doc, episode, cfg.Pipeline.ChapterLanguage)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), metadata)
			return nil
		},
	}
}
