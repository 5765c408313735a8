package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"substation/internal/extract"
	"substation/internal/language"
	"substation/internal/pipeline"
	"substation/internal/scan"
	"substation/internal/services"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "extract EPISODE LANGUAGE",
		Short: "Extract one episode's subtitle track for a language",
		Args:  cobra.ExactArgs(2),
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
				return services.Wrap(services.ErrNotFound, "extract", "lookup", fmt.Sprintf("episode %q has no subtitle source", episode), nil)
			}

			lang := language.ToISO2(strings.ToLower(args[1]))
			track, err := extract.Language(doc, lang)
			if err != nil {
				return services.Wrap(services.ErrValidation, "extract", "track", "", err)
			}

			if outputPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), track.Render())
				return nil
			}
			if err := scan.WriteDocument(outputPath, track); err != nil {
				return services.Wrap(services.ErrTransient, "extract", "write track", "", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s track for episode %s to %s\n", lang, episode, outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the track to a file instead of stdout")
	return cmd
}
