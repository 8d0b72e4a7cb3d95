package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clipsafari/viralcut/internal/pipeline"
	"github.com/clipsafari/viralcut/internal/server"
)

func newServeCmd(log zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the clip review API over a video library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			library, _ := cmd.Flags().GetString("library")
			if library == "" {
				return fmt.Errorf("--library is required")
			}

			srv := server.New(library, log, func(inputDir, outDir string) pipeline.Config {
				cfg, err := buildConfig(log, inputDir, outDir)
				if err != nil {
					// Validate reports the missing key with context.
					return pipeline.Config{InputDir: inputDir, OutDir: outDir, Log: log}
				}
				return cfg
			})

			log.Info().Str("addr", addr).Str("library", library).Msg("review API listening")
			return srv.Router().Run(addr)
		},
	}

	cmd.Flags().String("addr", ":8080", "Listen address")
	cmd.Flags().String("library", "", "Root folder of the video library")
	return cmd
}
