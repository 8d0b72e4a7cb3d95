package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/clipsafari/viralcut/internal/logging"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	log := logging.Setup(os.Getenv("VIRALCUT_LOG_LEVEL"))

	root := &cobra.Command{
		Use:          "viralcut <input-folder> [output-folder]",
		Short:        "Cut viral-worthy vertical clips from wildlife videos in a folder",
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir := ""
			if len(args) > 1 {
				outDir = args[1]
			}
			return runProcess(cmd, log, args[0], outDir)
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().Bool("burn-hook", false, "Burn each clip's text hook into its opening seconds")

	root.AddCommand(newServeCmd(log))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
