package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clipsafari/viralcut/internal/pipeline"
)

func runProcess(cmd *cobra.Command, log zerolog.Logger, inputDir, outDir string) error {
	burnHook, _ := cmd.Flags().GetBool("burn-hook")

	if _, err := os.Stat(inputDir); err != nil {
		log.Error().Str("folder", inputDir).Msg("input folder does not exist")
		return fmt.Errorf("input folder does not exist: %s", inputDir)
	}

	absIn, err := filepath.Abs(inputDir)
	if err != nil {
		return err
	}
	if outDir != "" {
		if outDir, err = filepath.Abs(outDir); err != nil {
			return err
		}
	}

	cfg, err := buildConfig(log, absIn, outDir)
	if err != nil {
		return err
	}
	cfg.BurnHook = burnHook

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Outbound calls carry no per-request timeout by design; this is a
	// process-level bound for the whole batch.
	ctx, cancel := context.WithTimeout(context.Background(), 6*time.Hour)
	defer cancel()

	return pipeline.Run(ctx, cfg)
}

func buildConfig(log zerolog.Logger, inputDir, outDir string) (pipeline.Config, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return pipeline.Config{}, errors.New("OPENAI_API_KEY is required (set it in .env)")
	}

	return pipeline.Config{
		InputDir: inputDir,
		OutDir:   outDir,

		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",

		OpenAIAPIKey:       apiKey,
		OpenAIBaseURL:      os.Getenv("OPENAI_BASE_URL"),
		OpenAIAllowedHosts: splitHosts(os.Getenv("OPENAI_ALLOWED_HOSTS")),
		ChatModel:          getenvDefault("VIRALCUT_CHAT_MODEL", "gpt-4"),
		WhisperModel:       getenvDefault("VIRALCUT_WHISPER_MODEL", "whisper-1"),

		Log: log,
	}, nil
}

func splitHosts(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
