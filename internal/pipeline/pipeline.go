package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/clipsafari/viralcut/internal/ports"
	"github.com/clipsafari/viralcut/internal/ports/adapters/ffmpegcut"
	"github.com/clipsafari/viralcut/internal/ports/adapters/openaichat"
	"github.com/clipsafari/viralcut/internal/ports/adapters/whisperapi"
	"github.com/clipsafari/viralcut/internal/usecase"
)

// DefaultOutputDirName is created under the input folder when no output
// folder is supplied.
const DefaultOutputDirName = "Viral_Clips"

type Config struct {
	InputDir string
	OutDir   string
	BurnHook bool

	FFmpegPath  string
	FFprobePath string

	OpenAIAPIKey       string
	OpenAIBaseURL      string
	OpenAIAllowedHosts []string
	ChatModel          string
	WhisperModel       string

	Log zerolog.Logger
}

func (c Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("input folder is empty")
	}
	info, err := os.Stat(c.InputDir)
	if err != nil {
		return fmt.Errorf("stat input folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input path %s is not a folder", c.InputDir)
	}
	if c.OpenAIAPIKey == "" {
		return errors.New("OpenAI API key is required")
	}
	return openaichat.ValidateBaseURL(c.OpenAIBaseURL, c.OpenAIAllowedHosts)
}

// Run processes every video file in the input folder sequentially, one
// file's pipeline at a time. A failure in one file never aborts the run.
func Run(ctx context.Context, cfg Config) error {
	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.OpenAIBaseURL, "/")
	}
	client := openai.NewClientWithConfig(clientCfg)

	uc := usecase.New(usecase.Deps{
		Video:    ffmpegcut.New(cfg.FFmpegPath, cfg.FFprobePath),
		ASR:      whisperapi.New(client, cfg.WhisperModel),
		Selector: openaichat.New(client, cfg.ChatModel, cfg.Log),
	}, cfg.Log)

	return run(ctx, cfg, uc.ProcessVideo)
}

// run drives the folder walk against any per-file processor; Run wires the
// real one and tests substitute fakes.
func run(ctx context.Context, cfg Config, process func(context.Context, usecase.Input) error) error {
	log := cfg.Log.With().Str("component", "pipeline").Logger()
	log.Info().Str("folder", cfg.InputDir).Msg("processing folder")

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = filepath.Join(cfg.InputDir, DefaultOutputDirName)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output folder: %w", err)
	}

	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("read input folder: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !IsVideoFile(name) {
			log.Info().Str("file", name).Msg("skipping non-video entry")
			continue
		}
		in := usecase.Input{
			VideoPath: filepath.Join(cfg.InputDir, name),
			OutDir:    outDir,
			BurnHook:  cfg.BurnHook,
		}
		if err := process(ctx, in); err != nil {
			log.Error().Str("file", name).Err(err).Msg("file pipeline failed")
			continue
		}
		log.Info().Str("file", name).Msg("finished processing")
	}

	log.Info().Str("folder", cfg.InputDir).Msg("finished processing folder")
	return nil
}

// IsVideoFile reports whether the name carries a supported extension,
// case-insensitively.
func IsVideoFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mov", ".mp4":
		return true
	default:
		return false
	}
}

// ensure adapters implement ports
var (
	_ ports.VideoTool    = (*ffmpegcut.Adapter)(nil)
	_ ports.Transcriber  = (*whisperapi.Adapter)(nil)
	_ ports.ClipSelector = (*openaichat.Adapter)(nil)
)
