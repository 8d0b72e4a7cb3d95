package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clipsafari/viralcut/internal/logging"
	"github.com/clipsafari/viralcut/internal/usecase"
)

func TestIsVideoFile(t *testing.T) {
	tests := map[string]bool{
		"a.mp4":      true,
		"b.MOV":      true,
		"c.Mp4":      true,
		"d.mov":      true,
		"e.txt":      false,
		"f.mp3":      false,
		"noext":      false,
		"g.mp4.part": false,
	}
	for name, want := range tests {
		if got := IsVideoFile(name); got != want {
			t.Errorf("IsVideoFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func seedFolder(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644); err != nil {
			t.Fatalf("seed %s: %v", n, err)
		}
	}
	return dir
}

func TestRun_SelectsVideosAndSkipsOthers(t *testing.T) {
	dir := seedFolder(t, "a.mp4", "b.MOV", "c.txt")
	var logBuf bytes.Buffer

	var processed []string
	cfg := Config{InputDir: dir, Log: logging.New(&logBuf)}
	err := run(context.Background(), cfg, func(_ context.Context, in usecase.Input) error {
		processed = append(processed, filepath.Base(in.VideoPath))
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(processed) != 2 {
		t.Fatalf("expected 2 processed files, got %v", processed)
	}
	for _, want := range []string{"a.mp4", "b.MOV"} {
		found := false
		for _, got := range processed {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %s processed, got %v", want, processed)
		}
	}
	if !strings.Contains(logBuf.String(), "c.txt") {
		t.Fatalf("expected skip logged for c.txt, got %q", logBuf.String())
	}
}

func TestRun_DefaultOutputDirCreated(t *testing.T) {
	dir := seedFolder(t, "a.mp4")

	var gotOut string
	cfg := Config{InputDir: dir, Log: logging.New(&bytes.Buffer{})}
	err := run(context.Background(), cfg, func(_ context.Context, in usecase.Input) error {
		gotOut = in.OutDir
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := filepath.Join(dir, DefaultOutputDirName)
	if gotOut != want {
		t.Fatalf("expected default output dir %s, got %s", want, gotOut)
	}
	info, err := os.Stat(want)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected output dir created, stat: %v", err)
	}

	// Idempotent on a second run.
	if err := run(context.Background(), cfg, func(context.Context, usecase.Input) error { return nil }); err != nil {
		t.Fatalf("second run: %v", err)
	}
}

func TestRun_FileFailureDoesNotAbortFolder(t *testing.T) {
	dir := seedFolder(t, "a.mp4", "b.mp4")
	var logBuf bytes.Buffer

	var processed []string
	cfg := Config{InputDir: dir, Log: logging.New(&logBuf)}
	err := run(context.Background(), cfg, func(_ context.Context, in usecase.Input) error {
		processed = append(processed, filepath.Base(in.VideoPath))
		if filepath.Base(in.VideoPath) == "a.mp4" {
			return errors.New("metadata write failed")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(processed) != 2 {
		t.Fatalf("expected both files attempted, got %v", processed)
	}
	if !strings.Contains(logBuf.String(), "file pipeline failed") {
		t.Fatalf("expected per-file failure logged, got %q", logBuf.String())
	}
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	valid := Config{InputDir: dir, OpenAIAPIKey: "sk-test"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty input", Config{OpenAIAPIKey: "sk-test"}},
		{"missing input dir", Config{InputDir: filepath.Join(dir, "nope"), OpenAIAPIKey: "sk-test"}},
		{"missing api key", Config{InputDir: dir}},
		{"bad base url", Config{InputDir: dir, OpenAIAPIKey: "sk-test", OpenAIBaseURL: "http://evil.example"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestConfigValidate_InputIsFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "a.mp4")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := Config{InputDir: f, OpenAIAPIKey: "sk-test"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-folder input")
	}
}
