package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/clipsafari/viralcut/internal/ports"
	"github.com/clipsafari/viralcut/internal/types"
)

// MetadataFileName is the durable JSON artifact written next to the clips:
// a raw 2-space-indented array of candidates, not the {"clips": ...} wrapper
// the selection service responds with.
const MetadataFileName = "viral_clips_metadata.json"

type Deps struct {
	Video    ports.VideoTool
	ASR      ports.Transcriber
	Selector ports.ClipSelector
}

type Usecase struct {
	d   Deps
	log zerolog.Logger
}

func New(d Deps, log zerolog.Logger) Usecase {
	return Usecase{d: d, log: log.With().Str("component", "usecase").Logger()}
}

type Input struct {
	VideoPath string
	OutDir    string

	// BurnHook burns each candidate's text hook into the opening seconds of
	// its clip. Off by default; the hook is always present in metadata.
	BurnHook bool
}

// ProcessVideo runs the four-step pipeline for one file. Transcription,
// selection, and render failures are logged and swallowed so the caller can
// move on to the next file; only a metadata write failure propagates.
func (u Usecase) ProcessVideo(ctx context.Context, in Input) error {
	ev := u.log.Info().Str("video", in.VideoPath)
	if dur, err := u.d.Video.ProbeDuration(ctx, in.VideoPath); err == nil {
		ev = ev.Float64("duration_sec", dur)
	}
	ev.Msg("processing video")

	tr, err := u.transcribe(ctx, in.VideoPath)
	if err != nil {
		u.log.Error().Str("video", in.VideoPath).Err(err).Msg("transcription failed, skipping file")
		return nil
	}
	u.log.Info().Str("video", in.VideoPath).Int("segments", len(tr.Segments)).Msg("transcription completed")

	cands, err := u.d.Selector.SelectClips(ctx, tr)
	if err != nil {
		u.log.Error().Str("video", in.VideoPath).Err(err).Msg("transcript analysis failed, skipping file")
		return nil
	}
	if len(cands) == 0 {
		u.log.Warn().Str("video", in.VideoPath).Msg("no viral clips selected, skipping file")
		return nil
	}
	u.log.Info().Str("video", in.VideoPath).Int("clips", len(cands)).Msg("transcript analysis completed")

	// The render and the metadata write both consume the exact selector
	// output: no reordering and no further filtering downstream.
	u.renderClips(ctx, in, cands)

	if err := u.writeMetadata(cands, in.OutDir); err != nil {
		return fmt.Errorf("write metadata for %s: %w", in.VideoPath, err)
	}
	u.log.Info().Str("dir", in.OutDir).Msg("metadata saved")
	return nil
}

// transcribe extracts the audio track to a temporary artifact, transcribes
// it, and removes the artifact on every exit path.
func (u Usecase) transcribe(ctx context.Context, videoPath string) (types.Transcript, error) {
	tmp, err := os.CreateTemp("", "viralcut-audio-*.mp3")
	if err != nil {
		return types.Transcript{}, fmt.Errorf("create temp audio: %w", err)
	}
	audioPath := tmp.Name()
	tmp.Close()
	defer os.Remove(audioPath)

	if err := u.d.Video.ExtractAudioMP3(ctx, videoPath, audioPath); err != nil {
		return types.Transcript{}, err
	}
	return u.d.ASR.Transcribe(ctx, audioPath)
}

// renderClips is best-effort: the first failure aborts the remaining clips
// for this file but earlier outputs stay on disk.
func (u Usecase) renderClips(ctx context.Context, in Input, cands []types.ClipCandidate) {
	ext := filepath.Ext(in.VideoPath)
	for i, c := range cands {
		outPath := filepath.Join(in.OutDir, fmt.Sprintf("viral_clip_%d%s", i+1, ext))
		hook := ""
		if in.BurnHook {
			hook = c.TextHook
		}
		if err := u.d.Video.RenderVerticalClip(ctx, in.VideoPath, c.Start(), c.End(), outPath, hook); err != nil {
			u.log.Error().Str("video", in.VideoPath).Err(err).Msg("clip rendering failed")
			return
		}
		u.log.Info().Str("clip", outPath).Msg("vertical clip created")
	}
}

func (u Usecase) writeMetadata(cands []types.ClipCandidate, outDir string) error {
	if cands == nil {
		cands = []types.ClipCandidate{}
	}
	b, err := json.MarshalIndent(cands, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, MetadataFileName), b, 0o644)
}
