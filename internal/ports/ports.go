package ports

import (
	"context"

	"github.com/clipsafari/viralcut/internal/types"
)

type VideoTool interface {
	ExtractAudioMP3(ctx context.Context, inVideo, outMP3 string) error
	RenderVerticalClip(ctx context.Context, inVideo string, startSec, endSec float64, outPath, overlayText string) error
	ProbeDuration(ctx context.Context, inVideo string) (float64, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (types.Transcript, error)
}

type ClipSelector interface {
	SelectClips(ctx context.Context, tr types.Transcript) ([]types.ClipCandidate, error)
}
