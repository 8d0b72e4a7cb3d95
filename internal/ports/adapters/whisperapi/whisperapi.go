// Package whisperapi transcribes audio through the OpenAI Whisper API,
// requesting verbose JSON with both segment- and word-level timestamps.
package whisperapi

import (
	"context"
	"fmt"
	"sort"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/clipsafari/viralcut/internal/types"
)

type Adapter struct {
	client *openai.Client
	model  string
}

func New(client *openai.Client, model string) *Adapter {
	if model == "" {
		model = openai.Whisper1
	}
	return &Adapter{client: client, model: model}
}

func (a *Adapter) Transcribe(ctx context.Context, audioPath string) (types.Transcript, error) {
	resp, err := a.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    a.model,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []openai.TranscriptionTimestampGranularity{
			openai.TranscriptionTimestampGranularitySegment,
			openai.TranscriptionTimestampGranularityWord,
		},
	})
	if err != nil {
		return types.Transcript{}, fmt.Errorf("whisper transcription: %w", err)
	}

	tr := types.Transcript{
		Segments: make([]types.Segment, 0, len(resp.Segments)),
		Words:    make([]types.Word, 0, len(resp.Words)),
	}
	for _, s := range resp.Segments {
		tr.Segments = append(tr.Segments, types.Segment{
			Start: s.Start,
			End:   s.End,
			Text:  strings.TrimSpace(s.Text),
		})
	}
	for _, w := range resp.Words {
		tr.Words = append(tr.Words, types.Word{
			Start: w.Start,
			End:   w.End,
			Word:  strings.TrimSpace(w.Word),
		})
	}

	// Chronological order is part of the transcript contract; the API has
	// always returned segments sorted, but downstream formatting relies on it.
	sort.SliceStable(tr.Segments, func(i, j int) bool {
		return tr.Segments[i].Start < tr.Segments[j].Start
	})
	return tr, nil
}
