// Package openaichat selects viral clip candidates by sending the formatted
// transcript to the OpenAI chat completion API under a fixed prompt contract
// and parsing the JSON it returns.
package openaichat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/clipsafari/viralcut/internal/domain/viral"
	"github.com/clipsafari/viralcut/internal/types"
)

// Non-deterministic output at this temperature is an accepted property of the
// selector, not a bug.
const samplingTemperature = 0.7

type Adapter struct {
	client *openai.Client
	model  string
	log    zerolog.Logger
}

func New(client *openai.Client, model string, log zerolog.Logger) *Adapter {
	if model == "" {
		model = openai.GPT4
	}
	return &Adapter{
		client: client,
		model:  model,
		log:    log.With().Str("component", "selector").Logger(),
	}
}

// SelectClips sends one selection request and returns the surviving
// candidates in response order. Any failure (transport, zero choices,
// non-JSON content, missing clips key) yields a nil slice and an error;
// individually malformed or under-minimum candidates are dropped with a
// warning instead of failing the batch.
func (a *Adapter) SelectClips(ctx context.Context, tr types.Transcript) ([]types.ClipCandidate, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: samplingTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: viral.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: viral.BuildPrompt(tr)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion: response has no choices")
	}

	return a.parseClips(resp.Choices[0].Message.Content)
}

func (a *Adapter) parseClips(content string) ([]types.ClipCandidate, error) {
	clean, err := extractJSONObject(content)
	if err != nil {
		return nil, err
	}

	// Clips stays a pointer so a response that parses but lacks the key is
	// distinguishable from an explicit empty array.
	var out struct {
		Clips *[]json.RawMessage `json:"clips"`
	}
	if err := json.Unmarshal([]byte(clean), &out); err != nil {
		return nil, fmt.Errorf("parse response JSON: %w", err)
	}
	if out.Clips == nil {
		return nil, errors.New(`response JSON has no "clips" key`)
	}

	cands := make([]types.ClipCandidate, 0, len(*out.Clips))
	for i, raw := range *out.Clips {
		var c types.ClipCandidate
		if err := json.Unmarshal(raw, &c); err != nil {
			a.log.Warn().Int("index", i).Err(err).Msg("malformed candidate dropped")
			continue
		}
		cands = append(cands, c)
	}

	// The prompt already demands the 30s floor; model output is re-checked
	// anyway since nothing downstream can cope with degenerate time ranges.
	return viral.FilterCandidates(cands, func(i int, reason string) {
		a.log.Warn().Int("index", i).Str("reason", reason).Msg("candidate rejected")
	}), nil
}

func extractJSONObject(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", errors.New("empty content")
	}

	// Strip markdown code fences.
	if strings.HasPrefix(t, "```") {
		if i := strings.Index(t, "\n"); i >= 0 {
			t = t[i+1:]
		}
		if j := strings.LastIndex(t, "```"); j >= 0 {
			t = t[:j]
		}
		t = strings.TrimSpace(t)
	}

	// Best-effort: take the first JSON object found.
	start := strings.Index(t, "{")
	end := strings.LastIndex(t, "}")
	if start >= 0 && end > start {
		return t[start : end+1], nil
	}

	return "", fmt.Errorf("could not locate JSON object in: %q", truncate(t, 200))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
