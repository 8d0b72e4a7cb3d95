package viral

import (
	"strings"
	"testing"

	"github.com/clipsafari/viralcut/internal/types"
)

func cand(start, end float64) types.ClipCandidate {
	return types.ClipCandidate{Timecodes: []float64{start, end}}
}

func TestFilterCandidates_DropsShortAndMalformed(t *testing.T) {
	in := []types.ClipCandidate{
		cand(10, 55),                  // keep
		cand(100, 120),                // 20s, below floor
		{Timecodes: []float64{42}},    // malformed: one timecode
		cand(60, 40),                  // malformed: end before start
		cand(200, 230),                // exactly 30s, keep
		{Timecodes: []float64{-1, 40}}, // malformed: negative start
	}

	var reasons []string
	out := FilterCandidates(in, func(i int, reason string) {
		reasons = append(reasons, reason)
	})

	if len(out) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(out))
	}
	if out[0].Start() != 10 || out[1].Start() != 200 {
		t.Fatalf("expected order preserved, got starts %v and %v", out[0].Start(), out[1].Start())
	}
	if len(reasons) != 4 {
		t.Fatalf("expected 4 rejections, got %d: %v", len(reasons), reasons)
	}
	if !strings.Contains(reasons[0], "below 30s minimum") {
		t.Fatalf("unexpected rejection reason: %q", reasons[0])
	}
}

func TestFilterCandidates_NilRejectCallback(t *testing.T) {
	out := FilterCandidates([]types.ClipCandidate{cand(0, 10)}, nil)
	if len(out) != 0 {
		t.Fatalf("expected short candidate dropped, got %d survivors", len(out))
	}
}

func TestValidateCandidate_OK(t *testing.T) {
	if err := ValidateCandidate(cand(1.5, 40)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
