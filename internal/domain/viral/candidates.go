package viral

import (
	"fmt"

	"github.com/clipsafari/viralcut/internal/types"
)

// MinClipSeconds is the hard floor for clip duration. The prompt instructs
// the model to discard shorter segments, but model output is not trusted:
// parsed candidates are re-checked here.
const MinClipSeconds = 30.0

// ValidateCandidate rejects candidates whose timecodes are structurally
// unusable downstream. Per-element rejection keeps one malformed candidate
// from discarding the rest of the batch.
func ValidateCandidate(c types.ClipCandidate) error {
	if len(c.Timecodes) != 2 {
		return fmt.Errorf("expected 2 timecodes, got %d", len(c.Timecodes))
	}
	if c.Timecodes[0] < 0 {
		return fmt.Errorf("negative start time %.2f", c.Timecodes[0])
	}
	if c.Timecodes[1] <= c.Timecodes[0] {
		return fmt.Errorf("end %.2f is not after start %.2f", c.Timecodes[1], c.Timecodes[0])
	}
	return nil
}

// FilterCandidates drops malformed and under-minimum candidates, preserving
// the order of survivors. reject is called once per dropped candidate with
// the reason; a nil reject is allowed.
func FilterCandidates(cands []types.ClipCandidate, reject func(i int, reason string)) []types.ClipCandidate {
	if reject == nil {
		reject = func(int, string) {}
	}
	out := make([]types.ClipCandidate, 0, len(cands))
	for i, c := range cands {
		if err := ValidateCandidate(c); err != nil {
			reject(i, err.Error())
			continue
		}
		if c.Duration() < MinClipSeconds {
			reject(i, fmt.Sprintf("duration %.2fs below %.0fs minimum", c.Duration(), MinClipSeconds))
			continue
		}
		out = append(out, c)
	}
	return out
}
