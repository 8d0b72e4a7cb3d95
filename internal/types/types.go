package types

type Transcript struct {
	Segments []Segment `json:"segments"`
	Words    []Word    `json:"words,omitempty"`
}

type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type Word struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Word  string  `json:"word"`
}

// ClipCandidate is one selected clip as returned by the selector. The JSON
// shape doubles as the on-disk metadata format and the review API payload,
// so field tags must stay stable.
type ClipCandidate struct {
	Timecodes          []float64    `json:"timecodes"`
	Description        string       `json:"description"`
	EntertainmentScore int          `json:"entertainment_score"`
	EducationalScore   int          `json:"educational_score"`
	ClarityScore       int          `json:"clarity_score"`
	ShareabilityScore  int          `json:"shareability_score"`
	LengthScore        int          `json:"length_score"`
	Analysis           ClipAnalysis `json:"analysis"`
	TextHook           string       `json:"text_hook"`
}

type ClipAnalysis struct {
	AnimalFacts                     []string `json:"animal_facts"`
	ContextAndSetup                 string   `json:"context_and_setup"`
	EmotionalEngagement             string   `json:"emotional_engagement"`
	FollowUp                        string   `json:"follow_up"`
	EducationalEntertainmentBalance string   `json:"educational_entertainment_balance"`
}

// Start returns the clip start in seconds. Callers must validate the
// candidate shape first (exactly two timecodes, end > start).
func (c ClipCandidate) Start() float64 { return c.Timecodes[0] }

func (c ClipCandidate) End() float64 { return c.Timecodes[1] }

func (c ClipCandidate) Duration() float64 { return c.Timecodes[1] - c.Timecodes[0] }
