package viral

import (
	"fmt"
	"strings"

	"github.com/clipsafari/viralcut/internal/types"
)

// SystemPrompt is the system-role message sent with every selection request.
const SystemPrompt = "You are a world-class social media expert and viral content creator."

// FormatTranscript renders the transcript as one line per segment:
// "[start - end] text" with times fixed to two decimal places. This is the
// exact block the prompt embeds, so the format is part of the service contract.
func FormatTranscript(tr types.Transcript) string {
	var b strings.Builder
	for _, s := range tr.Segments {
		fmt.Fprintf(&b, "[%.2f - %.2f] %s\n", s.Start, s.End, s.Text)
	}
	return b.String()
}

// BuildPrompt constructs the user-role instruction for the selection request.
// The response shape it demands is parsed by the openaichat adapter; the
// length-score table it dictates is LengthScore.
func BuildPrompt(tr types.Transcript) string {
	var b strings.Builder

	b.WriteString(`You are a social media expert and viral content creator specializing in educational content about animals. Your task is to analyze the following transcript from a wildlife documentary episode, focusing on finding 3-5 segments that would make entertaining, educational, and shareable social media clips about animals. Each segment should be 30-90 seconds long, prioritizing this segment length over the number of segments.

### Step 1: Carefully read and understand the entire transcript.

### Step 2: Identify potential viral segments based on the following criteria:
a) **Entertainment value** (Is the content engaging, fun, and dynamic? Does it include any exciting visuals or actions, especially between the presenters and animals?)
b) **Educational value** (Does the segment teach something interesting, surprising, or insightful about animals?)
c) **Clarity of dialogue** (Is the message about animals clear and easy to understand?)
d) **Shareability** (Would this segment encourage viewers to share or engage on social media, based on emotional or surprising moments?)
e) **Length** (Is the segment between 30-90 seconds long? Prioritize segments that fit this range while maintaining high engagement.)

### Step 3: For each potential segment, ensure there is sufficient **context, setup, and emotional engagement**:
- **Setup**: Does the segment include a clear beginning that builds curiosity or sets the stage for an engaging fact or story?
- **Emotional Engagement**: Does the segment include emotional reactions, excitement, or surprise that could resonate with viewers? Does it build a narrative or suspense before delivering the fact?
- **Fact Delivery**: Highlight the key animal fact, ensuring that it is delivered within a dynamic or engaging context.
- **Follow-Up**: Does the segment have a natural resolution or reaction after the fact, creating a sense of completion for the viewer?

### Step 4: Based on your analysis, select the top 1-3 segments that have the highest potential to educate, entertain, and go viral.

### Step 5: For each selected segment, provide:
1. Start and end timecodes (use the exact timecodes from the transcript).
2. A detailed description of why this segment would make an excellent viral clip, including:
- The animal(s) featured and their key behaviors or facts discussed.
- Why this segment would captivate and emotionally engage viewers, especially children.
- How it aligns with current social media trends related to animal content (e.g., surprising animal facts, emotional storytelling, dynamic visuals).
3. A suggested **text hook** to overlay at the start of the video that grabs attention (e.g., "Did you know this about [animal]?" or "Meet one of the fastest animals in the world!").
4. A score out of 10 for each of the five criteria mentioned in Step 2.
5. A summary of how the clip mixes education with entertainment and its overall emotional impact.

### Length Score Calculation:
Calculate the length_score as follows:
- If the segment is between 30-90 seconds: score = 10
- If the segment is 20-30 or 90-100 seconds: score = 8
- If the segment is 10-20 or 100-110 seconds: score = 6
- If the segment is 0-10 or 110-120 seconds: score = 4
- If the segment is longer than 120 seconds: score = 2

### Transcript:
`)
	b.WriteString(FormatTranscript(tr))
	b.WriteString(`
### Respond in the following JSON format:

{
    "clips": [
        {
            "timecodes": [start_time, end_time],
            "description": "Detailed explanation of viral potential",
            "entertainment_score": 0-10,
            "educational_score": 0-10,
            "clarity_score": 0-10,
            "shareability_score": 0-10,
            "length_score": 0-10,
            "analysis": {
                "animal_facts": ["Fact1", "Fact2"],
                "context_and_setup": "Description of how the setup creates a smooth lead-in to the fact",
                "emotional_engagement": "Description of emotional reactions, excitement, or narrative",
                "follow_up": "Description of the additional information or reactions after the fact",
                "educational_entertainment_balance": "Description of how the clip balances education and fun"
            },
            "text_hook": "Suggested text hook for the start of the video"
        }
    ]
}

### Important Note:
Ensure that the duration between start_time and end_time is at least 30 seconds. If any segment is less than 30 seconds, discard it and select another segment that meets the minimum duration requirement.`)

	return b.String()
}
