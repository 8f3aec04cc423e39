package itemgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an assessment author creating multiple-choice test items.

Rules:
- Generate a single multiple-choice item for the given topic, cognitive level, and difficulty.
- Use plain ASCII text. No LaTeX, no Unicode symbols.
- The question must be clear, self-contained, and factually correct.
- Provide exactly 4 options where exactly one is correct. Distractors should reflect plausible misconceptions, not random values.
- "recall" items ask for a remembered fact. "comprehension" items require explaining or classifying. "application" items require applying a concept to a new situation.
- "easy" items should be solvable by most test takers at that level, "hard" items only by strong ones.
- Include a one-sentence rationale for the correct option.
- Do not repeat any question from the "already in the bank" list.`

// buildUserMessage constructs the user message from DraftInput and
// Config limits.
func buildUserMessage(input DraftInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Cognitive level: %s\n", input.Level)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)

	b.WriteString("\nAlready in the bank:\n")
	b.WriteString(buildDedup(input.Existing, cfg.MaxExisting))

	return b.String()
}

// buildDedup formats existing questions for the prompt, respecting the
// max limit. Returns "None" if there are none.
func buildDedup(existing []string, max int) string {
	if len(existing) == 0 {
		return "None"
	}

	if max > 0 && len(existing) > max {
		existing = existing[len(existing)-max:]
	}

	var b strings.Builder
	for i, q := range existing {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
