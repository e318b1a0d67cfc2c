package coach

import (
	"fmt"
	"strings"

	"github.com/vampirenirmal/writecoach/internal/analysis"
)

// Select picks the single most relevant, non-repeated coaching candidate for
// the current signals. Valid candidates are collected in catalog order; the
// first whose category differs from the last-given one wins, falling back to
// the first valid entry, then to general encouragement.
func Select(signals analysis.ContentSignals, memory *Memory) Candidate {
	var valid []Candidate
	for _, c := range catalog {
		if c.Condition(signals, memory) {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		return fallbackCandidate
	}

	for _, c := range valid {
		if c.Category != memory.Last() {
			return c
		}
	}
	return valid[0]
}

// BuildInstruction assembles the instruction for the text-generation
// collaborator: the candidate's prompt, the paragraph under discussion, and
// session context (recent feedback, current signals).
func BuildInstruction(candidate Candidate, paragraph string, signals analysis.ContentSignals, memory *Memory) string {
	var b strings.Builder
	b.WriteString("You are a friendly writing coach for a student. ")
	b.WriteString(candidate.PromptText)
	b.WriteString("\nKeep it to two or three sentences, warm and specific. Never rewrite the student's text for them.\n")

	if paragraph != "" {
		fmt.Fprintf(&b, "\nThe student just wrote:\n%s\n", paragraph)
	}

	if recent := memory.Recent(3); len(recent) > 0 {
		names := make([]string, len(recent))
		for i, c := range recent {
			names[i] = string(c)
		}
		fmt.Fprintf(&b, "\nFeedback already given this session (do not repeat): %s\n", strings.Join(names, ", "))
	}

	fmt.Fprintf(&b,
		"\nWhat the draft already has: dialogue=%t description=%t interiority=%t conflict=%t sentences=%s vocabulary=%s\n",
		signals.HasDialogue, signals.HasDescription, signals.HasCharacterDevelopment,
		signals.HasConflict, signals.SentenceVariety, signals.VocabularyLevel)

	return b.String()
}
