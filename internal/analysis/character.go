package analysis

import (
	"strings"
	"unicode"

	"github.com/vampirenirmal/writecoach/internal/textutil"
)

// CharacterReport summarizes how developed the draft's characters are.
type CharacterReport struct {
	HasCharacter   bool     `json:"has_character"`
	CharacterName  string   `json:"character_name"`
	HasPersonality bool     `json:"has_personality"`
	HasEmotions    bool     `json:"has_emotions"`
	HasDevelopment bool     `json:"has_development"`
	Suggestions    []string `json:"suggestions"`
}

var personalityWords = []string{
	"brave", "kind", "curious", "stubborn", "clever", "gentle", "bold",
	"shy", "loyal", "mischievous",
}

var emotionWords = []string{
	"happy", "sad", "angry", "scared", "excited", "nervous", "proud",
	"lonely", "jealous", "hopeful",
}

var developmentWords = []string{
	"learned", "changed", "grew", "understood", "realized", "became",
	"discovered", "overcame",
}

const (
	suggestName        = "Give your main character a name so readers can follow them through the story."
	suggestPersonality = "Show what kind of person your character is through their choices and habits."
	suggestEmotions    = "Let readers feel what your character feels at the big moments."
	suggestDevelopment = "Show how your character changes or what they learn by the end."
)

// AnalyzeCharacter inspects a draft for evidence of a named character with
// personality, emotion, and growth, and suggests what is still missing. The
// development suggestion only applies once the draft is long enough to carry
// an arc.
func AnalyzeCharacter(text string) CharacterReport {
	report := CharacterReport{
		HasPersonality: containsAnyWord(text, personalityWords),
		HasEmotions:    containsAnyWord(text, emotionWords),
		HasDevelopment: containsAnyWord(text, developmentWords),
	}

	names := capitalizedTokens(text)
	if len(names) >= 3 {
		report.HasCharacter = true
		report.CharacterName = names[0]
	}

	if !report.HasCharacter {
		report.Suggestions = append(report.Suggestions, suggestName)
	}
	if !report.HasPersonality {
		report.Suggestions = append(report.Suggestions, suggestPersonality)
	}
	if !report.HasEmotions {
		report.Suggestions = append(report.Suggestions, suggestEmotions)
	}
	if !report.HasDevelopment && textutil.CountWords(text) > 150 {
		report.Suggestions = append(report.Suggestions, suggestDevelopment)
	}

	return report
}

// capitalizedTokens returns the single-word tokens that start with an upper
// case letter. A crude proper-noun heuristic, but adequate for drafts.
func capitalizedTokens(text string) []string {
	var tokens []string
	for _, f := range strings.Fields(text) {
		f = strings.Trim(f, `.,!?;:"'()`)
		if f == "" {
			continue
		}
		runes := []rune(f)
		if unicode.IsUpper(runes[0]) && len(runes) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
