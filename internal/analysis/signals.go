package analysis

import (
	"strings"

	"github.com/vampirenirmal/writecoach/internal/textutil"
)

// SentenceVariety classifies how varied a sample's sentence structure is.
type SentenceVariety string

const (
	VarietySimple  SentenceVariety = "simple"
	VarietyMixed   SentenceVariety = "mixed"
	VarietyComplex SentenceVariety = "complex"
)

// VocabularyLevel classifies the sophistication of a sample's word choice.
type VocabularyLevel string

const (
	VocabBasic        VocabularyLevel = "basic"
	VocabIntermediate VocabularyLevel = "intermediate"
	VocabAdvanced     VocabularyLevel = "advanced"
)

// ContentSignals is the fixed set of boolean/enum signals extracted from a
// writing sample. Recomputed fresh on every call; no history dependence.
type ContentSignals struct {
	HasDialogue             bool            `json:"has_dialogue"`
	HasDescription          bool            `json:"has_description"`
	HasCharacterDevelopment bool            `json:"has_character_development"`
	HasConflict             bool            `json:"has_conflict"`
	SentenceVariety         SentenceVariety `json:"sentence_variety"`
	VocabularyLevel         VocabularyLevel `json:"vocabulary_level"`
}

var sensoryWords = []string{
	"bright", "dark", "loud", "quiet", "soft", "rough", "smooth", "sweet",
	"bitter", "warm", "cold", "shimmering", "gleaming", "fragrant", "musty",
	"crisp", "velvety", "thunderous", "glowing", "sparkling",
}

var interiorityVerbs = []string{
	"felt", "thought", "realized", "wondered", "decided", "remembered",
}

var conflictWords = []string{
	"but", "however", "suddenly", "unfortunately", "problem", "trouble",
	"danger", "afraid", "worried",
}

var sophisticatedWords = []string{
	"magnificent", "extraordinary", "peculiar", "mysterious", "ancient",
	"enormous", "delicate", "furious", "gleaming", "treacherous",
	"luminous", "desolate", "exquisite", "formidable", "melancholy",
}

var subordinatingConjunctions = []string{
	"because", "although", "while", "since", "unless", "whereas", "after",
	"before", "when", "if",
}

// Extract computes ContentSignals from raw text. Pure and idempotent; empty
// input yields the zero-signal result.
func Extract(text string) ContentSignals {
	return ContentSignals{
		HasDialogue:             strings.ContainsAny(text, `"“”`),
		HasDescription:          containsAnyWord(text, sensoryWords),
		HasCharacterDevelopment: containsAnyWord(text, interiorityVerbs),
		HasConflict:             containsAnyWord(text, conflictWords),
		SentenceVariety:         sentenceVariety(text),
		VocabularyLevel:         vocabularyLevel(text),
	}
}

func containsAnyWord(text string, words []string) bool {
	lower := strings.ToLower(text)
	for _, w := range words {
		if textutil.FindWord(lower, w, 0) >= 0 {
			return true
		}
	}
	return false
}

func sentenceVariety(text string) SentenceVariety {
	sentences := textutil.SplitSentences(text)
	if len(sentences) < 3 {
		return VarietySimple
	}
	varied := 0
	for _, s := range sentences {
		if strings.ContainsAny(s, ",;") || containsAnyWord(s, subordinatingConjunctions) {
			varied++
		}
	}
	ratio := float64(varied) / float64(len(sentences))
	switch {
	case ratio > 0.6:
		return VarietyComplex
	case ratio > 0.3:
		return VarietyMixed
	default:
		return VarietySimple
	}
}

func vocabularyLevel(text string) VocabularyLevel {
	words := textutil.Words(text)
	if len(words) == 0 {
		return VocabBasic
	}
	advanced := 0
	for _, w := range words {
		if len(w) > 7 || isSophisticated(w) {
			advanced++
		}
	}
	ratio := float64(advanced) / float64(len(words))
	switch {
	case ratio > 0.15:
		return VocabAdvanced
	case ratio > 0.08:
		return VocabIntermediate
	default:
		return VocabBasic
	}
}

func isSophisticated(word string) bool {
	for _, s := range sophisticatedWords {
		if word == s {
			return true
		}
	}
	return false
}
