// Package rubric computes the fixed four-criterion weighted score for a
// writing sample. The rules are intentionally coarse and keyword-driven; their
// ordering and caps are the defined behavior, not an approximation of a
// better model.
package rubric

import (
	"math"
	"strings"

	"github.com/vampirenirmal/writecoach/internal/analysis"
	"github.com/vampirenirmal/writecoach/internal/textutil"
)

// Genre selects the genre-specific bonus rules for the Ideas criterion.
type Genre string

const (
	GenreNarrative   Genre = "narrative"
	GenrePersuasive  Genre = "persuasive"
	GenreInformative Genre = "informative"
)

// Criterion names for the four rubric dimensions.
const (
	CriterionIdeas       = "ideas_content"
	CriterionStructure   = "structure_organization"
	CriterionLanguage    = "language_vocabulary"
	CriterionConventions = "conventions"
)

// Weights are the fixed per-criterion percentages.
var Weights = map[string]int{
	CriterionIdeas:       30,
	CriterionStructure:   25,
	CriterionLanguage:    25,
	CriterionConventions: 20,
}

// RubricScore holds the four criterion scores (1..5) and the combined 0..100
// overall score.
type RubricScore struct {
	Criteria map[string]int `json:"criteria"`
	Overall  int            `json:"overall"`
}

var emotionalWords = []string{
	"happy", "sad", "angry", "scared", "excited", "love", "hate", "afraid",
	"proud", "lonely",
}

var detailAdverbs = []string{
	"carefully", "quickly", "slowly", "quietly", "suddenly", "gently",
	"eagerly", "nervously",
}

var argumentConnectives = []string{
	"because", "therefore", "should", "must", "clearly", "obviously",
	"furthermore", "moreover",
}

var exampleMarkers = []string{
	"for example", "for instance", "such as", "like when",
}

var evidentiaryWords = []string{
	"research", "study", "evidence", "fact", "data", "according", "scientists",
	"experts",
}

var explanatoryConnectives = []string{
	"this means", "as a result", "which causes", "leads to", "in other words",
	"consequently",
}

var transitionWords = []string{
	"first", "then", "next", "after", "finally", "meanwhile", "later",
	"eventually",
}

var logicalConnectives = []string{
	"because", "so", "therefore", "since", "although", "however",
}

var openingFormulas = []string{
	"once upon a time", "one day", "it all started", "long ago",
	"it was a",
}

var closingFormulas = []string{
	"the end", "ever after", "from that day", "never forgot", "finally",
}

var figurativeWords = []string{
	"like a", "as if", "seemed to", "shimmering", "gleaming", "whispered",
	"danced", "roared",
}

// Score computes the rubric for one sample. Each criterion starts at 1 and is
// incremented by its rule list in order, capped at 5.
func Score(sample textutil.Sample, signals analysis.ContentSignals, genre Genre) RubricScore {
	criteria := map[string]int{
		CriterionIdeas:       ideasScore(sample, signals, genre),
		CriterionStructure:   structureScore(sample, genre),
		CriterionLanguage:    languageScore(sample),
		CriterionConventions: conventionsScore(sample),
	}

	weighted := 0.0
	for name, score := range criteria {
		weighted += float64(score * Weights[name])
	}

	return RubricScore{
		Criteria: criteria,
		Overall:  int(math.Round(weighted / 5)),
	}
}

func ideasScore(sample textutil.Sample, signals analysis.ContentSignals, genre Genre) int {
	score := 1
	if sample.WordCount >= 30 {
		score++
	}
	if sample.WordCount >= 80 {
		score++
	}

	lower := strings.ToLower(sample.Text)
	switch genre {
	case GenrePersuasive:
		if anyWord(lower, argumentConnectives) {
			score++
		}
		if anyWord(lower, exampleMarkers) {
			score++
		}
		if sample.WordCount >= 120 {
			score++
		}
	case GenreInformative:
		if anyWord(lower, evidentiaryWords) {
			score++
		}
		if anyWord(lower, explanatoryConnectives) {
			score++
		}
		if sample.WordCount >= 100 {
			score++
		}
	default: // narrative
		if signals.HasDialogue {
			score++
		}
		if signals.HasDescription {
			score++
		}
		if anyWord(lower, emotionalWords) {
			score++
		}
		if sample.WordCount >= 150 && anyWord(lower, detailAdverbs) {
			score++
		}
	}

	return cap5(score)
}

func structureScore(sample textutil.Sample, genre Genre) int {
	score := 1
	if len(sample.Sentences) >= 3 {
		score++
	}
	if len(sample.Paragraphs) >= 2 {
		score++
	}

	lower := strings.ToLower(sample.Text)
	if anyWord(lower, transitionWords) {
		score++
	}
	if len(sample.Paragraphs) >= 2 && anyWord(lower, logicalConnectives) {
		score++
	}
	if genre == GenreNarrative && hasStoryFormula(lower) {
		score++
	}

	return cap5(score)
}

// hasStoryFormula checks the first and last 100 characters for a stock
// opening or closing phrase.
func hasStoryFormula(lower string) bool {
	head := lower
	if len(head) > 100 {
		head = head[:100]
	}
	tail := lower
	if len(tail) > 100 {
		tail = tail[len(tail)-100:]
	}
	for _, f := range openingFormulas {
		if strings.Contains(head, f) {
			return true
		}
	}
	for _, f := range closingFormulas {
		if strings.Contains(tail, f) {
			return true
		}
	}
	return false
}

func languageScore(sample textutil.Sample) int {
	score := 1
	words := textutil.Words(sample.Text)
	if len(words) > 0 {
		unique := make(map[string]struct{}, len(words))
		for _, w := range words {
			unique[w] = struct{}{}
		}
		ratio := float64(len(unique)) / float64(len(words))
		if ratio > 0.6 {
			score++
		}
		if ratio > 0.7 {
			score++
		}
	}

	for _, w := range words {
		if len(w) > 7 {
			score++
			break
		}
	}
	if strings.ContainsAny(sample.Text, ",;:") {
		score++
	}
	if anyWord(strings.ToLower(sample.Text), figurativeWords) {
		score++
	}

	return cap5(score)
}

func conventionsScore(sample textutil.Sample) int {
	score := 1
	trimmed := strings.TrimSpace(sample.Text)
	if trimmed != "" && trimmed[0] >= 'A' && trimmed[0] <= 'Z' {
		score++
	}
	if strings.ContainsAny(trimmed, ".!?") {
		score++
	}
	if strings.ContainsAny(trimmed, ",;:") {
		score++
	}
	if strings.ContainsAny(trimmed, `"“”`) {
		score++
	}
	if strings.ContainsAny(trimmed, "'’—-") {
		score++
	}

	return cap5(score)
}

func anyWord(lower string, words []string) bool {
	for _, w := range words {
		if textutil.FindWord(lower, w, 0) >= 0 {
			return true
		}
	}
	return false
}

func cap5(score int) int {
	if score > 5 {
		return 5
	}
	return score
}
