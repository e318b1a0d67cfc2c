package rubric

import (
	"strings"
	"testing"

	"github.com/vampirenirmal/writecoach/internal/analysis"
	"github.com/vampirenirmal/writecoach/internal/textutil"
)

func scoreText(text string, genre Genre) RubricScore {
	return Score(textutil.NewSample(text), analysis.Extract(text), genre)
}

func TestScoreEmptyText(t *testing.T) {
	got := scoreText("", GenreNarrative)

	for name, score := range got.Criteria {
		if score != 1 {
			t.Errorf("criterion %s = %d, want 1 for empty text", name, score)
		}
	}
	if got.Overall != 20 {
		t.Errorf("Overall = %d, want 20", got.Overall)
	}
}

func TestScoreBareLongText(t *testing.T) {
	// 35 identical words: clears the 30-word Ideas gate and nothing else.
	got := scoreText(strings.Repeat("tree ", 35), GenreNarrative)

	want := map[string]int{
		CriterionIdeas:       2,
		CriterionStructure:   1,
		CriterionLanguage:    1,
		CriterionConventions: 1,
	}
	for name, wantScore := range want {
		if got.Criteria[name] != wantScore {
			t.Errorf("criterion %s = %d, want %d", name, got.Criteria[name], wantScore)
		}
	}
	if got.Overall != 26 {
		t.Errorf("Overall = %d, want 26", got.Overall)
	}
}

func TestScoreBounds(t *testing.T) {
	texts := []string{
		"",
		"one line",
		`Once upon a time, Mia found a gleaming, magnificent key. "Whose is this?" she wondered aloud. But nobody answered, so she searched carefully. Then, at last, she faced the old door itself. In the end, she learned the key was hers all along; she carried it home.`,
		strings.Repeat("word ", 500),
	}

	for _, text := range texts {
		for _, genre := range []Genre{GenreNarrative, GenrePersuasive, GenreInformative} {
			got := scoreText(text, genre)
			for name, score := range got.Criteria {
				if score < 1 || score > 5 {
					t.Errorf("criterion %s = %d out of [1,5] for genre %s", name, score, genre)
				}
			}
			if got.Overall < 0 || got.Overall > 100 {
				t.Errorf("Overall = %d out of [0,100]", got.Overall)
			}
		}
	}
}

func TestIdeasGenreRules(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		genre Genre
		want  int
	}{
		{
			name:  "persuasive connective and example marker",
			text:  "We should act now because experts agree. For example, last year it worked.",
			genre: GenrePersuasive,
			want:  3,
		},
		{
			name:  "informative evidence and explanation",
			text:  "Research shows bees matter. As a result, gardens thrive.",
			genre: GenreInformative,
			want:  3,
		},
		{
			name:  "narrative dialogue bonus",
			text:  `"Run!" he yelled across the yard.`,
			genre: GenreNarrative,
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreText(tt.text, tt.genre)
			if got.Criteria[CriterionIdeas] != tt.want {
				t.Errorf("ideas = %d, want %d", got.Criteria[CriterionIdeas], tt.want)
			}
		})
	}
}

func TestScoreMonotonicOnAddedFeature(t *testing.T) {
	base := "The fox watched the field for a long while and waited there quietly past dusk."
	richer := base + ` "Patience," the fox whispered.`

	before := scoreText(base, GenreNarrative)
	after := scoreText(richer, GenreNarrative)

	for name := range before.Criteria {
		if after.Criteria[name] < before.Criteria[name] {
			t.Errorf("criterion %s decreased after adding dialogue: %d -> %d",
				name, before.Criteria[name], after.Criteria[name])
		}
	}
}

func TestConventionsCap(t *testing.T) {
	// Leading capital, terminal punctuation, comma, quotes, apostrophe:
	// five bonuses on a base of 1, capped at 5.
	got := scoreText(`He said, "Don't go out there!"`, GenreNarrative)
	if got.Criteria[CriterionConventions] != 5 {
		t.Errorf("conventions = %d, want 5", got.Criteria[CriterionConventions])
	}
}

func TestLanguageUniqueRatio(t *testing.T) {
	// Ten distinct short words: ratio 1.0 clears both thresholds, nothing
	// else qualifies.
	got := scoreText("the quick brown fox jumps over a lazy dog today", GenreNarrative)
	if got.Criteria[CriterionLanguage] != 3 {
		t.Errorf("language = %d, want 3", got.Criteria[CriterionLanguage])
	}
}

func TestOverallWeighting(t *testing.T) {
	// All criteria at 5 must weight to exactly 100.
	criteria := map[string]int{
		CriterionIdeas:       5,
		CriterionStructure:   5,
		CriterionLanguage:    5,
		CriterionConventions: 5,
	}
	weighted := 0
	for name, s := range criteria {
		weighted += s * Weights[name]
	}
	if weighted/5 != 100 {
		t.Errorf("weighted total = %d, want 100", weighted/5)
	}
}
