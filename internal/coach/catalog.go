package coach

import "github.com/vampirenirmal/writecoach/internal/analysis"

// Category identifies one coaching focus area.
type Category string

const (
	SensoryDetails       Category = "sensory_details"
	Dialogue             Category = "dialogue"
	CharacterEmotions    Category = "character_emotions"
	SentenceVariety      Category = "sentence_variety"
	VocabularyEnhance    Category = "vocabulary_enhancement"
	ConflictTension      Category = "conflict_tension"
	Pacing               Category = "pacing"
	SettingDetails       Category = "setting_details"
	GeneralEncouragement Category = "general_encouragement"
)

// Candidate is one entry in the fixed coaching catalog.
type Candidate struct {
	Category   Category
	PromptText string
	Condition  func(analysis.ContentSignals, *Memory) bool
}

func absent(category Category, missing func(analysis.ContentSignals) bool) func(analysis.ContentSignals, *Memory) bool {
	return func(signals analysis.ContentSignals, memory *Memory) bool {
		return missing(signals) && !memory.Given(category)
	}
}

func notYetGiven(category Category) func(analysis.ContentSignals, *Memory) bool {
	return func(_ analysis.ContentSignals, memory *Memory) bool {
		return !memory.Given(category)
	}
}

// catalog is the fixed, ordered candidate list. The order is a load-bearing
// tie-break: changing it changes observable rotation behavior.
var catalog = []Candidate{
	{
		Category:   SensoryDetails,
		PromptText: "Encourage the writer to add sensory details: what things look, sound, smell, or feel like.",
		Condition: absent(SensoryDetails, func(s analysis.ContentSignals) bool {
			return !s.HasDescription
		}),
	},
	{
		Category:   Dialogue,
		PromptText: "Encourage the writer to let characters speak; a line of dialogue can bring a scene to life.",
		Condition: absent(Dialogue, func(s analysis.ContentSignals) bool {
			return !s.HasDialogue
		}),
	},
	{
		Category:   CharacterEmotions,
		PromptText: "Encourage the writer to show what the character is thinking or feeling inside.",
		Condition: absent(CharacterEmotions, func(s analysis.ContentSignals) bool {
			return !s.HasCharacterDevelopment
		}),
	},
	{
		Category:   SentenceVariety,
		PromptText: "Encourage the writer to mix short punchy sentences with longer flowing ones.",
		Condition: absent(SentenceVariety, func(s analysis.ContentSignals) bool {
			return s.SentenceVariety == analysis.VarietySimple
		}),
	},
	{
		Category:   VocabularyEnhance,
		PromptText: "Encourage the writer to swap an ordinary word for a more vivid or precise one.",
		Condition: absent(VocabularyEnhance, func(s analysis.ContentSignals) bool {
			return s.VocabularyLevel == analysis.VocabBasic
		}),
	},
	{
		Category:   ConflictTension,
		PromptText: "Encourage the writer to add a problem, obstacle, or moment of tension to pull readers in.",
		Condition: absent(ConflictTension, func(s analysis.ContentSignals) bool {
			return !s.HasConflict
		}),
	},
	{
		Category:   Pacing,
		PromptText: "Encourage the writer to think about pacing: slow down the big moments, speed past the small ones.",
		Condition:  notYetGiven(Pacing),
	},
	{
		Category:   SettingDetails,
		PromptText: "Encourage the writer to ground the scene: where are we, and what makes this place particular?",
		Condition:  notYetGiven(SettingDetails),
	},
}

// fallbackCandidate fires when nothing in the catalog is valid.
var fallbackCandidate = Candidate{
	Category:   GeneralEncouragement,
	PromptText: "Offer warm, specific encouragement about what is already working in the writing.",
	Condition:  func(analysis.ContentSignals, *Memory) bool { return true },
}
