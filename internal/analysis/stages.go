package analysis

import (
	"strings"

	"github.com/vampirenirmal/writecoach/internal/textutil"
)

// Stage names the six phases of the story arc, in order.
type Stage string

const (
	StageOpening          Stage = "opening"
	StageIncitingIncident Stage = "inciting_incident"
	StageRisingAction     Stage = "rising_action"
	StageClimax           Stage = "climax"
	StageFallingAction    Stage = "falling_action"
	StageResolution       Stage = "resolution"
)

// StageStatus records whether one arc stage has been reached in the draft.
type StageStatus struct {
	Stage     Stage `json:"stage"`
	Reached   bool  `json:"reached"`
	WordCount int   `json:"word_count"`
}

// StageReport is the full arc picture for a draft: all six stages in story
// order, the first stage not yet reached, and overall progress.
type StageReport struct {
	Stages       []StageStatus `json:"stages"`
	CurrentStage Stage         `json:"current_stage"`
	Progress     float64       `json:"progress"`
}

type stageGate struct {
	stage    Stage
	minWords int
	markers  []string
}

// Gates are evaluated independently; a stage is reached once its word gate is
// passed and any marker appears, regardless of earlier stages.
var stageGates = []stageGate{
	{stage: StageOpening, minWords: 20},
	{stage: StageIncitingIncident, minWords: 50, markers: []string{
		"suddenly", "without warning", "then", "that's when", "all at once", "unexpectedly",
	}},
	{stage: StageRisingAction, minWords: 100, markers: []string{
		"tried", "struggled", "attempted", "searched", "chased", "fought", "worse",
	}},
	{stage: StageClimax, minWords: 180, markers: []string{
		"finally", "at last", "moment of truth", "now or never", "faced", "confronted",
	}},
	{stage: StageFallingAction, minWords: 220, markers: []string{
		"after that", "afterwards", "slowly", "calmed", "settled", "began to",
	}},
	{stage: StageResolution, minWords: 250, markers: []string{
		"in the end", "from then on", "never again", "learned", "realized", "home", "safe",
	}},
}

// DetectStages classifies how far along the six-stage story arc a draft has
// progressed. Empty input yields all stages unreached.
func DetectStages(text string) StageReport {
	wordCount := textutil.CountWords(text)
	lower := strings.ToLower(text)

	stages := make([]StageStatus, 0, len(stageGates))
	reached := 0
	for _, gate := range stageGates {
		ok := wordCount >= gate.minWords && (len(gate.markers) == 0 || anyMarker(lower, gate.markers))
		if ok {
			reached++
		}
		stages = append(stages, StageStatus{
			Stage:     gate.stage,
			Reached:   ok,
			WordCount: gate.minWords,
		})
	}

	current := stages[len(stages)-1].Stage
	for _, s := range stages {
		if !s.Reached {
			current = s.Stage
			break
		}
	}

	return StageReport{
		Stages:       stages,
		CurrentStage: current,
		Progress:     float64(reached) / float64(len(stageGates)) * 100,
	}
}

func anyMarker(lower string, markers []string) bool {
	for _, m := range markers {
		if textutil.FindWord(lower, m, 0) >= 0 {
			return true
		}
	}
	return false
}
