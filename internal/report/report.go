// Package report renders an on-demand analysis as a Markdown report for the
// "check my work" and export flows. It never participates in the live
// feedback loop.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/vampirenirmal/writecoach/internal/analysis"
	"github.com/vampirenirmal/writecoach/internal/rubric"
	"github.com/vampirenirmal/writecoach/internal/textutil"
)

// Analysis bundles every on-demand result for one sample.
type Analysis struct {
	Sample    textutil.Sample
	Signals   analysis.ContentSignals
	Score     rubric.RubricScore
	Stages    analysis.StageReport
	ShowTell  analysis.ShowTellSummary
	Issues    []analysis.ShowTellIssue
	Character analysis.CharacterReport
}

// Analyze runs the full on-demand pipeline over one text snapshot.
func Analyze(text string, genre rubric.Genre) Analysis {
	sample := textutil.NewSample(text)
	signals := analysis.Extract(text)
	return Analysis{
		Sample:    sample,
		Signals:   signals,
		Score:     rubric.Score(sample, signals, genre),
		Stages:    analysis.DetectStages(text),
		ShowTell:  analysis.ShowTellRatio(text),
		Issues:    analysis.AnalyzeShowTell(text),
		Character: analysis.AnalyzeCharacter(text),
	}
}

var criterionLabels = []struct {
	key   string
	label string
}{
	{rubric.CriterionIdeas, "Ideas & Content"},
	{rubric.CriterionStructure, "Structure & Organization"},
	{rubric.CriterionLanguage, "Language & Vocabulary"},
	{rubric.CriterionConventions, "Conventions"},
}

// Render produces the Markdown report for one analysis.
func Render(a Analysis, title string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Writing Report: %s\n\n", title)
	fmt.Fprintf(&b, "*Generated %s*\n\n", time.Now().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "**Overall score: %d/100** (%d words, %d sentences, %d paragraphs)\n\n",
		a.Score.Overall, a.Sample.WordCount, len(a.Sample.Sentences), len(a.Sample.Paragraphs))

	b.WriteString("## Rubric\n\n")
	b.WriteString("| Criterion | Score | Weight |\n|---|---|---|\n")
	for _, c := range criterionLabels {
		fmt.Fprintf(&b, "| %s | %d/5 | %d%% |\n", c.label, a.Score.Criteria[c.key], rubric.Weights[c.key])
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Story Arc\n\nCurrent stage: **%s** (%.0f%% of the arc reached)\n\n",
		a.Stages.CurrentStage, a.Stages.Progress)
	for _, s := range a.Stages.Stages {
		mark := " "
		if s.Reached {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", mark, s.Stage)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Show vs. Tell\n\nAssessment: **%s** (showing %d, telling %d)\n\n",
		a.ShowTell.Assessment, a.ShowTell.ShowingCount, a.ShowTell.TellingCount)
	for _, issue := range a.Issues {
		fmt.Fprintf(&b, "- %q (%s): %s\n", issue.Original, issue.Category, issue.Suggestions[0])
	}
	b.WriteString("\n")

	if len(a.Character.Suggestions) > 0 {
		b.WriteString("## Character\n\n")
		for _, s := range a.Character.Suggestions {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}

	return b.String()
}
