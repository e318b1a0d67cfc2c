// Package trigger decides whether a text change warrants a feedback cycle,
// independent of what the feedback will say.
package trigger

import (
	"strings"
	"time"

	"github.com/vampirenirmal/writecoach/internal/textutil"
)

// Kind names the condition that authorized a feedback cycle.
type Kind string

const (
	WordThreshold      Kind = "word_threshold"
	ProgressMilestone  Kind = "progress_milestone"
	ParagraphCompleted Kind = "paragraph_completed"
	ParagraphMilestone Kind = "paragraph_milestone"
	DialogueDetected   Kind = "dialogue_detected"
	TransitionDetected Kind = "transition_detected"
	TypingPause        Kind = "typing_pause"
)

// Event is an ephemeral trigger record, consumed once by the selector.
type Event struct {
	Kind      Kind
	Text      string
	WordCount int
}

const (
	// No trigger of any kind fires below this word count.
	minDetectWords = 15

	minTriggerWords     = 20
	progressDeltaWords  = 30
	completedParaWords  = 25
	milestoneParaWords  = 40
	milestoneParaStride = 20
	tailWindow          = 100

	pauseMinIdle   = 3 * time.Second
	pauseWordDelta = 10
)

var transitionWords = []string{
	"then", "next", "after", "finally", "meanwhile", "suddenly", "however",
}

// Detect evaluates one text change. Checks run in fixed order and
// short-circuit on the first match; the order is observable behavior.
func Detect(prevText, nextText string) *Event {
	prevWords := textutil.CountWords(prevText)
	nextWords := textutil.CountWords(nextText)
	if nextWords < minDetectWords {
		return nil
	}

	if prevWords < minTriggerWords && nextWords >= minTriggerWords {
		return &Event{Kind: WordThreshold, Text: nextText, WordCount: nextWords}
	}

	if nextWords-prevWords >= progressDeltaWords && nextWords >= minTriggerWords {
		return &Event{Kind: ProgressMilestone, Text: nextText, WordCount: nextWords}
	}

	prevParas := textutil.SplitParagraphs(prevText)
	nextParas := textutil.SplitParagraphs(nextText)
	if len(nextParas) > len(prevParas) && len(nextParas) >= 2 {
		completed := nextParas[len(nextParas)-2]
		if textutil.CountWords(completed) >= completedParaWords {
			return &Event{Kind: ParagraphCompleted, Text: completed, WordCount: nextWords}
		}
	}

	if len(nextParas) > 0 {
		current := nextParas[len(nextParas)-1]
		words := textutil.CountWords(current)
		if words >= milestoneParaWords && words%milestoneParaStride == 0 {
			return &Event{Kind: ParagraphMilestone, Text: current, WordCount: nextWords}
		}
	}

	if hasQuote(tail(nextText)) && !hasQuote(tail(prevText)) {
		return &Event{Kind: DialogueDetected, Text: nextText, WordCount: nextWords}
	}

	if nextWords >= minTriggerWords && newTransition(tail(prevText), tail(nextText)) {
		return &Event{Kind: TransitionDetected, Text: nextText, WordCount: nextWords}
	}

	return nil
}

func tail(text string) string {
	if len(text) <= tailWindow {
		return text
	}
	return text[len(text)-tailWindow:]
}

func hasQuote(s string) bool {
	return strings.ContainsAny(s, `"“”`)
}

func newTransition(prevTail, nextTail string) bool {
	prevLower := strings.ToLower(prevTail)
	nextLower := strings.ToLower(nextTail)
	for _, w := range transitionWords {
		if textutil.CountWord(nextLower, w) > textutil.CountWord(prevLower, w) {
			return true
		}
	}
	return false
}

// PauseDetector tracks typing pauses for one session. A pause fires only once
// per stretch of new writing: the word count must grow past the count at the
// previous pause event.
type PauseDetector struct {
	lastPauseWords int
}

// Check evaluates a typing pause of the given idle duration against the
// current text. Returns nil when the pause does not qualify.
func (p *PauseDetector) Check(text string, idle time.Duration) *Event {
	if idle < pauseMinIdle {
		return nil
	}
	words := textutil.CountWords(text)
	if words < minDetectWords || words <= p.lastPauseWords+pauseWordDelta {
		return nil
	}
	p.lastPauseWords = words
	return &Event{Kind: TypingPause, Text: text, WordCount: words}
}
