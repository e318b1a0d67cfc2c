package coach

// fallbackMessages are the genre-agnostic encouragements used when the
// text-generation collaborator is unavailable. Selection cycles by completed
// feedback count so repeated failures rotate rather than repeat.
var fallbackMessages = []string{
	"You're making great progress! Keep those words flowing.",
	"Nice work so far. What happens next in your story?",
	"Your writing is coming along. Try reading your last paragraph out loud.",
	"Keep going! Every sentence you add makes the picture clearer.",
	"You're building something good here. Don't stop now.",
	"Great effort! Think about what your reader would want to know next.",
}

// FallbackMessage returns the deterministic encouragement for the given
// completed-cycle count.
func FallbackMessage(cycleCount int) string {
	if cycleCount < 0 {
		cycleCount = 0
	}
	return fallbackMessages[cycleCount%len(fallbackMessages)]
}
