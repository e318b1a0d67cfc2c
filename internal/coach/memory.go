// Package coach selects the next coaching focus for a writing session and
// builds the instruction handed to the text-generation collaborator.
package coach

// Capacity limits for the per-session feedback memory.
const (
	maxGivenFeedback = 10
	maxFocusAreas    = 5
)

// Memory is the bounded per-session record of feedback already given. It has
// a single writer (the session's post-dispatch update) and is never shared
// across sessions.
type Memory struct {
	givenFeedback []Category
	focusAreas    []Category
	lastFeedback  Category
}

// NewMemory returns an empty feedback memory for a new session.
func NewMemory() *Memory {
	return &Memory{}
}

// Record notes one completed feedback cycle: the category is appended to the
// given-feedback history, becomes the last feedback type, and joins the focus
// set. Oldest entries are evicted at capacity.
func (m *Memory) Record(category Category) {
	m.givenFeedback = append(m.givenFeedback, category)
	if len(m.givenFeedback) > maxGivenFeedback {
		m.givenFeedback = m.givenFeedback[len(m.givenFeedback)-maxGivenFeedback:]
	}

	m.lastFeedback = category

	if !containsCategory(m.focusAreas, category) {
		m.focusAreas = append(m.focusAreas, category)
		if len(m.focusAreas) > maxFocusAreas {
			m.focusAreas = m.focusAreas[len(m.focusAreas)-maxFocusAreas:]
		}
	}
}

// Given reports whether a category is in the given-feedback history.
func (m *Memory) Given(category Category) bool {
	return containsCategory(m.givenFeedback, category)
}

// Last returns the most recently given category, or empty.
func (m *Memory) Last() Category {
	return m.lastFeedback
}

// Recent returns up to the n most recently given categories, oldest first.
func (m *Memory) Recent(n int) []Category {
	if n > len(m.givenFeedback) {
		n = len(m.givenFeedback)
	}
	out := make([]Category, n)
	copy(out, m.givenFeedback[len(m.givenFeedback)-n:])
	return out
}

// FocusAreas returns a copy of the current focus set, oldest first.
func (m *Memory) FocusAreas() []Category {
	out := make([]Category, len(m.focusAreas))
	copy(out, m.focusAreas)
	return out
}

func containsCategory(categories []Category, category Category) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}
