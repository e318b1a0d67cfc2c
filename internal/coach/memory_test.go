package coach

import (
	"fmt"
	"reflect"
	"testing"
)

func TestMemoryRecord(t *testing.T) {
	m := NewMemory()

	if m.Last() != "" {
		t.Errorf("fresh memory Last() = %q, want empty", m.Last())
	}

	m.Record(SensoryDetails)
	m.Record(Dialogue)

	if !m.Given(SensoryDetails) || !m.Given(Dialogue) {
		t.Error("recorded categories not reported as given")
	}
	if m.Given(Pacing) {
		t.Error("unrecorded category reported as given")
	}
	if m.Last() != Dialogue {
		t.Errorf("Last() = %s, want %s", m.Last(), Dialogue)
	}
}

func TestMemoryGivenFeedbackEviction(t *testing.T) {
	m := NewMemory()
	for i := 0; i < 12; i++ {
		m.Record(Category(fmt.Sprintf("cat_%d", i)))
	}

	if m.Given("cat_0") || m.Given("cat_1") {
		t.Error("oldest entries should have been evicted at capacity 10")
	}
	if !m.Given("cat_2") || !m.Given("cat_11") {
		t.Error("entries within capacity were lost")
	}
	if len(m.Recent(100)) != 10 {
		t.Errorf("history length = %d, want 10", len(m.Recent(100)))
	}
}

func TestMemoryFocusAreas(t *testing.T) {
	m := NewMemory()
	for i := 0; i < 7; i++ {
		m.Record(Category(fmt.Sprintf("cat_%d", i)))
	}
	// Re-recording an existing focus area must not duplicate it.
	m.Record("cat_6")

	focus := m.FocusAreas()
	if len(focus) != 5 {
		t.Fatalf("focus areas length = %d, want 5", len(focus))
	}
	want := []Category{"cat_2", "cat_3", "cat_4", "cat_5", "cat_6"}
	if !reflect.DeepEqual(focus, want) {
		t.Errorf("FocusAreas() = %v, want %v", focus, want)
	}
}

func TestMemoryRecent(t *testing.T) {
	m := NewMemory()
	m.Record(SensoryDetails)
	m.Record(Dialogue)
	m.Record(Pacing)

	want := []Category{Dialogue, Pacing}
	if got := m.Recent(2); !reflect.DeepEqual(got, want) {
		t.Errorf("Recent(2) = %v, want %v", got, want)
	}
	if got := m.Recent(10); len(got) != 3 {
		t.Errorf("Recent(10) length = %d, want 3", len(got))
	}
}
