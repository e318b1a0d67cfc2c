package agent

import (
	"context"
	"fmt"
	"strings"
)

// MockClient provides canned coaching responses for tests and offline use.
type MockClient struct {
	responses map[string]string
	failWith  error
	calls     int
}

// NewMockClient creates a mock generation client keyed on instruction
// content.
func NewMockClient() *MockClient {
	return &MockClient{
		responses: map[string]string{
			"sensory":  "I can picture your scene already! Try adding what your character hears or smells to pull us in even closer.",
			"dialogue": "Your story is moving along nicely. What would your character say out loud right now? A line of dialogue could make this moment pop.",
			"emotion":  "Great pacing here. Let us peek inside your character's head: what are they feeling as this happens?",
			"sentence": "Nice steady writing! Try following a long sentence with a short one. It keeps readers on their toes.",
			"tension":  "Things are going smoothly for your character. Maybe too smoothly? A little trouble could make this even more exciting.",
		},
	}
}

// FailWith makes every subsequent Complete call return err.
func (m *MockClient) FailWith(err error) {
	m.failWith = err
}

// Calls reports how many times Complete has been invoked.
func (m *MockClient) Calls() int {
	return m.calls
}

// Complete returns the canned response whose key appears in the instruction,
// or a generic message.
func (m *MockClient) Complete(_ context.Context, instruction string) (string, error) {
	m.calls++
	if m.failWith != nil {
		return "", m.failWith
	}

	lower := strings.ToLower(instruction)
	for key, response := range m.responses {
		if strings.Contains(lower, key) {
			return response, nil
		}
	}
	return fmt.Sprintf("Keep writing! You're on message %d of a great draft.", m.calls), nil
}
