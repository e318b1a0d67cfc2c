// Package session orchestrates one writer's feedback loop: it decides when a
// text change becomes a feedback cycle, runs the selection and generation
// steps, and owns the per-session feedback memory.
package session

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/vampirenirmal/writecoach/internal/agent"
	"github.com/vampirenirmal/writecoach/internal/analysis"
	"github.com/vampirenirmal/writecoach/internal/coach"
	"github.com/vampirenirmal/writecoach/internal/rubric"
	"github.com/vampirenirmal/writecoach/internal/textutil"
	"github.com/vampirenirmal/writecoach/internal/trigger"
)

// Session is the feedback loop for one continuous writing interaction. All
// calls are expected from a single event loop; the in-flight flag (not a
// lock) guarantees the memory's single-writer contract while a generation
// call is pending.
type Session struct {
	id     string
	genre  rubric.Genre
	client agent.Client
	logger *slog.Logger

	cooldown time.Duration
	now      func() time.Time

	memory       *coach.Memory
	pause        trigger.PauseDetector
	inFlight     atomic.Bool
	lastDispatch time.Time
	cycleCount   int
}

// SessionOption customizes a session.
type SessionOption func(*Session)

// WithCooldown overrides the minimum gap between dispatched cycles.
func WithCooldown(d time.Duration) SessionOption {
	return func(s *Session) {
		s.cooldown = d
	}
}

// WithLogger configures a custom logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		s.now = now
	}
}

// New creates a session with fresh, empty feedback memory.
func New(id string, genre rubric.Genre, client agent.Client, opts ...SessionOption) *Session {
	s := &Session{
		id:       id,
		genre:    genre,
		client:   client,
		logger:   slog.Default().With("session", id),
		cooldown: 8 * time.Second,
		now:      time.Now,
		memory:   coach.NewMemory(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Memory exposes the session's feedback memory for inspection.
func (s *Session) Memory() *coach.Memory {
	return s.memory
}

// OnTextChanged evaluates one text change. When no feedback cycle fires it
// returns nil immediately; otherwise it returns a channel that will deliver
// exactly one coaching message once the generation call resolves or the
// deterministic fallback is chosen.
func (s *Session) OnTextChanged(ctx context.Context, prevText, nextText string) <-chan string {
	event := trigger.Detect(prevText, nextText)
	if event == nil {
		return nil
	}
	return s.dispatch(ctx, event)
}

// OnPause evaluates a typing pause of the given idle duration against the
// current text. Same delivery contract as OnTextChanged.
func (s *Session) OnPause(ctx context.Context, text string, idle time.Duration) <-chan string {
	event := s.pause.Check(text, idle)
	if event == nil {
		return nil
	}
	return s.dispatch(ctx, event)
}

// OnDemandAnalysis scores the text without touching feedback memory. Used by
// "check my work" and export flows.
func (s *Session) OnDemandAnalysis(text string) rubric.RubricScore {
	sample := textutil.NewSample(text)
	return rubric.Score(sample, analysis.Extract(text), s.genre)
}

// dispatch runs one feedback cycle. Triggers arriving while a cycle is in
// flight or within the cool-down window are dropped, not queued.
func (s *Session) dispatch(ctx context.Context, event *trigger.Event) <-chan string {
	if since := s.now().Sub(s.lastDispatch); s.lastDispatch != (time.Time{}) && since < s.cooldown {
		s.logger.Debug("trigger dropped: cool-down",
			"kind", event.Kind,
			"since_last_ms", since.Milliseconds())
		return nil
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		s.logger.Debug("trigger dropped: cycle in flight", "kind", event.Kind)
		return nil
	}
	s.lastDispatch = s.now()

	signals := analysis.Extract(event.Text)
	candidate := coach.Select(signals, s.memory)
	instruction := coach.BuildInstruction(candidate, event.Text, signals, s.memory)

	s.logger.Info("feedback cycle started",
		"kind", event.Kind,
		"category", candidate.Category,
		"word_count", event.WordCount)

	out := make(chan string, 1)
	go func() {
		message := s.generate(ctx, instruction)

		// Single post-dispatch memory write per completed cycle. The flag
		// clears only after the write, so the next cycle observes it.
		s.memory.Record(candidate.Category)
		s.cycleCount++
		s.inFlight.Store(false)

		out <- message
		close(out)
	}()
	return out
}

// generate calls the collaborator and falls back deterministically on any
// failure or empty result. Failure is never surfaced to the writer.
func (s *Session) generate(ctx context.Context, instruction string) string {
	if s.client != nil {
		message, err := s.client.Complete(ctx, instruction)
		if err == nil && message != "" {
			return message
		}
		if err != nil {
			s.logger.Warn("generation failed, using fallback", "error", err)
		}
	}
	return coach.FallbackMessage(s.cycleCount)
}
