package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vampirenirmal/writecoach/internal/storage"
)

// Writer saves rendered reports through a storage backend.
type Writer struct {
	store storage.Store
}

// NewWriter creates a report writer over the given store.
func NewWriter(store storage.Store) *Writer {
	return &Writer{store: store}
}

// Write renders the analysis and saves it with a timestamped filename derived
// from the title. Returns the store-relative path written.
func (w *Writer) Write(ctx context.Context, a Analysis, title string) (string, error) {
	name := fmt.Sprintf("%s_%s.md", time.Now().Format("2006-01-02_1504"), sanitizeForFilename(title, 30))

	if err := w.store.Save(ctx, name, []byte(Render(a, title))); err != nil {
		return "", fmt.Errorf("saving report: %w", err)
	}
	return name, nil
}

// sanitizeForFilename converts a string to a safe filename component.
func sanitizeForFilename(s string, maxLen int) string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '.' || r == '/':
			b.WriteByte('-')
		}
	}
	s = b.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")
	if len(s) > maxLen {
		s = strings.TrimRight(s[:maxLen], "-")
	}
	if s == "" {
		s = "report"
	}
	return s
}
