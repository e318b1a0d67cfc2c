package storage

import (
	"context"
	"testing"
)

func TestFileSystemSaveLoad(t *testing.T) {
	fs := NewFileSystem(t.TempDir())
	ctx := context.Background()

	if err := fs.Save(ctx, "reports/draft.md", []byte("# Report")); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := fs.Load(ctx, "reports/draft.md")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if string(data) != "# Report" {
		t.Errorf("Load() = %q", data)
	}
}

func TestFileSystemList(t *testing.T) {
	fs := NewFileSystem(t.TempDir())
	ctx := context.Background()

	for _, name := range []string{"a.md", "b.md", "notes.txt"} {
		if err := fs.Save(ctx, name, []byte("x")); err != nil {
			t.Fatal(err)
		}
	}

	matches, err := fs.List(ctx, "*.md")
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("List(*.md) = %v, want 2 matches", matches)
	}
}

func TestFileSystemRejectsEscapes(t *testing.T) {
	fs := NewFileSystem(t.TempDir())
	ctx := context.Background()

	tests := []string{
		"../outside.md",
		"reports/../../outside.md",
		"/etc/passwd",
	}
	for _, path := range tests {
		if err := fs.Save(ctx, path, []byte("x")); err == nil {
			t.Errorf("Save(%q) accepted an escaping path", path)
		}
		if _, err := fs.Load(ctx, path); err == nil {
			t.Errorf("Load(%q) accepted an escaping path", path)
		}
	}
}
