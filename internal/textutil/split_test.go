package textutil

import (
	"reflect"
	"testing"
)

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "two paragraphs",
			text: "First paragraph here.\n\nSecond paragraph here.",
			want: []string{"First paragraph here.", "Second paragraph here."},
		},
		{
			name: "extra blank lines and whitespace",
			text: "One.\n\n   \n\nTwo.\n\n\n\nThree.",
			want: []string{"One.", "Two.", "Three."},
		},
		{
			name: "single newline is not a break",
			text: "Line one.\nLine two.",
			want: []string{"Line one.\nLine two."},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "  \n\n  \n  ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitParagraphs(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitParagraphs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "mixed terminators",
			text: "Hello there. Watch out! Really?",
			want: []string{"Hello there", "Watch out", "Really"},
		},
		{
			name: "terminator runs collapse",
			text: "What?! No way...",
			want: []string{"What", "No way"},
		},
		{
			name: "no terminator",
			text: "an unfinished thought",
			want: []string{"an unfinished thought"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSentences() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two three", 3},
		{"spaced   out\twords\nhere", 4},
	}

	for _, tt := range tests {
		if got := CountWords(tt.text); got != tt.want {
			t.Errorf("CountWords(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestFindWord(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		target string
		from   int
		want   int
	}{
		{"simple match", "the cat sat", "cat", 0, 4},
		{"no substring match", "scattered", "cat", 0, -1},
		{"match at start", "cat nap", "cat", 0, 0},
		{"match at end", "my cat", "cat", 0, 3},
		{"phrase match", "tom was sad today", "was sad", 0, 4},
		{"offset skips first", "then and then", "then", 1, 9},
		{"punctuation boundary", "stop, cat!", "cat", 0, 6},
		{"apostrophe blocks boundary", "the cat's", "cat", 0, -1},
		{"missing", "dog park", "cat", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindWord(tt.text, tt.target, tt.from); got != tt.want {
				t.Errorf("FindWord(%q, %q, %d) = %d, want %d", tt.text, tt.target, tt.from, got, tt.want)
			}
		})
	}
}

func TestCountWord(t *testing.T) {
	if got := CountWord("Then and then and THEN", "then"); got != 3 {
		t.Errorf("CountWord() = %d, want 3", got)
	}
	if got := CountWord("weathered leather", "the"); got != 0 {
		t.Errorf("CountWord() = %d, want 0", got)
	}
}

func TestNewSample(t *testing.T) {
	sample := NewSample("One sentence here. Another one!\n\nNew paragraph.")
	if sample.WordCount != 7 {
		t.Errorf("WordCount = %d, want 7", sample.WordCount)
	}
	if len(sample.Sentences) != 3 {
		t.Errorf("Sentences = %d, want 3", len(sample.Sentences))
	}
	if len(sample.Paragraphs) != 2 {
		t.Errorf("Paragraphs = %d, want 2", len(sample.Paragraphs))
	}
}
