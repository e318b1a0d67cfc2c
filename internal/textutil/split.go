package textutil

import (
	"regexp"
	"strings"
)

var (
	paragraphSplit = regexp.MustCompile(`\n\s*\n+`)
	sentenceSplit  = regexp.MustCompile(`[.!?]+`)
	wordPattern    = regexp.MustCompile(`[A-Za-z']+`)
)

// SplitParagraphs splits text on runs of blank lines and drops empty results.
func SplitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range paragraphSplit.Split(text, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// SplitSentences splits text on terminal punctuation runs and drops empty results.
func SplitSentences(text string) []string {
	var sentences []string
	for _, s := range sentenceSplit.Split(text, -1) {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// CountWords counts whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Words returns the lower-cased word tokens of text (letters and apostrophes).
func Words(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// ContainsWord reports whether text contains word as a whole word,
// case-insensitively. Multi-word phrases are matched as a token sequence.
func ContainsWord(text, word string) bool {
	return FindWord(strings.ToLower(text), strings.ToLower(word), 0) >= 0
}

// CountWord counts whole-word occurrences of word in text, case-insensitively.
func CountWord(text, word string) int {
	lower := strings.ToLower(text)
	target := strings.ToLower(word)
	count := 0
	for at := FindWord(lower, target, 0); at >= 0; at = FindWord(lower, target, at+len(target)) {
		count++
	}
	return count
}

// FindWord returns the byte offset of the first whole-word occurrence of target
// in text at or after the given offset, or -1. Both arguments are expected to be
// lower-cased by the caller.
func FindWord(text, target string, from int) int {
	if target == "" || from > len(text) {
		return -1
	}
	for {
		idx := strings.Index(text[from:], target)
		if idx < 0 {
			return -1
		}
		at := from + idx
		if boundaryBefore(text, at) && boundaryAfter(text, at+len(target)) {
			return at
		}
		from = at + 1
	}
}

func boundaryBefore(text string, at int) bool {
	if at == 0 {
		return true
	}
	return !isWordByte(text[at-1])
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	return !isWordByte(text[end])
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '\''
}
