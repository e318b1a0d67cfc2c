package textutil

// Sample is an immutable view of one text snapshot with its derived splits.
// Always built fresh from text; never mutated.
type Sample struct {
	Text       string   `json:"text"`
	WordCount  int      `json:"word_count"`
	Sentences  []string `json:"sentences"`
	Paragraphs []string `json:"paragraphs"`
}

// NewSample derives a Sample from raw text.
func NewSample(text string) Sample {
	return Sample{
		Text:       text,
		WordCount:  CountWords(text),
		Sentences:  SplitSentences(text),
		Paragraphs: SplitParagraphs(text),
	}
}
