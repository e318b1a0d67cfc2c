package analysis

import "testing"

func TestAnalyzeShowTellSingleIssue(t *testing.T) {
	text := "Tom was sad about leaving."
	issues := AnalyzeShowTell(text)

	if len(issues) != 1 {
		t.Fatalf("AnalyzeShowTell() returned %d issues, want 1", len(issues))
	}

	issue := issues[0]
	if issue.Category != CategoryEmotion {
		t.Errorf("Category = %s, want %s", issue.Category, CategoryEmotion)
	}
	if issue.Original != "was sad" {
		t.Errorf("Original = %q, want %q", issue.Original, "was sad")
	}
	if got := text[issue.Start:issue.End]; got != "was sad" {
		t.Errorf("span %d:%d = %q, want %q", issue.Start, issue.End, got, "was sad")
	}
	if len(issue.Suggestions) == 0 {
		t.Error("Suggestions is empty")
	}
	if issue.Example.Before == issue.Example.After {
		t.Error("Example before and after should differ")
	}
}

func TestAnalyzeShowTellMultipleMatches(t *testing.T) {
	text := "She was sad on Monday. She was sad again on Tuesday. He was brave."
	issues := AnalyzeShowTell(text)

	if len(issues) != 3 {
		t.Fatalf("got %d issues, want 3", len(issues))
	}

	emotions, traits := 0, 0
	for _, issue := range issues {
		switch issue.Category {
		case CategoryEmotion:
			emotions++
		case CategoryTrait:
			traits++
		}
	}
	if emotions != 2 || traits != 1 {
		t.Errorf("categories = %d emotion / %d trait, want 2/1", emotions, traits)
	}
}

func TestAnalyzeShowTellCleanText(t *testing.T) {
	if issues := AnalyzeShowTell("Her hands trembled as she opened the letter."); len(issues) != 0 {
		t.Errorf("got %d issues on clean text, want 0", len(issues))
	}
	if issues := AnalyzeShowTell(""); len(issues) != 0 {
		t.Errorf("got %d issues on empty text, want 0", len(issues))
	}
}

func TestShowTellRatio(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantShowing  int
		wantTelling  int
		wantRatio    float64
		wantVerdict  string
	}{
		{
			name:        "three to one is excellent",
			text:        "He trembled. She grinned. He frowned. Tom was sad.",
			wantShowing: 3,
			wantTelling: 1,
			wantRatio:   3.0,
			wantVerdict: "excellent",
		},
		{
			name:        "half is needs improvement",
			text:        "He trembled. Tom was sad. Ana was scared.",
			wantShowing: 1,
			wantTelling: 2,
			wantRatio:   0.5,
			wantVerdict: "needs_improvement",
		},
		{
			name:        "between half and excellent is good",
			text:        "He trembled and gasped. Tom was sad.",
			wantShowing: 2,
			wantTelling: 1,
			wantRatio:   2.0,
			wantVerdict: "good",
		},
		{
			name:        "all telling is poor",
			text:        "Tom was sad. Mia was happy.",
			wantShowing: 0,
			wantTelling: 2,
			wantRatio:   0,
			wantVerdict: "poor",
		},
		{
			name:        "no telling uses raw showing count",
			text:        "She whispered and he flinched. They both gasped.",
			wantShowing: 3,
			wantTelling: 0,
			wantRatio:   3.0,
			wantVerdict: "excellent",
		},
		{
			name:        "empty text is poor",
			text:        "",
			wantShowing: 0,
			wantTelling: 0,
			wantRatio:   0,
			wantVerdict: "poor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShowTellRatio(tt.text)
			if got.ShowingCount != tt.wantShowing {
				t.Errorf("ShowingCount = %d, want %d", got.ShowingCount, tt.wantShowing)
			}
			if got.TellingCount != tt.wantTelling {
				t.Errorf("TellingCount = %d, want %d", got.TellingCount, tt.wantTelling)
			}
			if got.Ratio != tt.wantRatio {
				t.Errorf("Ratio = %v, want %v", got.Ratio, tt.wantRatio)
			}
			if got.Assessment != tt.wantVerdict {
				t.Errorf("Assessment = %s, want %s", got.Assessment, tt.wantVerdict)
			}
		})
	}
}
