package service

import "testing"

func TestClassifyProblem(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        ProblemCategory
	}{
		{"array by title", "Two Sum", "", CategoryArray},
		{"string by title", "Valid Palindrome", "", CategoryString},
		{"tree by title", "Binary Tree Level Order Traversal", "", CategoryTree},
		{"graph by title", "Number of Islands", "", CategoryGraph},
		{"dp by description", "Climbing Stairs", "Notice the optimal substructure in this problem.", CategoryDP},
		{"math by title", "Factorial Trailing Zeroes", "", CategoryMath},
		{"no match", "FizzBuzz Variant", "Print things in order.", CategoryGeneral},
		{"title outranks description", "Merge Intervals", "find the minimum number of intervals", CategoryArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyProblem(tt.title, tt.description); got != tt.want {
				t.Errorf("ClassifyProblem(%q, %q) = %q, want %q", tt.title, tt.description, got, tt.want)
			}
		})
	}
}

func TestFallbackHint(t *testing.T) {
	// Every category carries exactly three levels of canned text.
	for category, hints := range fallbackHints {
		for level := 1; level <= 3; level++ {
			if hints[level] == "" {
				t.Errorf("category %q level %d has no fallback text", category, level)
			}
			if got := FallbackHint(category, level); got != hints[level] {
				t.Errorf("FallbackHint(%q, %d) did not return the table entry", category, level)
			}
		}
	}

	if got := FallbackHint(CategoryArray, 7); got != genericEncouragement {
		t.Errorf("unknown level: got %q, want generic encouragement", got)
	}
	if got := FallbackHint(ProblemCategory("bogus"), 1); got != fallbackHints[CategoryGeneral][1] {
		t.Errorf("unknown category: got %q, want general level-1 hint", got)
	}
}
