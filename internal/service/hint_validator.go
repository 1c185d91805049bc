package service

import "strings"

const (
	// minHintChars is the single authoritative length floor, applied to the
	// trimmed text.
	minHintChars = 20
	maxHintChars = 500
)

// refusalPhrases mark responses where the model declined instead of hinting.
var refusalPhrases = []string{
	"i cannot",
	"i can't",
	"as an ai",
	"i'm not able",
	"sorry",
	"apologize",
	"i don't have",
	"unable to",
}

// level1Keywords: a level-1 hint must name a problem type or approach.
var level1Keywords = []string{
	"algorithm", "approach", "problem", "consider", "think",
	"method", "technique", "strategy", "array", "string",
	"tree", "graph", "dynamic", "hash", "sort",
}

// IsValidHint rejects degenerate or refusal-like generation output.
func IsValidHint(hint string, level int) bool {
	trimmed := strings.TrimSpace(hint)
	if len(trimmed) < minHintChars {
		return false
	}
	if len(hint) > maxHintChars {
		return false
	}

	hintLower := strings.ToLower(hint)
	for _, phrase := range refusalPhrases {
		if strings.Contains(hintLower, phrase) {
			return false
		}
	}

	if level == 1 {
		found := false
		for _, keyword := range level1Keywords {
			if strings.Contains(hintLower, keyword) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
