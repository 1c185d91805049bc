package service

import (
	"strings"
	"testing"
)

func TestIsValidHint(t *testing.T) {
	tests := []struct {
		name  string
		hint  string
		level int
		want  bool
	}{
		{
			name:  "too short",
			hint:  "Use a hash",
			level: 2,
			want:  false,
		},
		{
			name:  "whitespace only",
			hint:  "     \n\t  ",
			level: 2,
			want:  false,
		},
		{
			name:  "too long",
			hint:  strings.Repeat("a", 600),
			level: 2,
			want:  false,
		},
		{
			name:  "refusal phrase",
			hint:  "I apologize, but this problem requires more context than I was given here to answer properly.",
			level: 2,
			want:  false,
		},
		{
			name:  "refusal phrase mixed case",
			hint:  "As an AI, providing the direct answer would spoil the learning experience for you entirely.",
			level: 2,
			want:  false,
		},
		{
			name:  "level 1 with domain keyword",
			hint:  "Consider using an array and a hash map to track what you have seen.",
			level: 1,
			want:  true,
		},
		{
			name:  "level 1 without domain keyword",
			hint:  "Look at the examples carefully and notice the pairs that add up nicely.",
			level: 1,
			want:  false,
		},
		{
			name:  "level 2 without domain keyword",
			hint:  "Look at the examples carefully and notice the pairs that add up nicely.",
			level: 2,
			want:  true,
		},
		{
			name:  "level 3 implementation hint",
			hint:  "Iterate once and store each value's index in a map, checking for the complement as you go.",
			level: 3,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidHint(tt.hint, tt.level); got != tt.want {
				t.Errorf("IsValidHint(%q, %d) = %v, want %v", tt.hint, tt.level, got, tt.want)
			}
		})
	}
}
