package service

import (
	"fmt"
	"strings"

	"github.com/lshigami/codementor/internal/dto"
	"github.com/lshigami/codementor/internal/model"
)

const (
	maxDescriptionChars = 400
	maxExampleChars     = 100
	maxExamples         = 2

	noLevel1HintPlaceholder = "No Level 1 hint available"
	noLevel2HintPlaceholder = "No Level 2 hint available"
)

const level1Template = `
You are a coding mentor helping a student with a programming problem. Provide a Level 1 hint that identifies the problem type and suggests the general approach WITHOUT giving away the solution.

Problem: %s
Difficulty: %s
Description: %s
Examples: %s

Level 1 Hint Guidelines:
- Identify the problem category (array, string, tree, graph, dynamic programming, etc.)
- Suggest the general algorithmic approach
- Mention relevant data structures
- DO NOT provide specific implementation details
- Keep it educational and encouraging
- Limit to 2-3 sentences

Provide only the hint text, nothing else:
`

const level2Template = `
You are a coding mentor providing a Level 2 hint. The student already received Level 1 guidance.

Problem: %s
Difficulty: %s
Description: %s
Examples: %s
Previous Hint: %s

Level 2 Hint Guidelines:
- Build upon the Level 1 hint
- Provide more specific algorithmic guidance
- Suggest the step-by-step approach
- Mention time/space complexity considerations
- Give hints about edge cases to consider
- Still avoid giving exact implementation code
- Keep it educational and progressive
- Limit to 3-4 sentences

Provide only the hint text, nothing else:
`

const level3Template = `
You are a coding mentor providing a Level 3 hint. This is the most detailed hint before revealing the full solution.

Problem: %s
Difficulty: %s
Description: %s
Examples: %s
Previous Hints:
Level 1: %s
Level 2: %s

User Progress: %s

Level 3 Hint Guidelines:
- Provide implementation-level guidance
- Suggest specific coding patterns or templates
- Help with the most challenging part of the solution
- Give debugging tips if the user seems stuck
- Mention specific functions/methods that might help
- Provide pseudocode or code structure hints
- Still let the user write the actual code
- Be specific but educational
- Limit to 4-5 sentences

Provide only the hint text, nothing else:
`

// BuildHintPrompt fills the per-level template with problem metadata, the
// previously issued hint texts (index 0 = level 1) and, for level 3, the
// user's progress summary. Levels 2 and 3 fall back to placeholder strings
// for any missing prior hint instead of failing.
func BuildHintPrompt(problem *model.Problem, level int, previousHints []string, progress *dto.ProgressSnapshot) (string, error) {
	title := problem.Title
	difficulty := problem.Difficulty
	if difficulty == "" {
		difficulty = "Unknown"
	}
	description := truncateText(problem.Description, maxDescriptionChars)
	examples := formatExamples(problem.ExampleList())

	switch level {
	case 1:
		return fmt.Sprintf(level1Template, title, difficulty, description, examples), nil
	case 2:
		level1Hint := noLevel1HintPlaceholder
		if len(previousHints) > 0 && previousHints[0] != "" {
			level1Hint = previousHints[0]
		}
		return fmt.Sprintf(level2Template, title, difficulty, description, examples, level1Hint), nil
	case 3:
		level1Hint := noLevel1HintPlaceholder
		if len(previousHints) > 0 && previousHints[0] != "" {
			level1Hint = previousHints[0]
		}
		level2Hint := noLevel2HintPlaceholder
		if len(previousHints) > 1 && previousHints[1] != "" {
			level2Hint = previousHints[1]
		}
		return fmt.Sprintf(level3Template, title, difficulty, description, examples, level1Hint, level2Hint, FormatUserProgress(progress)), nil
	default:
		return "", fmt.Errorf("%w: got %d", ErrInvalidHintLevel, level)
	}
}

func truncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	return text[:maxLength] + "..."
}

// formatExamples renders up to two examples, each truncated to 100
// characters. Map entries expose their "content" field when present.
func formatExamples(examples []any) string {
	if len(examples) == 0 {
		return "No examples provided"
	}

	formatted := make([]string, 0, maxExamples)
	for i, example := range examples {
		if i >= maxExamples {
			break
		}

		var content string
		switch e := example.(type) {
		case map[string]any:
			if c, ok := e["content"].(string); ok && c != "" {
				content = c
			} else {
				content = fmt.Sprintf("%v", e)
			}
		case string:
			content = e
		default:
			content = fmt.Sprintf("%v", e)
		}

		content = truncateText(content, maxExampleChars)
		formatted = append(formatted, fmt.Sprintf("Example %d: %s", i+1, content))
	}

	return strings.Join(formatted, "\n")
}

// FormatUserProgress builds the human-readable summary injected into level-3
// prompts.
func FormatUserProgress(progress *dto.ProgressSnapshot) string {
	if progress == nil {
		return "No progress data available"
	}

	var parts []string
	if progress.LinesOfCode > 0 {
		parts = append(parts, fmt.Sprintf("Has written %d lines of code", progress.LinesOfCode))
	}
	if progress.HasFunction {
		parts = append(parts, "Has function definition")
	}
	if progress.HasLoop {
		parts = append(parts, "Has loop structure")
	}
	if progress.TimeSpent > 0 {
		minutes := progress.TimeSpent / 60000
		parts = append(parts, fmt.Sprintf("Has spent %d minutes on this problem", minutes))
	}

	if len(parts) == 0 {
		return "Just started working on the problem"
	}
	return strings.Join(parts, "; ")
}
