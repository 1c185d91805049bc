package dto

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=32"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProblemDetectRequest registers a problem the browser extension detected.
// Examples entries are either objects with a "content" field or plain strings.
type ProblemDetectRequest struct {
	ID          string   `json:"id" binding:"required"` // platform-side identifier
	Title       string   `json:"title" binding:"required"`
	Difficulty  string   `json:"difficulty" binding:"required"`
	Description string   `json:"description"`
	Platform    string   `json:"platform" binding:"required"`
	URL         string   `json:"url"`
	Examples    []any    `json:"examples"`
	Constraints []string `json:"constraints"`
}

// ProgressSnapshot summarizes the user's current editor state for a problem.
// Used to personalize level-3 prompts only.
type ProgressSnapshot struct {
	LinesOfCode int   `json:"lines_of_code"`
	HasFunction bool  `json:"has_function"`
	HasLoop     bool  `json:"has_loop"`
	TimeSpent   int64 `json:"time_spent"` // milliseconds
}

type HintGenerateRequest struct {
	ProblemID    string            `json:"problem_id" binding:"required"`
	Level        int               `json:"level" binding:"required"`
	UserProgress *ProgressSnapshot `json:"user_progress"`
}
