package dto

import "time"

type UserInfo struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type AuthResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        UserInfo `json:"user"`
}

type VerifyResponse struct {
	Valid bool     `json:"valid"`
	User  UserInfo `json:"user"`
}

type ProblemResponse struct {
	ID         uint      `json:"id"`
	PlatformID string    `json:"platform_id"`
	Platform   string    `json:"platform"`
	Title      string    `json:"title"`
	Difficulty string    `json:"difficulty"`
	URL        string    `json:"url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type HintResponse struct {
	Hint string `json:"hint"`
}

type TrackResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
