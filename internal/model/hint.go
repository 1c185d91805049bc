package model

import (
	"time"

	"gorm.io/gorm"
)

// Hint is a generated hint issued to a user for a problem. Once stored for a
// (user, problem, level) triple it is returned verbatim on repeat requests.
type Hint struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_user_problem_level"`
	ProblemID uint           `json:"problem_id" gorm:"not null;uniqueIndex:idx_user_problem_level"`
	Level     int            `json:"level" gorm:"not null;uniqueIndex:idx_user_problem_level"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
