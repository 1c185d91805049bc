package model

import (
	"time"

	"gorm.io/gorm"
)

type UserProgress struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_user_problem_progress"`
	ProblemID uint           `json:"problem_id" gorm:"not null;uniqueIndex:idx_user_problem_progress"`
	Solved    bool           `json:"solved" gorm:"default:false"`
	HintsUsed int            `json:"hints_used" gorm:"default:0"`
	TimeSpent int64          `json:"time_spent"` // milliseconds
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
