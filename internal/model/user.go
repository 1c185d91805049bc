package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Email          string         `json:"email" gorm:"not null;uniqueIndex"`
	Username       string         `json:"username" gorm:"not null;uniqueIndex"`
	HashedPassword string         `json:"-" gorm:"not null"`
	IsActive       bool           `json:"is_active" gorm:"default:true"`
	Hints          []Hint         `json:"hints,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
