package repository

import (
	"errors"

	"github.com/lshigami/codementor/internal/model"
	"gorm.io/gorm"
)

type UserProgressRepository interface {
	IncrementHintsUsed(userID, problemID uint) error
	FindByUserAndProblem(userID, problemID uint) (*model.UserProgress, error)
}

type userProgressRepository struct {
	db *gorm.DB
}

func NewUserProgressRepository(db *gorm.DB) UserProgressRepository {
	return &userProgressRepository{db: db}
}

// IncrementHintsUsed bumps the hint counter for the (user, problem) pair,
// creating the progress row on first use.
func (r *userProgressRepository) IncrementHintsUsed(userID, problemID uint) error {
	var progress model.UserProgress
	err := r.db.Where("user_id = ? AND problem_id = ?", userID, problemID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = model.UserProgress{UserID: userID, ProblemID: problemID, HintsUsed: 1}
		return r.db.Create(&progress).Error
	}
	if err != nil {
		return err
	}
	return r.db.Model(&progress).UpdateColumn("hints_used", gorm.Expr("hints_used + 1")).Error
}

func (r *userProgressRepository) FindByUserAndProblem(userID, problemID uint) (*model.UserProgress, error) {
	var progress model.UserProgress
	if err := r.db.Where("user_id = ? AND problem_id = ?", userID, problemID).First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}
