package repository

import (
	"github.com/lshigami/codementor/internal/model"
	"gorm.io/gorm"
)

type HintRepository interface {
	Create(hint *model.Hint) error
	FindByUserProblemLevel(userID, problemID uint, level int) (*model.Hint, error)
	FindByUserAndProblem(userID, problemID uint) ([]model.Hint, error)
}

type hintRepository struct {
	db *gorm.DB
}

func NewHintRepository(db *gorm.DB) HintRepository {
	return &hintRepository{db: db}
}

func (r *hintRepository) Create(hint *model.Hint) error {
	return r.db.Create(hint).Error
}

func (r *hintRepository) FindByUserProblemLevel(userID, problemID uint, level int) (*model.Hint, error) {
	var hint model.Hint
	err := r.db.Where("user_id = ? AND problem_id = ? AND level = ?", userID, problemID, level).First(&hint).Error
	if err != nil {
		return nil, err
	}
	return &hint, nil
}

// FindByUserAndProblem returns the user's hints for a problem ordered by
// level, so index 0 is the level-1 hint when present.
func (r *hintRepository) FindByUserAndProblem(userID, problemID uint) ([]model.Hint, error) {
	var hints []model.Hint
	err := r.db.Where("user_id = ? AND problem_id = ?", userID, problemID).Order("level ASC").Find(&hints).Error
	if err != nil {
		return nil, err
	}
	return hints, nil
}
