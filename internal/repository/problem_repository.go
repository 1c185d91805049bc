package repository

import (
	"github.com/lshigami/codementor/internal/model"
	"gorm.io/gorm"
)

type ProblemRepository interface {
	Create(problem *model.Problem) error
	FindByID(id uint) (*model.Problem, error)
	FindByPlatformID(platformID, platform string) (*model.Problem, error)
	FindFirstByPlatformID(platformID string) (*model.Problem, error)
	FindAll() ([]model.Problem, error)
}

type problemRepository struct {
	db *gorm.DB
}

func NewProblemRepository(db *gorm.DB) ProblemRepository {
	return &problemRepository{db: db}
}

func (r *problemRepository) Create(problem *model.Problem) error {
	return r.db.Create(problem).Error
}

func (r *problemRepository) FindByID(id uint) (*model.Problem, error) {
	var problem model.Problem
	if err := r.db.First(&problem, id).Error; err != nil {
		return nil, err
	}
	return &problem, nil
}

func (r *problemRepository) FindByPlatformID(platformID, platform string) (*model.Problem, error) {
	var problem model.Problem
	if err := r.db.Where("platform_id = ? AND platform = ?", platformID, platform).First(&problem).Error; err != nil {
		return nil, err
	}
	return &problem, nil
}

// FindFirstByPlatformID matches on the platform identifier alone, for hint
// requests that do not carry the platform name.
func (r *problemRepository) FindFirstByPlatformID(platformID string) (*model.Problem, error) {
	var problem model.Problem
	if err := r.db.Where("platform_id = ?", platformID).First(&problem).Error; err != nil {
		return nil, err
	}
	return &problem, nil
}

func (r *problemRepository) FindAll() ([]model.Problem, error) {
	var problems []model.Problem
	if err := r.db.Order("created_at desc").Find(&problems).Error; err != nil {
		return nil, err
	}
	return problems, nil
}
