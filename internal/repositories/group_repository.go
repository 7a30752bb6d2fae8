package repositories

import (
	"context"

	"github.com/mkhalid11/openblog/backend/internal/models"
	"gorm.io/gorm"
)

// GroupRepository defines the interface for group data operations. Groups
// are read-only through the API, so there is no mutation surface here.
type GroupRepository interface {
	GetGroups(ctx context.Context, limit, offset int) ([]models.Group, int64, error)
	GetGroupByID(ctx context.Context, id uint) (*models.Group, error)
}

// GormGroupRepository implements GroupRepository over GORM
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGormGroupRepository creates a new GormGroupRepository
func NewGormGroupRepository(db *gorm.DB) *GormGroupRepository {
	return &GormGroupRepository{db: db}
}

// GetGroups retrieves a page of groups together with the total count
func (r *GormGroupRepository) GetGroups(ctx context.Context, limit, offset int) ([]models.Group, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Group{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var groups []models.Group
	err := r.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&groups).Error
	if err != nil {
		return nil, 0, err
	}
	return groups, count, nil
}

// GetGroupByID retrieves a group by ID
func (r *GormGroupRepository) GetGroupByID(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}
