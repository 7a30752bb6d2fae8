package repositories

import (
	"context"

	"github.com/mkhalid11/openblog/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id uint) (*models.Post, error)
	GetPosts(ctx context.Context, limit, offset int) ([]models.Post, int64, error)
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id uint) error
}

// GormPostRepository implements PostRepository over GORM
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// CreatePost creates a new post. Associations are omitted so that the
// pre-filled Author value is never upserted into the users table.
func (r *GormPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error
}

// GetPostByID retrieves a post by ID with its author loaded
func (r *GormPostRepository) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPosts retrieves a page of posts together with the total count
func (r *GormPostRepository) GetPosts(ctx context.Context, limit, offset int) ([]models.Post, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, count, nil
}

// UpdatePost applies the post's mutable fields inside a transaction. The
// row is re-read first so that a concurrently deleted post surfaces
// gorm.ErrRecordNotFound instead of silently updating nothing. Author is
// never part of the update.
func (r *GormPostRepository) UpdatePost(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Post
		if err := tx.First(&current, post.ID).Error; err != nil {
			return err
		}
		return tx.Model(&current).Updates(map[string]interface{}{
			"text":     post.Text,
			"group_id": post.GroupID,
		}).Error
	})
}

// DeletePost deletes a post by ID. Comments cascade at the database level.
func (r *GormPostRepository) DeletePost(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
