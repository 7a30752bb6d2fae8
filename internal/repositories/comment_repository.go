package repositories

import (
	"context"

	"github.com/mkhalid11/openblog/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentRepository defines the interface for comment data operations.
// Single-comment lookups are always scoped to a post: a comment id that
// exists under a different post behaves exactly like a missing comment.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentByID(ctx context.Context, postID, id uint) (*models.Comment, error)
	GetCommentsByPostID(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, int64, error)
	UpdateComment(ctx context.Context, comment *models.Comment) error
	DeleteComment(ctx context.Context, postID, id uint) error
}

// GormCommentRepository implements CommentRepository over GORM
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// CreateComment creates a new comment
func (r *GormCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error
}

// GetCommentByID retrieves a comment by ID scoped to the given post
func (r *GormCommentRepository) GetCommentByID(ctx context.Context, postID, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPostID retrieves a page of comments for a specific post
func (r *GormCommentRepository) GetCommentsByPostID(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err = r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, count, nil
}

// UpdateComment applies the comment's text inside a transaction, re-reading
// the row so a concurrent delete surfaces gorm.ErrRecordNotFound. Author
// and post are never part of the update.
func (r *GormCommentRepository) UpdateComment(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Comment
		if err := tx.Where("post_id = ?", comment.PostID).First(&current, comment.ID).Error; err != nil {
			return err
		}
		return tx.Model(&current).Update("text", comment.Text).Error
	})
}

// DeleteComment deletes a comment by ID scoped to the given post
func (r *GormCommentRepository) DeleteComment(ctx context.Context, postID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&models.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
