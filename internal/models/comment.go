package models

import "time"

// Comment represents a comment on a post. AuthorID and PostID are set once
// at creation and are never writable afterwards. The foreign key carries
// ON DELETE CASCADE so comments never outlive their post.
type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	Text      string `gorm:"not null"`
	AuthorID  uint   `gorm:"index;not null"`
	Author    User   `gorm:"foreignKey:AuthorID"`
	PostID    uint   `gorm:"index;not null"`
	Post      Post   `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// CommentResponse is the wire shape of a comment
type CommentResponse struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Post      uint      `json:"post"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse shapes the comment for serialization.
func (cm *Comment) ToResponse() CommentResponse {
	return CommentResponse{
		ID:        cm.ID,
		Text:      cm.Text,
		Author:    cm.Author.Username,
		Post:      cm.PostID,
		CreatedAt: cm.CreatedAt,
	}
}

// CreateCommentRequest defines the request body for creating a new comment.
// Author and post are injected from the caller and the path, never from here.
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}
