package models

import "time"

// Post represents a blog post. AuthorID is set once at creation from the
// authenticated caller and is never writable afterwards. GroupID is optional.
type Post struct {
	ID        uint      `gorm:"primaryKey"`
	Text      string    `gorm:"not null"`
	AuthorID  uint      `gorm:"index;not null"`
	Author    User      `gorm:"foreignKey:AuthorID"`
	GroupID   *uint     `gorm:"index"`
	Group     *Group    `gorm:"foreignKey:GroupID"`
	CreatedAt time.Time
}

// PostResponse is the wire shape of a post: author by username, group by id
type PostResponse struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Group     *uint     `json:"group"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse shapes the post for serialization.
func (p *Post) ToResponse() PostResponse {
	return PostResponse{
		ID:        p.ID,
		Text:      p.Text,
		Author:    p.Author.Username,
		Group:     p.GroupID,
		CreatedAt: p.CreatedAt,
	}
}

// CreatePostRequest defines the request body for creating a new post.
// There is deliberately no author field; the author is always the caller.
type CreatePostRequest struct {
	Text  string `json:"text" validate:"required,min=1,max=2000"`
	Group *uint  `json:"group" validate:"omitempty,min=1"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Text  string `json:"text,omitempty" validate:"omitempty,min=1,max=2000"`
	Group *uint  `json:"group,omitempty" validate:"omitempty,min=1"`
}
