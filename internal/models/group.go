package models

// Group is a thematic category a post may be published under. Groups have
// no owner, are globally readable and are never mutated through the API;
// they are loaded out-of-band (see cmd/seed).
type Group struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:100"`
	Description string `json:"description"`
}
