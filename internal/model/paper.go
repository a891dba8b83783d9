package model

import (
	"time"
)

type Paper struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"userId"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	Category     string    `db:"category" json:"category"`
	AuthorName   string    `db:"author_name" json:"authorName"`
	AuthorAvatar string    `db:"author_avatar" json:"authorAvatar"`
	FileURL      string    `db:"file_url" json:"fileUrl"`
	StorageKey   string    `db:"storage_key" json:"-"` // Opaque handle for later object deletion
	Collab       bool      `db:"collab" json:"collab"`
	Likes        int       `db:"likes" json:"likes"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`

	// Loaded separately, oldest first
	Comments []Comment `db:"-" json:"comments"`
}

type Comment struct {
	ID           string    `db:"id" json:"id"`
	PaperID      string    `db:"paper_id" json:"-"`
	AuthorName   string    `db:"author_name" json:"authorName"`
	AuthorAvatar string    `db:"author_avatar" json:"authorAvatar"`
	Text         string    `db:"text" json:"text"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
