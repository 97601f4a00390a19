package model

import "github.com/jackc/pgx/v5/pgtype"

type Post struct {
	ID          int64              `json:"id"`
	AuthorID    int64              `json:"author_id"`
	Title       string             `json:"title"`
	Text        string             `json:"text"`
	PubDate     pgtype.Timestamptz `json:"pub_date"`
	CategoryID  *int64             `json:"category_id,omitempty"`
	LocationID  *int64             `json:"location_id,omitempty"`
	ImageURL    *string            `json:"image_url,omitempty"`
	IsPublished bool               `json:"is_published"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`

	// CommentCount is derived per listing query, never persisted.
	CommentCount int64 `json:"comment_count"`
}
