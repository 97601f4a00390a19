package model

import "time"

type CreatePostDTO struct {
	AuthorID    int64     `json:"author_id"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	PubDate     time.Time `json:"pub_date"`
	CategoryID  *int64    `json:"category_id,omitempty"`
	LocationID  *int64    `json:"location_id,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsPublished bool      `json:"is_published"`
}
