package model

import "time"

type UpdatePostDTO struct {
	Title       *string    `json:"title,omitempty"`
	Text        *string    `json:"text,omitempty"`
	PubDate     *time.Time `json:"pub_date,omitempty"`
	CategoryID  *int64     `json:"category_id,omitempty"`
	LocationID  *int64     `json:"location_id,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	IsPublished *bool      `json:"is_published,omitempty"`
}
