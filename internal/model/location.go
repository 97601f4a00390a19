package model

type Location struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	IsPublished bool   `json:"is_published"`
}
