package model

import "github.com/jackc/pgx/v5/pgtype"

type Comment struct {
	ID        int64              `json:"id"`
	PostID    int64              `json:"post_id"`
	AuthorID  int64              `json:"author_id"`
	Text      string             `json:"text"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}
