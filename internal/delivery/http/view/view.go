// Package view holds the JSON shapes served over HTTP. The storage
// models carry pgx types and internal fields; views flatten them into
// plain timestamps and drop what clients have no business seeing.
package view

import (
	"time"

	"blogicum-service/internal/model"
)

type User struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
}

type Category struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	IsPublished bool   `json:"is_published"`
}

type Location struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	IsPublished bool   `json:"is_published"`
}

type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	AuthorID  int64     `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type Post struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Text         string    `json:"text"`
	PubDate      time.Time `json:"pub_date"`
	ImageURL     *string   `json:"image_url,omitempty"`
	IsPublished  bool      `json:"is_published"`
	CommentCount int64     `json:"comment_count"`
	Author       *User     `json:"author,omitempty"`
	Category     *Category `json:"category,omitempty"`
	Location     *Location `json:"location,omitempty"`
}

type PostDetail struct {
	Post
	Comments []*Comment `json:"comments"`
}

type PostPage struct {
	Items      []*Post `json:"items"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalItems int     `json:"total_items"`
	TotalPages int     `json:"total_pages"`
	HasNext    bool    `json:"has_next"`
	HasPrev    bool    `json:"has_prev"`
}

func NewUser(u *model.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

func NewCategory(c *model.Category) *Category {
	if c == nil {
		return nil
	}
	return &Category{
		ID:          c.ID,
		Title:       c.Title,
		Slug:        c.Slug,
		Description: c.Description,
		IsPublished: c.IsPublished,
	}
}

func NewLocation(l *model.Location) *Location {
	if l == nil {
		return nil
	}
	// Unpublished locations stay attached to posts but are not shown.
	if !l.IsPublished {
		return nil
	}
	return &Location{
		ID:          l.ID,
		Name:        l.Name,
		IsPublished: l.IsPublished,
	}
}

func NewComment(c *model.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt.Time,
	}
}

func NewComments(comments []*model.Comment) []*Comment {
	out := make([]*Comment, 0, len(comments))
	for _, c := range comments {
		out = append(out, NewComment(c))
	}
	return out
}

func NewPost(p *model.PostDetailed) *Post {
	if p == nil || p.Post == nil {
		return nil
	}
	return &Post{
		ID:           p.Post.ID,
		Title:        p.Post.Title,
		Text:         p.Post.Text,
		PubDate:      p.Post.PubDate.Time,
		ImageURL:     p.Post.ImageURL,
		IsPublished:  p.Post.IsPublished,
		CommentCount: p.Post.CommentCount,
		Author:       NewUser(p.Author),
		Category:     NewCategory(p.Category),
		Location:     NewLocation(p.Location),
	}
}

func NewPostPage(page *model.PostPage) *PostPage {
	items := make([]*Post, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, NewPost(item))
	}
	return &PostPage{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		HasNext:    page.HasNext,
		HasPrev:    page.HasPrev,
	}
}
