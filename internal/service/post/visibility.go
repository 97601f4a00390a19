package post_service

import (
	"time"

	"blogicum-service/internal/model"
)

// IsVisible reports whether viewer may see post. The author always sees
// their own posts. Everyone else sees a post only when it is published,
// belongs to a published category, and its publication time has passed.
// A post without a category counts as having an unpublished one.
func IsVisible(post *model.Post, category *model.Category, viewer *model.Viewer) bool {
	if post == nil {
		return false
	}
	if viewer != nil && viewer.ID == post.AuthorID {
		return true
	}
	if !post.IsPublished {
		return false
	}
	if category == nil || !category.IsPublished {
		return false
	}
	return !post.PubDate.Time.After(time.Now())
}

// CanMutate reports whether viewer owns the entity with the given author.
// Anonymous viewers never do.
func CanMutate(authorID int64, viewer *model.Viewer) bool {
	return viewer != nil && viewer.ID == authorID
}
