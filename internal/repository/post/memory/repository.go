package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/model"
)

// PostRepository is the in-memory twin of the postgres implementation, used
// by tests. categoryPublished stands in for the join against the categories
// table that the visibility rule needs.
type PostRepository struct {
	log               *logger.Logger
	mu                sync.RWMutex
	posts             map[int64]*model.Post
	categoryPublished map[int64]bool
	nextID            int64
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:               log,
		posts:             make(map[int64]*model.Post),
		categoryPublished: make(map[int64]bool),
		nextID:            1,
	}
}

// SetCategoryPublished seeds category state for visibility filtering.
func (p *PostRepository) SetCategoryPublished(categoryID int64, published bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.categoryPublished[categoryID] = published
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	newPost := &model.Post{
		ID:          p.nextID,
		AuthorID:    post.AuthorID,
		Title:       post.Title,
		Text:        post.Text,
		PubDate:     post.PubDate,
		CategoryID:  post.CategoryID,
		LocationID:  post.LocationID,
		ImageURL:    post.ImageURL,
		IsPublished: post.IsPublished,
		CreatedAt:   pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) matches(post *model.Post, filters model.PostFilters) bool {
	if filters.AuthorID != nil && post.AuthorID != *filters.AuthorID {
		return false
	}
	if filters.CategoryID != nil && (post.CategoryID == nil || *post.CategoryID != *filters.CategoryID) {
		return false
	}

	if filters.ViewerID != nil && post.AuthorID == *filters.ViewerID {
		return true
	}

	if !post.IsPublished {
		return false
	}
	if post.CategoryID == nil || !p.categoryPublished[*post.CategoryID] {
		return false
	}
	return !post.PubDate.Time.After(time.Now())
}

func (p *PostRepository) filtered(filters model.PostFilters) []*model.Post {
	var result []*model.Post
	for _, post := range p.posts {
		if p.matches(post, filters) {
			postCopy := *post
			result = append(result, &postCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].PubDate.Time.Equal(result[j].PubDate.Time) {
			return result[i].PubDate.Time.After(result[j].PubDate.Time)
		}
		return result[i].Title < result[j].Title
	})

	return result
}

func (p *PostRepository) Count(ctx context.Context, filters model.PostFilters) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.filtered(filters)), nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := p.filtered(filters)

	if filters.Offset != nil {
		if *filters.Offset >= len(result) {
			return nil, nil
		}
		result = result[*filters.Offset:]
	}
	if filters.Limit != nil && *filters.Limit < len(result) {
		result = result[:*filters.Limit]
	}

	return result, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Text != nil {
		post.Text = *update.Text
	}
	if update.PubDate != nil {
		post.PubDate = pgtype.Timestamptz{Time: *update.PubDate, Valid: true}
	}
	if update.CategoryID != nil {
		post.CategoryID = update.CategoryID
	}
	if update.LocationID != nil {
		post.LocationID = update.LocationID
	}
	if update.ImageURL != nil {
		post.ImageURL = update.ImageURL
	}
	if update.IsPublished != nil {
		post.IsPublished = *update.IsPublished
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.posts[id]; !exists {
		return custom_errors.ErrPostNotFound
	}

	delete(p.posts, id)
	return nil
}

func (p *PostRepository) ClearCategory(ctx context.Context, categoryID int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, post := range p.posts {
		if post.CategoryID != nil && *post.CategoryID == categoryID {
			post.CategoryID = nil
		}
	}
	return nil
}

func (p *PostRepository) ClearLocation(ctx context.Context, locationID int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, post := range p.posts {
		if post.LocationID != nil && *post.LocationID == locationID {
			post.LocationID = nil
		}
	}
	return nil
}
