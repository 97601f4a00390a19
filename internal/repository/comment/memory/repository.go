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

type CommentRepository struct {
	log      *logger.Logger
	mu       sync.RWMutex
	comments map[int64]*model.Comment
	nextID   int64
}

func NewCommentRepository(log *logger.Logger) *CommentRepository {
	return &CommentRepository{
		log:      log,
		comments: make(map[int64]*model.Comment),
		nextID:   1,
	}
}

func (c *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	newComment := &model.Comment{
		ID:        c.nextID,
		PostID:    comment.PostID,
		AuthorID:  comment.AuthorID,
		Text:      comment.Text,
		CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	c.nextID++

	c.comments[newComment.ID] = newComment

	result := *newComment
	return &result, nil
}

func (c *CommentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	comment, exists := c.comments[id]
	if !exists {
		c.log.Debug("Comment not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrCommentNotFound
	}

	result := *comment
	return &result, nil
}

func (c *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []*model.Comment
	for _, comment := range c.comments {
		if comment.PostID == postID {
			commentCopy := *comment
			result = append(result, &commentCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Time.Equal(result[j].CreatedAt.Time) {
			return result[i].CreatedAt.Time.Before(result[j].CreatedAt.Time)
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (c *CommentRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var count int64
	for _, comment := range c.comments {
		if comment.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (c *CommentRepository) Update(ctx context.Context, id int64, text string) (*model.Comment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	comment, exists := c.comments[id]
	if !exists {
		return nil, custom_errors.ErrCommentNotFound
	}

	comment.Text = text

	result := *comment
	return &result, nil
}

func (c *CommentRepository) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.comments[id]; !exists {
		return custom_errors.ErrCommentNotFound
	}

	delete(c.comments, id)
	return nil
}

func (c *CommentRepository) DeleteByPost(ctx context.Context, postID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, comment := range c.comments {
		if comment.PostID == postID {
			delete(c.comments, id)
		}
	}
	return nil
}
