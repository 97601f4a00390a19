package comment_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/metrics"
	"blogicum-service/internal/model"
	"blogicum-service/internal/repository/postgres/db"
)

type CommentRepository struct {
	db      db.PgDB
	log     *logger.Logger
	metrics metrics.MetricsProvider
}

func NewCommentRepository(db db.PgDB, log *logger.Logger, metrics metrics.MetricsProvider) *CommentRepository {
	return &CommentRepository{db: db, log: log, metrics: metrics}
}

func (c *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	start := time.Now()
	args := pgx.NamedArgs{
		"post_id":    comment.PostID,
		"author_id":  comment.AuthorID,
		"text":       comment.Text,
		"created_at": pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	query := `
		INSERT INTO comments (post_id, author_id, text, created_at)
		VALUES (@post_id, @author_id, @text, @created_at)
		RETURNING id, post_id, author_id, text, created_at`

	var created model.Comment
	err := c.db.QueryRow(ctx, query, args).Scan(
		&created.ID,
		&created.PostID,
		&created.AuthorID,
		&created.Text,
		&created.CreatedAt,
	)
	c.metrics.RecordDatabaseQueryDuration("comment_create", time.Since(start))
	if err != nil {
		c.metrics.IncrementDatabaseQueries("comment_create", false)
		c.log.Error("Error creating comment", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	c.metrics.IncrementDatabaseQueries("comment_create", true)
	return &created, nil
}

func (c *CommentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, post_id, author_id, text, created_at FROM comments WHERE id = @id`

	comment := &model.Comment{}
	err := c.db.QueryRow(ctx, query, args).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.AuthorID,
		&comment.Text,
		&comment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.log.Debug("Comment not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrCommentNotFound
		}
		c.log.Error("Error getting comment by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return comment, nil
}

func (c *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	start := time.Now()
	args := pgx.NamedArgs{"post_id": postID}
	query := `SELECT id, post_id, author_id, text, created_at
				FROM comments WHERE post_id = @post_id ORDER BY created_at ASC, id ASC`

	rows, err := c.db.Query(ctx, query, args)
	if err != nil {
		c.metrics.IncrementDatabaseQueries("comment_list", false)
		c.log.Error("Error listing comments", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		var comment model.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.Text,
			&comment.CreatedAt,
		)
		if err != nil {
			c.metrics.IncrementDatabaseQueries("comment_list", false)
			c.log.Error("Error scanning comment during ListByPost", slog.Int64("post_id", postID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		comments = append(comments, &comment)
	}

	if err = rows.Err(); err != nil {
		c.metrics.IncrementDatabaseQueries("comment_list", false)
		c.log.Error("Error iterating rows during ListByPost", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	c.metrics.RecordDatabaseQueryDuration("comment_list", time.Since(start))
	c.metrics.IncrementDatabaseQueries("comment_list", true)
	return comments, nil
}

func (c *CommentRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	args := pgx.NamedArgs{"post_id": postID}
	query := `SELECT COUNT(*) FROM comments WHERE post_id = @post_id`

	var count int64
	if err := c.db.QueryRow(ctx, query, args).Scan(&count); err != nil {
		c.metrics.IncrementDatabaseQueries("comment_count", false)
		c.log.Error("Error counting comments", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}

	c.metrics.IncrementDatabaseQueries("comment_count", true)
	return count, nil
}

func (c *CommentRepository) Update(ctx context.Context, id int64, text string) (*model.Comment, error) {
	args := pgx.NamedArgs{"id": id, "text": text}
	query := `UPDATE comments SET text = @text WHERE id = @id
				RETURNING id, post_id, author_id, text, created_at`

	var updated model.Comment
	err := c.db.QueryRow(ctx, query, args).Scan(
		&updated.ID,
		&updated.PostID,
		&updated.AuthorID,
		&updated.Text,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.log.Debug("Comment not found by id during Update", slog.Int64("id", id))
			return nil, custom_errors.ErrCommentNotFound
		}
		c.log.Error("Error updating comment", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &updated, nil
}

func (c *CommentRepository) Delete(ctx context.Context, id int64) error {
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM comments WHERE id = @id`

	result, err := c.db.Exec(ctx, query, args)
	if err != nil {
		c.log.Error("Error deleting comment", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrCommentNotFound
	}

	return nil
}

func (c *CommentRepository) DeleteByPost(ctx context.Context, postID int64) error {
	args := pgx.NamedArgs{"post_id": postID}
	query := `DELETE FROM comments WHERE post_id = @post_id`

	_, err := c.db.Exec(ctx, query, args)
	if err != nil {
		c.log.Error("Error deleting comments by post", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	return nil
}
