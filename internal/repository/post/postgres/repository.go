package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/metrics"
	"blogicum-service/internal/model"
	"blogicum-service/internal/repository/postgres/db"
)

const postColumns = `id, author_id, title, text, pub_date, category_id, location_id, image_url, is_published, created_at`

type PostRepository struct {
	db      db.PgDB
	log     *logger.Logger
	metrics metrics.MetricsProvider
}

func NewPostRepository(db db.PgDB, log *logger.Logger, metrics metrics.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func scanPost(row pgx.Row, post *model.Post) error {
	return row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Text,
		&post.PubDate,
		&post.CategoryID,
		&post.LocationID,
		&post.ImageURL,
		&post.IsPublished,
		&post.CreatedAt,
	)
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{
		"author_id":    post.AuthorID,
		"title":        post.Title,
		"text":         post.Text,
		"pub_date":     post.PubDate,
		"category_id":  post.CategoryID,
		"location_id":  post.LocationID,
		"image_url":    post.ImageURL,
		"is_published": post.IsPublished,
		"created_at":   pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	query := `
		INSERT INTO posts (author_id, title, text, pub_date, category_id, location_id, image_url, is_published, created_at)
		VALUES (@author_id, @title, @text, @pub_date, @category_id, @location_id, @image_url, @is_published, @created_at)
		RETURNING ` + postColumns

	var createdPost model.Post
	err := scanPost(p.db.QueryRow(ctx, query, args), &createdPost)
	p.metrics.RecordDatabaseQueryDuration("post_create", time.Since(start))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_create", false)
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_create", true)
	return &createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = @id`

	post := &model.Post{}
	err := scanPost(p.db.QueryRow(ctx, query, args), post)
	p.metrics.RecordDatabaseQueryDuration("post_get_by_id", time.Since(start))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.metrics.IncrementDatabaseQueries("post_get_by_id", true)
			p.log.Debug("Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.metrics.IncrementDatabaseQueries("post_get_by_id", false)
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_get_by_id", true)
	return post, nil
}

// buildFilterClauses translates PostFilters into WHERE clauses. The
// visibility rule matches the single-post predicate: a post is publicly
// visible when it is published, its category exists and is published, and
// its publication time is not in the future. A viewer keeps access to their
// own posts regardless.
func buildFilterClauses(filters model.PostFilters, args pgx.NamedArgs) []string {
	visibility := `(p.is_published = TRUE AND c.is_published = TRUE AND p.pub_date <= now())`
	if filters.ViewerID != nil {
		visibility = `(` + visibility + ` OR p.author_id = @viewer_id)`
		args["viewer_id"] = *filters.ViewerID
	}
	whereClauses := []string{visibility}

	if filters.AuthorID != nil {
		whereClauses = append(whereClauses, "p.author_id = @author_id")
		args["author_id"] = *filters.AuthorID
	}
	if filters.CategoryID != nil {
		whereClauses = append(whereClauses, "p.category_id = @category_id")
		args["category_id"] = *filters.CategoryID
	}

	return whereClauses
}

func (p *PostRepository) Count(ctx context.Context, filters model.PostFilters) (int, error) {
	start := time.Now()
	args := pgx.NamedArgs{}
	whereClauses := buildFilterClauses(filters, args)

	query := `SELECT COUNT(*) FROM posts p LEFT JOIN categories c ON c.id = p.category_id WHERE ` +
		strings.Join(whereClauses, " AND ")

	var total int
	err := p.db.QueryRow(ctx, query, args).Scan(&total)
	p.metrics.RecordDatabaseQueryDuration("post_count", time.Since(start))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_count", false)
		p.log.Error("Error counting posts", slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_count", true)
	return total, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{}
	whereClauses := buildFilterClauses(filters, args)

	query := `SELECT p.id, p.author_id, p.title, p.text, p.pub_date, p.category_id, p.location_id, p.image_url, p.is_published, p.created_at
				FROM posts p LEFT JOIN categories c ON c.id = p.category_id
				WHERE ` + strings.Join(whereClauses, " AND ") + `
				ORDER BY p.pub_date DESC, p.title ASC`

	if filters.Limit != nil {
		query += " LIMIT @limit"
		args["limit"] = *filters.Limit
	}
	if filters.Offset != nil {
		query += " OFFSET @offset"
		args["offset"] = *filters.Offset
	}

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		if err := scanPost(rows, &post); err != nil {
			p.metrics.IncrementDatabaseQueries("post_list", false)
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
	p.metrics.IncrementDatabaseQueries("post_list", true)
	return posts, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Title != nil {
		setClauses = append(setClauses, "title = @title")
		args["title"] = *update.Title
	}
	if update.Text != nil {
		setClauses = append(setClauses, "text = @text")
		args["text"] = *update.Text
	}
	if update.PubDate != nil {
		setClauses = append(setClauses, "pub_date = @pub_date")
		args["pub_date"] = pgtype.Timestamptz{Time: *update.PubDate, Valid: true}
	}
	if update.CategoryID != nil {
		setClauses = append(setClauses, "category_id = @category_id")
		args["category_id"] = *update.CategoryID
	}
	if update.LocationID != nil {
		setClauses = append(setClauses, "location_id = @location_id")
		args["location_id"] = *update.LocationID
	}
	if update.ImageURL != nil {
		setClauses = append(setClauses, "image_url = @image_url")
		args["image_url"] = *update.ImageURL
	}
	if update.IsPublished != nil {
		setClauses = append(setClauses, "is_published = @is_published")
		args["is_published"] = *update.IsPublished
	}

	if len(setClauses) == 0 {
		return nil, custom_errors.ErrNoUpdateRows
	}

	start := time.Now()
	query := "UPDATE posts SET " + strings.Join(setClauses, ", ") + " WHERE id = @id RETURNING " + postColumns

	var updatedPost model.Post
	err := scanPost(p.db.QueryRow(ctx, query, args), &updatedPost)
	p.metrics.RecordDatabaseQueryDuration("post_update", time.Since(start))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.metrics.IncrementDatabaseQueries("post_update", true)
			p.log.Debug("Post not found by id during Update", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.metrics.IncrementDatabaseQueries("post_update", false)
		p.log.Error("Error updating post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_update", true)
	return &updatedPost, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM posts WHERE id = @id`

	result, err := p.db.Exec(ctx, query, args)
	p.metrics.RecordDatabaseQueryDuration("post_delete", time.Since(start))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_delete", false)
		p.log.Error("Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		p.metrics.IncrementDatabaseQueries("post_delete", true)
		return custom_errors.ErrPostNotFound
	}

	p.metrics.IncrementDatabaseQueries("post_delete", true)
	return nil
}

func (p *PostRepository) ClearCategory(ctx context.Context, categoryID int64) error {
	start := time.Now()
	args := pgx.NamedArgs{"category_id": categoryID}
	query := `UPDATE posts SET category_id = NULL WHERE category_id = @category_id`

	_, err := p.db.Exec(ctx, query, args)
	p.metrics.RecordDatabaseQueryDuration("post_clear_category", time.Since(start))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_clear_category", false)
		p.log.Error("Error clearing category on posts", slog.Int64("category_id", categoryID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_clear_category", true)
	return nil
}

func (p *PostRepository) ClearLocation(ctx context.Context, locationID int64) error {
	start := time.Now()
	args := pgx.NamedArgs{"location_id": locationID}
	query := `UPDATE posts SET location_id = NULL WHERE location_id = @location_id`

	_, err := p.db.Exec(ctx, query, args)
	p.metrics.RecordDatabaseQueryDuration("post_clear_location", time.Since(start))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_clear_location", false)
		p.log.Error("Error clearing location on posts", slog.Int64("location_id", locationID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_clear_location", true)
	return nil
}
