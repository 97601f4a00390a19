package category_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/model"
	"blogicum-service/internal/repository/postgres/db"
)

type CategoryRepository struct {
	db  db.PgDB
	log *logger.Logger
}

func NewCategoryRepository(db db.PgDB, log *logger.Logger) *CategoryRepository {
	return &CategoryRepository{db: db, log: log}
}

func (c *CategoryRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	args := pgx.NamedArgs{
		"title":        category.Title,
		"slug":         category.Slug,
		"description":  category.Description,
		"is_published": category.IsPublished,
	}

	query := `
		INSERT INTO categories (title, slug, description, is_published)
		VALUES (@title, @slug, @description, @is_published)
		RETURNING id, title, slug, description, is_published`

	var created model.Category
	err := c.db.QueryRow(ctx, query, args).Scan(
		&created.ID,
		&created.Title,
		&created.Slug,
		&created.Description,
		&created.IsPublished,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.log.Debug("Category slug already exists", slog.String("slug", category.Slug))
			return nil, custom_errors.ErrCategorySlugExists
		}
		c.log.Error("Error creating category", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &created, nil
}

func (c *CategoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, title, slug, description, is_published FROM categories WHERE id = @id`

	category := &model.Category{}
	err := c.db.QueryRow(ctx, query, args).Scan(
		&category.ID,
		&category.Title,
		&category.Slug,
		&category.Description,
		&category.IsPublished,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.log.Debug("Category not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrCategoryNotFound
		}
		c.log.Error("Error getting category by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return category, nil
}

func (c *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	args := pgx.NamedArgs{"slug": slug}
	query := `SELECT id, title, slug, description, is_published FROM categories WHERE slug = @slug`

	category := &model.Category{}
	err := c.db.QueryRow(ctx, query, args).Scan(
		&category.ID,
		&category.Title,
		&category.Slug,
		&category.Description,
		&category.IsPublished,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.log.Debug("Category not found by slug", slog.String("slug", slug))
			return nil, custom_errors.ErrCategoryNotFound
		}
		c.log.Error("Error getting category by slug", slog.String("slug", slug), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return category, nil
}

func (c *CategoryRepository) Update(ctx context.Context, id int64, update *model.UpdateCategoryDTO) (*model.Category, error) {
	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Title != nil {
		setClauses = append(setClauses, "title = @title")
		args["title"] = *update.Title
	}
	if update.Slug != nil {
		setClauses = append(setClauses, "slug = @slug")
		args["slug"] = *update.Slug
	}
	if update.Description != nil {
		setClauses = append(setClauses, "description = @description")
		args["description"] = *update.Description
	}
	if update.IsPublished != nil {
		setClauses = append(setClauses, "is_published = @is_published")
		args["is_published"] = *update.IsPublished
	}

	if len(setClauses) == 0 {
		return nil, custom_errors.ErrNoUpdateRows
	}

	query := "UPDATE categories SET " + strings.Join(setClauses, ", ") +
		" WHERE id = @id RETURNING id, title, slug, description, is_published"

	var updated model.Category
	err := c.db.QueryRow(ctx, query, args).Scan(
		&updated.ID,
		&updated.Title,
		&updated.Slug,
		&updated.Description,
		&updated.IsPublished,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.log.Debug("Category not found by id during Update", slog.Int64("id", id))
			return nil, custom_errors.ErrCategoryNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, custom_errors.ErrCategorySlugExists
		}
		c.log.Error("Error updating category", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &updated, nil
}

func (c *CategoryRepository) Delete(ctx context.Context, id int64) error {
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM categories WHERE id = @id`

	result, err := c.db.Exec(ctx, query, args)
	if err != nil {
		c.log.Error("Error deleting category", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrCategoryNotFound
	}

	return nil
}
