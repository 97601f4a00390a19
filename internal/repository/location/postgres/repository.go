package location_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"

	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/model"
	"blogicum-service/internal/repository/postgres/db"
)

type LocationRepository struct {
	db  db.PgDB
	log *logger.Logger
}

func NewLocationRepository(db db.PgDB, log *logger.Logger) *LocationRepository {
	return &LocationRepository{db: db, log: log}
}

func (l *LocationRepository) Create(ctx context.Context, location *model.Location) (*model.Location, error) {
	args := pgx.NamedArgs{
		"name":         location.Name,
		"is_published": location.IsPublished,
	}

	query := `
		INSERT INTO locations (name, is_published)
		VALUES (@name, @is_published)
		RETURNING id, name, is_published`

	var created model.Location
	err := l.db.QueryRow(ctx, query, args).Scan(&created.ID, &created.Name, &created.IsPublished)
	if err != nil {
		l.log.Error("Error creating location", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &created, nil
}

func (l *LocationRepository) GetByID(ctx context.Context, id int64) (*model.Location, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, name, is_published FROM locations WHERE id = @id`

	location := &model.Location{}
	err := l.db.QueryRow(ctx, query, args).Scan(&location.ID, &location.Name, &location.IsPublished)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			l.log.Debug("Location not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrLocationNotFound
		}
		l.log.Error("Error getting location by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return location, nil
}

func (l *LocationRepository) Update(ctx context.Context, id int64, update *model.UpdateLocationDTO) (*model.Location, error) {
	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Name != nil {
		setClauses = append(setClauses, "name = @name")
		args["name"] = *update.Name
	}
	if update.IsPublished != nil {
		setClauses = append(setClauses, "is_published = @is_published")
		args["is_published"] = *update.IsPublished
	}

	if len(setClauses) == 0 {
		return nil, custom_errors.ErrNoUpdateRows
	}

	query := "UPDATE locations SET " + strings.Join(setClauses, ", ") +
		" WHERE id = @id RETURNING id, name, is_published"

	var updated model.Location
	err := l.db.QueryRow(ctx, query, args).Scan(&updated.ID, &updated.Name, &updated.IsPublished)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			l.log.Debug("Location not found by id during Update", slog.Int64("id", id))
			return nil, custom_errors.ErrLocationNotFound
		}
		l.log.Error("Error updating location", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &updated, nil
}

func (l *LocationRepository) Delete(ctx context.Context, id int64) error {
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM locations WHERE id = @id`

	result, err := l.db.Exec(ctx, query, args)
	if err != nil {
		l.log.Error("Error deleting location", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrLocationNotFound
	}

	return nil
}
