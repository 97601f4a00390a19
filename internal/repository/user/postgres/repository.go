package user_repository_postgres

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

type UserRepository struct {
	db  db.PgDB
	log *logger.Logger
}

func NewUserRepository(db db.PgDB, log *logger.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, username, first_name, last_name, email FROM users WHERE id = @id`

	user := &model.User{}
	err := u.db.QueryRow(ctx, query, args).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting user by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return user, nil
}

func (u *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	args := pgx.NamedArgs{"username": username}
	query := `SELECT id, username, first_name, last_name, email FROM users WHERE username = @username`

	user := &model.User{}
	err := u.db.QueryRow(ctx, query, args).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by username", slog.String("username", username))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting user by username", slog.String("username", username), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return user, nil
}

func (u *UserRepository) Update(ctx context.Context, id int64, update *model.UpdateProfileDTO) (*model.User, error) {
	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Username != nil {
		setClauses = append(setClauses, "username = @username")
		args["username"] = *update.Username
	}
	if update.FirstName != nil {
		setClauses = append(setClauses, "first_name = @first_name")
		args["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		setClauses = append(setClauses, "last_name = @last_name")
		args["last_name"] = *update.LastName
	}
	if update.Email != nil {
		setClauses = append(setClauses, "email = @email")
		args["email"] = *update.Email
	}

	if len(setClauses) == 0 {
		return nil, custom_errors.ErrNoUpdateRows
	}

	query := "UPDATE users SET " + strings.Join(setClauses, ", ") +
		" WHERE id = @id RETURNING id, username, first_name, last_name, email"

	var updated model.User
	err := u.db.QueryRow(ctx, query, args).Scan(
		&updated.ID,
		&updated.Username,
		&updated.FirstName,
		&updated.LastName,
		&updated.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by id during Update", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, custom_errors.ErrUsernameExists
		}
		u.log.Error("Error updating user", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &updated, nil
}

func (u *UserRepository) Delete(ctx context.Context, id int64) error {
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM users WHERE id = @id`

	result, err := u.db.Exec(ctx, query, args)
	if err != nil {
		u.log.Error("Error deleting user", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrUserNotFound
	}

	return nil
}
