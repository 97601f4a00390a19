package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogicum-service/internal/logger"
	"blogicum-service/internal/metrics"
	category_repository "blogicum-service/internal/repository/category"
	category_repository_postgres "blogicum-service/internal/repository/category/postgres"
	comment_repository "blogicum-service/internal/repository/comment"
	comment_repository_postgres "blogicum-service/internal/repository/comment/postgres"
	location_repository "blogicum-service/internal/repository/location"
	location_repository_postgres "blogicum-service/internal/repository/location/postgres"
	post_repository "blogicum-service/internal/repository/post"
	post_repository_postgres "blogicum-service/internal/repository/post/postgres"
	user_repository "blogicum-service/internal/repository/user"
	user_repository_postgres "blogicum-service/internal/repository/user/postgres"
)

type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

type Transaction interface {
	PostRepository() post_repository.Repository
	CategoryRepository() category_repository.Repository
	LocationRepository() location_repository.Repository
	CommentRepository() comment_repository.Repository
	UserRepository() user_repository.Repository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type PostgresUnitOfWork struct {
	pool    *pgxpool.Pool
	log     *logger.Logger
	metrics metrics.MetricsProvider
}

func NewPostgresUOW(pool *pgxpool.Pool, log *logger.Logger, metrics metrics.MetricsProvider) UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log, metrics: metrics}
}

func (uow *PostgresUnitOfWork) Begin(ctx context.Context) (Transaction, error) {
	tx, err := uow.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &PostgresTransaction{tx: tx, log: uow.log, metrics: uow.metrics}, nil
}

type PostgresTransaction struct {
	tx      pgx.Tx
	log     *logger.Logger
	metrics metrics.MetricsProvider
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *PostgresTransaction) PostRepository() post_repository.Repository {
	return post_repository_postgres.NewPostRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) CategoryRepository() category_repository.Repository {
	return category_repository_postgres.NewCategoryRepository(t.tx, t.log)
}

func (t *PostgresTransaction) LocationRepository() location_repository.Repository {
	return location_repository_postgres.NewLocationRepository(t.tx, t.log)
}

func (t *PostgresTransaction) CommentRepository() comment_repository.Repository {
	return comment_repository_postgres.NewCommentRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) UserRepository() user_repository.Repository {
	return user_repository_postgres.NewUserRepository(t.tx, t.log)
}
