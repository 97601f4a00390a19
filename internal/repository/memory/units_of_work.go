package memory

import (
	"context"

	category_repository "blogicum-service/internal/repository/category"
	comment_repository "blogicum-service/internal/repository/comment"
	location_repository "blogicum-service/internal/repository/location"
	post_repository "blogicum-service/internal/repository/post"
	"blogicum-service/internal/repository/postgres"
	user_repository "blogicum-service/internal/repository/user"
)

// UnitOfWork hands out the shared in-memory repositories with no real
// transaction semantics. Tests use it where the service expects the
// postgres unit of work.
type UnitOfWork struct {
	Posts      post_repository.Repository
	Categories category_repository.Repository
	Locations  location_repository.Repository
	Comments   comment_repository.Repository
	Users      user_repository.Repository
}

func (u *UnitOfWork) Begin(ctx context.Context) (postgres.Transaction, error) {
	return &transaction{uow: u}, nil
}

type transaction struct {
	uow *UnitOfWork
}

func (t *transaction) Commit(ctx context.Context) error   { return nil }
func (t *transaction) Rollback(ctx context.Context) error { return nil }

func (t *transaction) PostRepository() post_repository.Repository {
	return t.uow.Posts
}

func (t *transaction) CategoryRepository() category_repository.Repository {
	return t.uow.Categories
}

func (t *transaction) LocationRepository() location_repository.Repository {
	return t.uow.Locations
}

func (t *transaction) CommentRepository() comment_repository.Repository {
	return t.uow.Comments
}

func (t *transaction) UserRepository() user_repository.Repository {
	return t.uow.Users
}
