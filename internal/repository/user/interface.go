package user_repository

import (
	"context"

	"blogicum-service/internal/model"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Update(ctx context.Context, id int64, update *model.UpdateProfileDTO) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}
