package profile_service

import (
	"context"

	"blogicum-service/internal/model"
)

type Service interface {
	GetProfile(ctx context.Context, username string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, username string, update *model.UpdateProfileDTO) (*model.User, error)
}
