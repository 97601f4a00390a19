package profile_service

import (
	"context"
	"errors"
	"log/slog"

	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/model"
	user_repository "blogicum-service/internal/repository/user"
)

type ProfileService struct {
	userRepo user_repository.Repository
	log      *logger.Logger
}

func NewProfileService(userRepo user_repository.Repository, log *logger.Logger) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		log:      log,
	}
}

func (s *ProfileService) GetProfile(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("User not found", slog.String("username", username))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to get user by username", slog.String("error", err.Error()), slog.String("username", username))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return user, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, username string, update *model.UpdateProfileDTO) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("User not found for update", slog.String("username", username))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to get user for update", slog.String("error", err.Error()), slog.String("username", username))
		return nil, custom_errors.ErrDatabaseQuery
	}

	// A profile can only be edited by its owner.
	if user.ID != userID {
		s.log.Debug("User tried to edit foreign profile",
			slog.Int64("user_id", userID),
			slog.Int64("owner_id", user.ID))
		return nil, custom_errors.ErrForbidden
	}

	updated, err := s.userRepo.Update(ctx, user.ID, update)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUsernameExists) {
			return nil, custom_errors.ErrUsernameExists
		}
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			return nil, custom_errors.ErrUserNotFound
		}
		if errors.Is(err, custom_errors.ErrNoUpdateRows) {
			return nil, custom_errors.ErrNoUpdateRows
		}
		s.log.Error("Failed to update user", slog.String("error", err.Error()), slog.Int64("user_id", user.ID))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return updated, nil
}
