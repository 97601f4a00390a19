package profile_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/model"
	user_memory "blogicum-service/internal/repository/user/memory"
	profile_service "blogicum-service/internal/service/profile"
)

func newService(t *testing.T) (*profile_service.ProfileService, *user_memory.UserRepository) {
	t.Helper()
	log := logger.New("test")
	userRepo := user_memory.NewUserRepository(log)
	return profile_service.NewProfileService(userRepo, log), userRepo
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	service, userRepo := newService(t)

	userRepo.Put(&model.User{Username: "writer"})

	user, err := service.GetProfile(ctx, "writer")
	require.NoError(t, err)
	assert.Equal(t, "writer", user.Username)

	_, err = service.GetProfile(ctx, "nobody")
	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can update", func(t *testing.T) {
		service, userRepo := newService(t)
		owner := userRepo.Put(&model.User{Username: "writer"})

		first := "Ada"
		updated, err := service.UpdateProfile(ctx, owner.ID, "writer", &model.UpdateProfileDTO{FirstName: &first})
		require.NoError(t, err)
		require.NotNil(t, updated.FirstName)
		assert.Equal(t, "Ada", *updated.FirstName)
	})

	t.Run("someone else is rejected", func(t *testing.T) {
		service, userRepo := newService(t)
		owner := userRepo.Put(&model.User{Username: "writer"})
		intruder := userRepo.Put(&model.User{Username: "intruder"})
		require.NotEqual(t, owner.ID, intruder.ID)

		first := "Mallory"
		_, err := service.UpdateProfile(ctx, intruder.ID, "writer", &model.UpdateProfileDTO{FirstName: &first})
		assert.ErrorIs(t, err, custom_errors.ErrForbidden)
	})

	t.Run("taken username conflicts", func(t *testing.T) {
		service, userRepo := newService(t)
		owner := userRepo.Put(&model.User{Username: "writer"})
		userRepo.Put(&model.User{Username: "taken"})

		taken := "taken"
		_, err := service.UpdateProfile(ctx, owner.ID, "writer", &model.UpdateProfileDTO{Username: &taken})
		assert.ErrorIs(t, err, custom_errors.ErrUsernameExists)
	})
}
