package service

import (
	"context"
	"testing"

	"event-experience/internal/model"
	repoMocks "event-experience/internal/repository/mocks"
	"event-experience/internal/service"
	apperrors "event-experience/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := repoMocks.NewMockUserRepository(t)
		userService := service.NewUserService(userRepo)

		user := &model.User{Username: "alice", Password: "secret", Email: "alice@example.com"}
		userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, apperrors.ErrUserNotFound).Once()
		userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, apperrors.ErrUserNotFound).Once()
		userRepo.EXPECT().Create(ctx, user).RunAndReturn(
			func(_ context.Context, u *model.User) (*model.User, error) {
				u.ID = 1
				return u, nil
			}).Once()

		created, err := userService.Create(ctx, user)

		require.NoError(t, err)
		assert.Equal(t, 1, created.ID)
		userRepo.AssertExpectations(t)
	})

	t.Run("Failed - username already taken", func(t *testing.T) {
		userRepo := repoMocks.NewMockUserRepository(t)
		userService := service.NewUserService(userRepo)

		userRepo.EXPECT().FindByUsername(ctx, "alice").Return(&model.User{ID: 1, Username: "alice"}, nil).Once()

		_, err := userService.Create(ctx, &model.User{Username: "alice", Password: "secret", Email: "new@example.com"})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
		userRepo.AssertNotCalled(t, "FindByEmail")
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - email already taken", func(t *testing.T) {
		userRepo := repoMocks.NewMockUserRepository(t)
		userService := service.NewUserService(userRepo)

		userRepo.EXPECT().FindByUsername(ctx, "bob").Return(nil, apperrors.ErrUserNotFound).Once()
		userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&model.User{ID: 2, Email: "taken@example.com"}, nil).Once()

		_, err := userService.Create(ctx, &model.User{Username: "bob", Password: "secret", Email: "taken@example.com"})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - missing required fields", func(t *testing.T) {
		userRepo := repoMocks.NewMockUserRepository(t)
		userService := service.NewUserService(userRepo)

		cases := []*model.User{
			{Password: "secret", Email: "a@example.com"},
			{Username: "alice", Email: "a@example.com"},
			{Username: "alice", Password: "secret"},
		}
		for _, user := range cases {
			_, err := userService.Create(ctx, user)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		}
		userRepo.AssertNotCalled(t, "Create")
	})
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed - user not found", func(t *testing.T) {
		userRepo := repoMocks.NewMockUserRepository(t)
		userService := service.NewUserService(userRepo)

		userRepo.EXPECT().FindByID(ctx, 99).Return(nil, apperrors.ErrUserNotFound).Once()

		_, err := userService.GetByID(ctx, 99)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
