package service

import (
	"context"
	"strings"
	"testing"

	"event-experience/internal/model"
	repoMocks "event-experience/internal/repository/mocks"
	"event-experience/internal/service"
	apperrors "event-experience/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrganizerProfileServiceMocks(t *testing.T) (*repoMocks.MockOrganizerProfileRepository, *repoMocks.MockUserRepository, service.OrganizerProfileService) {
	profileRepo := repoMocks.NewMockOrganizerProfileRepository(t)
	userRepo := repoMocks.NewMockUserRepository(t)
	profileService := service.NewOrganizerProfileService(profileRepo, userRepo)
	return profileRepo, userRepo, profileService
}

func strPtr(s string) *string {
	return &s
}

func TestOrganizerProfileService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		profileRepo, userRepo, profileService := setupOrganizerProfileServiceMocks(t)

		profile := &model.OrganizerProfile{
			UserID:      7,
			DisplayName: strPtr("Acme Events"),
			Phone:       strPtr("+46 70-123 45 67"),
		}
		userRepo.EXPECT().FindByID(ctx, 7).Return(&model.User{ID: 7}, nil).Once()
		profileRepo.EXPECT().FindByUserID(ctx, 7).Return(nil, apperrors.ErrOrganizerProfileNotFound).Once()
		profileRepo.EXPECT().Create(ctx, profile).Return(profile, nil).Once()

		created, err := profileService.Create(ctx, profile)

		require.NoError(t, err)
		assert.Equal(t, 7, created.UserID)
	})

	t.Run("Failed - profile already exists", func(t *testing.T) {
		profileRepo, userRepo, profileService := setupOrganizerProfileServiceMocks(t)

		userRepo.EXPECT().FindByID(ctx, 7).Return(&model.User{ID: 7}, nil).Once()
		profileRepo.EXPECT().FindByUserID(ctx, 7).Return(&model.OrganizerProfile{UserID: 7}, nil).Once()

		_, err := profileService.Create(ctx, &model.OrganizerProfile{UserID: 7, DisplayName: strPtr("Acme Events")})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrProfileAlreadyExists)
		profileRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - user not found", func(t *testing.T) {
		profileRepo, userRepo, profileService := setupOrganizerProfileServiceMocks(t)

		userRepo.EXPECT().FindByID(ctx, 99).Return(nil, apperrors.ErrUserNotFound).Once()

		_, err := profileService.Create(ctx, &model.OrganizerProfile{UserID: 99, DisplayName: strPtr("Ghost")})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		profileRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - invalid fields", func(t *testing.T) {
		profileRepo, userRepo, profileService := setupOrganizerProfileServiceMocks(t)

		cases := []*model.OrganizerProfile{
			{UserID: 7, DisplayName: strPtr("x")},
			{UserID: 7, DisplayName: strPtr(strings.Repeat("a", 81))},
			{UserID: 7, Phone: strPtr("call me")},
			{UserID: 7, Phone: strPtr("+-+ ")},
			{UserID: 7, Bio: strPtr(strings.Repeat("b", 501))},
			{UserID: 7, ProfilePicture: strPtr("ftp://pictures/me.png")},
		}
		for _, profile := range cases {
			_, err := profileService.Create(ctx, profile)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		}
		userRepo.AssertNotCalled(t, "FindByID")
		profileRepo.AssertNotCalled(t, "Create")
	})
}

func TestOrganizerProfileService_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - updates existing profile", func(t *testing.T) {
		profileRepo, _, profileService := setupOrganizerProfileServiceMocks(t)

		params := model.UpdateOrganizerProfileParams{Bio: strPtr("We run meetups.")}
		profileRepo.EXPECT().Update(ctx, 7, params).Return(&model.OrganizerProfile{
			UserID: 7,
			Bio:    params.Bio,
		}, nil).Once()

		profile, err := profileService.Upsert(ctx, 7, params)

		require.NoError(t, err)
		assert.Equal(t, "We run meetups.", *profile.Bio)
	})

	t.Run("Success - creates when missing", func(t *testing.T) {
		profileRepo, userRepo, profileService := setupOrganizerProfileServiceMocks(t)

		params := model.UpdateOrganizerProfileParams{
			DisplayName:    strPtr("Acme Events"),
			ProfilePicture: strPtr("/uploads/acme.png"),
		}
		profileRepo.EXPECT().Update(ctx, 7, params).Return(nil, apperrors.ErrOrganizerProfileNotFound).Once()
		userRepo.EXPECT().FindByID(ctx, 7).Return(&model.User{ID: 7}, nil).Once()
		profileRepo.EXPECT().Create(ctx, &model.OrganizerProfile{
			UserID:         7,
			DisplayName:    params.DisplayName,
			ProfilePicture: params.ProfilePicture,
		}).RunAndReturn(func(_ context.Context, p *model.OrganizerProfile) (*model.OrganizerProfile, error) {
			return p, nil
		}).Once()

		profile, err := profileService.Upsert(ctx, 7, params)

		require.NoError(t, err)
		assert.Equal(t, "Acme Events", *profile.DisplayName)
	})

	t.Run("Failed - user not found", func(t *testing.T) {
		profileRepo, userRepo, profileService := setupOrganizerProfileServiceMocks(t)

		params := model.UpdateOrganizerProfileParams{DisplayName: strPtr("Ghost Events")}
		profileRepo.EXPECT().Update(ctx, 99, params).Return(nil, apperrors.ErrOrganizerProfileNotFound).Once()
		userRepo.EXPECT().FindByID(ctx, 99).Return(nil, apperrors.ErrUserNotFound).Once()

		_, err := profileService.Upsert(ctx, 99, params)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		profileRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - invalid phone", func(t *testing.T) {
		profileRepo, _, profileService := setupOrganizerProfileServiceMocks(t)

		_, err := profileService.Upsert(ctx, 7, model.UpdateOrganizerProfileParams{Phone: strPtr("not-a-number")})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		profileRepo.AssertNotCalled(t, "Update")
	})
}

func TestOrganizerProfileService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed - profile not found", func(t *testing.T) {
		profileRepo, _, profileService := setupOrganizerProfileServiceMocks(t)

		profileRepo.EXPECT().Delete(ctx, 7).Return(false, nil).Once()

		deleted, err := profileService.Delete(ctx, 7)

		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
