package repository

import (
	"context"
	"testing"

	"event-experience/internal/model"
	"event-experience/internal/repository"
	apperrors "event-experience/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileStr(s string) *string {
	return &s
}

func TestOrganizerProfileRepository_CreateAndFind(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewOrganizerProfileRepository(testDB)

	userID := createTestUser(t, "organizer", "organizer@example.com")

	created, err := repo.Create(ctx, &model.OrganizerProfile{
		UserID:         userID,
		DisplayName:    profileStr("Acme Events"),
		ProfilePicture: profileStr("/uploads/acme.png"),
		Phone:          profileStr("+46 70-123 45 67"),
		Bio:            profileStr("We run meetups."),
	})
	require.NoError(t, err)
	assert.Equal(t, userID, created.UserID)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.FindByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Events", *found.DisplayName)
	assert.Equal(t, "We run meetups.", *found.Bio)
}

func TestOrganizerProfileRepository_FindByUserID_NotFound(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewOrganizerProfileRepository(testDB)

	_, err := repo.FindByUserID(ctx, 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrOrganizerProfileNotFound)
}

func TestOrganizerProfileRepository_Update(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewOrganizerProfileRepository(testDB)

	userID := createTestUser(t, "organizer", "organizer@example.com")
	_, err := repo.Create(ctx, &model.OrganizerProfile{
		UserID:      userID,
		DisplayName: profileStr("Acme Events"),
	})
	require.NoError(t, err)

	t.Run("Success - partial update keeps other fields", func(t *testing.T) {
		updated, err := repo.Update(ctx, userID, model.UpdateOrganizerProfileParams{
			Bio: profileStr("We run meetups."),
		})
		require.NoError(t, err)
		assert.Equal(t, "Acme Events", *updated.DisplayName)
		assert.Equal(t, "We run meetups.", *updated.Bio)
	})

	t.Run("Failed - no fields to update", func(t *testing.T) {
		_, err := repo.Update(ctx, userID, model.UpdateOrganizerProfileParams{})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - profile not found", func(t *testing.T) {
		_, err := repo.Update(ctx, 99, model.UpdateOrganizerProfileParams{
			Bio: profileStr("nobody home"),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrOrganizerProfileNotFound)
	})
}

func TestOrganizerProfileRepository_Delete(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewOrganizerProfileRepository(testDB)

	userID := createTestUser(t, "organizer", "organizer@example.com")
	_, err := repo.Create(ctx, &model.OrganizerProfile{
		UserID:      userID,
		DisplayName: profileStr("Acme Events"),
	})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, userID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.FindByUserID(ctx, userID)
	assert.ErrorIs(t, err, apperrors.ErrOrganizerProfileNotFound)

	// the row is gone, so the organizer can start over
	recreated, err := repo.Create(ctx, &model.OrganizerProfile{
		UserID:      userID,
		DisplayName: profileStr("Acme Events v2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Events v2", *recreated.DisplayName)

	deleted, err = repo.Delete(ctx, 99)
	require.NoError(t, err)
	assert.False(t, deleted)
}
