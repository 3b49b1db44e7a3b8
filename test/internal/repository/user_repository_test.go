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

func TestUserRepository_CreateAndFind(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewUserRepository(testDB)

	role := "organizer"
	created, err := repo.Create(ctx, &model.User{
		Username: "alice",
		Password: "secret",
		Email:    "alice@example.com",
		Role:     &role,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
	assert.Equal(t, "alice@example.com", found.Email)
	require.NotNil(t, found.Role)
	assert.Equal(t, "organizer", *found.Role)

	byName, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestUserRepository_FindNotFound(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewUserRepository(testDB)

	_, err := repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewUserRepository(testDB)

	id := createTestUser(t, "alice", "alice@example.com")

	email := "alice@new.example.com"
	updated, err := repo.Update(ctx, id, model.UpdateUserParams{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, email, updated.Email)
	assert.Equal(t, "alice", updated.Username)

	t.Run("rejects an empty update", func(t *testing.T) {
		_, err := repo.Update(ctx, id, model.UpdateUserParams{})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestUserRepository_Delete(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewUserRepository(testDB)

	id := createTestUser(t, "alice", "alice@example.com")

	deleted, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
