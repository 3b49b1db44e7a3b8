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

func TestOrganizationRepository_CRUD(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewOrganizationRepository(testDB)

	description := "Student chess club"
	created, err := repo.Create(ctx, &model.Organization{Title: "Chess Club", Description: &description})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chess Club", found.Title)

	title := "Chess Society"
	updated, err := repo.Update(ctx, created.ID, model.UpdateOrganizationParams{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrOrganizationNotFound)
}

func TestMembershipRepository_Lifecycle(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	orgRepo := repository.NewOrganizationRepository(testDB)
	memberRepo := repository.NewMembershipRepository(testDB)

	org, err := orgRepo.Create(ctx, &model.Organization{Title: "Chess Club"})
	require.NoError(t, err)
	userID := createTestUser(t, "alice", "alice@example.com")

	member, err := memberRepo.Create(ctx, &model.OrganizationMember{
		OrganizationID: org.ID,
		UserID:         userID,
	})
	require.NoError(t, err)
	assert.Equal(t, org.ID, member.OrganizationID)
	assert.Equal(t, userID, member.UserID)

	found, err := memberRepo.Find(ctx, org.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, found.UserID)

	members, err := memberRepo.ListByOrganizationID(ctx, org.ID)
	require.NoError(t, err)
	assert.Len(t, members, 1)

	removed, err := memberRepo.Delete(ctx, org.ID, userID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = memberRepo.Find(ctx, org.ID, userID)
	assert.ErrorIs(t, err, apperrors.ErrMembershipNotFound)

	removed, err = memberRepo.Delete(ctx, org.ID, userID)
	require.NoError(t, err)
	assert.False(t, removed)
}
