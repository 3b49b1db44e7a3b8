package repository

import (
	"context"
	"testing"
	"time"

	"event-experience/internal/model"
	"event-experience/internal/repository"
	apperrors "event-experience/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_CreateAndFind(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewEventRepository(testDB)

	description := "Annual developer conference"
	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 3, 18, 0, 0, 0, time.UTC)
	capacity := 500
	price := 99.5
	organizerID := createTestUser(t, "alice", "alice@example.com")
	location := "Convention Center"

	created, err := repo.Create(ctx, &model.Event{
		Title:       "Tech Conference",
		Description: &description,
		StartDate:   &start,
		EndDate:     &end,
		Capacity:    &capacity,
		Price:       &price,
		OrganizerID: &organizerID,
		Status:      "active",
		Location:    &location,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tech Conference", found.Title)
	require.NotNil(t, found.StartDate)
	assert.True(t, start.Equal(*found.StartDate))
	require.NotNil(t, found.Capacity)
	assert.Equal(t, 500, *found.Capacity)
	require.NotNil(t, found.OrganizerID)
	assert.Equal(t, organizerID, *found.OrganizerID)
}

func TestEventRepository_ListByOrganizerID(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewEventRepository(testDB)

	aliceID := createTestUser(t, "alice", "alice@example.com")
	bobID := createTestUser(t, "bob", "bob@example.com")

	_, err := repo.Create(ctx, &model.Event{Title: "Alice One", OrganizerID: &aliceID, Status: "active"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Event{Title: "Alice Two", OrganizerID: &aliceID, Status: "active"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Event{Title: "Bob One", OrganizerID: &bobID, Status: "active"})
	require.NoError(t, err)

	events, err := repo.ListByOrganizerID(ctx, aliceID)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestEventRepository_Update(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewEventRepository(testDB)

	id := createTestEvent(t, "Tech Conference")

	title := "Tech Conference 2026"
	rating := 4.5
	updated, err := repo.Update(ctx, id, model.UpdateEventParams{Title: &title, Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	require.NotNil(t, updated.Rating)
	assert.InDelta(t, 4.5, *updated.Rating, 0.001)

	t.Run("missing event", func(t *testing.T) {
		_, err := repo.Update(ctx, 9999, model.UpdateEventParams{Title: &title})
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepository_Delete(t *testing.T) {
	setupTestWithTruncate(t)
	ctx := context.Background()
	repo := repository.NewEventRepository(testDB)

	id := createTestEvent(t, "Tech Conference")

	deleted, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)

	deleted, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)
}
