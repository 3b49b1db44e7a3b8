package service

import (
	"context"
	"errors"
	"testing"
	"time"

	cacheMocks "event-experience/internal/cache/mocks"
	"event-experience/internal/model"
	repoMocks "event-experience/internal/repository/mocks"
	"event-experience/internal/service"
	apperrors "event-experience/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEventServiceMocks(t *testing.T) (
	*repoMocks.MockEventRepository,
	*repoMocks.MockTicketRepository,
	*cacheMocks.MockAttendanceCache,
) {
	eventRepo := repoMocks.NewMockEventRepository(t)
	ticketRepo := repoMocks.NewMockTicketRepository(t)
	attendanceCache := cacheMocks.NewMockAttendanceCache(t)
	return eventRepo, ticketRepo, attendanceCache
}

func TestEventService_Attendance(t *testing.T) {
	ctx := context.Background()
	event := &model.Event{ID: 3, Title: "Tech Conference", Status: "active"}

	t.Run("Success - served from cache", func(t *testing.T) {
		eventRepo, ticketRepo, attendanceCache := setupEventServiceMocks(t)
		eventService := service.NewEventService(eventRepo, ticketRepo, attendanceCache)

		cached := &model.EventAttendance{Registered: 120, CheckedIn: 45}
		eventRepo.EXPECT().FindByID(ctx, 3).Return(event, nil).Once()
		attendanceCache.EXPECT().Get(ctx, 3).Return(cached, nil).Once()

		attendance, err := eventService.Attendance(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, cached, attendance)
		ticketRepo.AssertNotCalled(t, "CountByEventID")
	})

	t.Run("Success - cache miss recomputes and writes back", func(t *testing.T) {
		eventRepo, ticketRepo, attendanceCache := setupEventServiceMocks(t)
		eventService := service.NewEventService(eventRepo, ticketRepo, attendanceCache)

		counted := &model.EventAttendance{Registered: 120, CheckedIn: 45}
		eventRepo.EXPECT().FindByID(ctx, 3).Return(event, nil).Once()
		attendanceCache.EXPECT().Get(ctx, 3).Return(nil, nil).Once()
		ticketRepo.EXPECT().CountByEventID(ctx, 3).Return(counted, nil).Once()
		attendanceCache.EXPECT().Set(ctx, 3, counted).Return(nil).Once()

		attendance, err := eventService.Attendance(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, counted, attendance)
	})

	t.Run("Success - event with no tickets counts as zero", func(t *testing.T) {
		eventRepo, ticketRepo, attendanceCache := setupEventServiceMocks(t)
		eventService := service.NewEventService(eventRepo, ticketRepo, attendanceCache)

		counted := &model.EventAttendance{Registered: 0, CheckedIn: 0}
		eventRepo.EXPECT().FindByID(ctx, 3).Return(event, nil).Once()
		attendanceCache.EXPECT().Get(ctx, 3).Return(nil, nil).Once()
		ticketRepo.EXPECT().CountByEventID(ctx, 3).Return(counted, nil).Once()
		attendanceCache.EXPECT().Set(ctx, 3, counted).Return(nil).Once()

		attendance, err := eventService.Attendance(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, 0, attendance.Registered)
		assert.Equal(t, 0, attendance.CheckedIn)
	})

	t.Run("Success - cache read failure falls back to the store", func(t *testing.T) {
		eventRepo, ticketRepo, attendanceCache := setupEventServiceMocks(t)
		eventService := service.NewEventService(eventRepo, ticketRepo, attendanceCache)

		counted := &model.EventAttendance{Registered: 10, CheckedIn: 2}
		eventRepo.EXPECT().FindByID(ctx, 3).Return(event, nil).Once()
		attendanceCache.EXPECT().Get(ctx, 3).Return(nil, errors.New("redis down")).Once()
		ticketRepo.EXPECT().CountByEventID(ctx, 3).Return(counted, nil).Once()
		attendanceCache.EXPECT().Set(ctx, 3, counted).Return(errors.New("redis down")).Once()

		attendance, err := eventService.Attendance(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, counted, attendance)
	})

	t.Run("Failed - event not found", func(t *testing.T) {
		eventRepo, ticketRepo, attendanceCache := setupEventServiceMocks(t)
		eventService := service.NewEventService(eventRepo, ticketRepo, attendanceCache)

		eventRepo.EXPECT().FindByID(ctx, 3).Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := eventService.Attendance(ctx, 3)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		ticketRepo.AssertNotCalled(t, "CountByEventID")
		attendanceCache.AssertNotCalled(t, "Get")
	})

	t.Run("Failed - count error", func(t *testing.T) {
		eventRepo, ticketRepo, attendanceCache := setupEventServiceMocks(t)
		eventService := service.NewEventService(eventRepo, ticketRepo, attendanceCache)

		eventRepo.EXPECT().FindByID(ctx, 3).Return(event, nil).Once()
		attendanceCache.EXPECT().Get(ctx, 3).Return(nil, nil).Once()
		ticketRepo.EXPECT().CountByEventID(ctx, 3).Return(nil, errors.New("db error")).Once()

		_, err := eventService.Attendance(ctx, 3)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "db error")
		attendanceCache.AssertNotCalled(t, "Set")
	})
}

func TestEventService_Participants(t *testing.T) {
	ctx := context.Background()
	event := &model.Event{ID: 3, Title: "Tech Conference", Status: "active"}

	t.Run("Success", func(t *testing.T) {
		eventRepo, ticketRepo, attendanceCache := setupEventServiceMocks(t)
		eventService := service.NewEventService(eventRepo, ticketRepo, attendanceCache)

		participants := []*model.Participant{
			{Name: "alice", TicketID: 1, Status: model.TicketStatusCheckedIn},
			{Name: "bob", TicketID: 2, Status: model.TicketStatusValid},
		}
		eventRepo.EXPECT().FindByID(ctx, 3).Return(event, nil).Once()
		ticketRepo.EXPECT().ListParticipants(ctx, 3).Return(participants, nil).Once()

		got, err := eventService.Participants(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, participants, got)
		attendanceCache.AssertNotCalled(t, "Get")
	})

	t.Run("Failed - event not found", func(t *testing.T) {
		eventRepo, ticketRepo, attendanceCache := setupEventServiceMocks(t)
		eventService := service.NewEventService(eventRepo, ticketRepo, attendanceCache)
		_ = attendanceCache

		eventRepo.EXPECT().FindByID(ctx, 3).Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := eventService.Participants(ctx, 3)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		ticketRepo.AssertNotCalled(t, "ListParticipants")
	})
}

func TestParseEventDate(t *testing.T) {
	t.Run("RFC3339", func(t *testing.T) {
		got := service.ParseEventDate("2026-04-01T18:30:00Z")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2026, 4, 1, 18, 30, 0, 0, time.UTC), *got)
	})

	t.Run("Timestamp without zone", func(t *testing.T) {
		got := service.ParseEventDate("2026-04-01T18:30:00")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2026, 4, 1, 18, 30, 0, 0, time.UTC), *got)
	})

	t.Run("Bare date", func(t *testing.T) {
		got := service.ParseEventDate("2026-04-01")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("Malformed text is dropped", func(t *testing.T) {
		assert.Nil(t, service.ParseEventDate("next tuesday"))
		assert.Nil(t, service.ParseEventDate(""))
		assert.Nil(t, service.ParseEventDate("01/04/2026"))
	})
}
