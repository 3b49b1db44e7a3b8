package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"event-experience/internal/handler"
	"event-experience/internal/model"
	"event-experience/internal/service/mocks"
	apperrors "event-experience/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTicketTestRouter(mockService *mocks.MockTicketService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewTicketHandler(mockService).RegisterRoutes(router)
	return router
}

func TestValidateTicket(t *testing.T) {
	checkedIn := &model.Ticket{
		ID:         42,
		AttendeeID: 7,
		EventID:    3,
		QRCode:     "payload-42",
		Status:     model.TicketStatusCheckedIn,
		UpdatedAt:  time.Now().UTC(),
	}

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService)

		mockService.EXPECT().ValidateTicket(mock.Anything, 42).Return(&model.CheckInResult{
			Ticket:       checkedIn,
			AttendeeName: "alice",
		}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/tickets/validate", gin.H{"ticketId": 42})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body, err := decodeJSONBody(w.Body)
		require.NoError(t, err)
		assert.Equal(t, true, body["valid"])
		assert.Equal(t, "Ticket Checked In Successfully!", body["message"])
		assert.Equal(t, "alice", body["attendeeName"])
		assert.NotNil(t, body["ticket"])
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ticket not found", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService)

		mockService.EXPECT().ValidateTicket(mock.Anything, 42).Return(nil, apperrors.ErrTicketNotFound).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/tickets/validate", gin.H{"ticketId": 42})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body, err := decodeJSONBody(w.Body)
		require.NoError(t, err)
		assert.Equal(t, false, body["valid"])
		assert.Equal(t, "Ticket not found", body["error"])
	})

	t.Run("Failed - already checked in", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService)

		mockService.EXPECT().ValidateTicket(mock.Anything, 42).Return(nil, apperrors.ErrTicketAlreadyCheckedIn).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/tickets/validate", gin.H{"ticketId": 42})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body, err := decodeJSONBody(w.Body)
		require.NoError(t, err)
		assert.Equal(t, false, body["valid"])
		assert.Equal(t, "Ticket already checked in", body["error"])
	})

	t.Run("Failed - non-checkable status named in the error", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService)

		mockService.EXPECT().ValidateTicket(mock.Anything, 42).
			Return(nil, &apperrors.InvalidTicketStatusError{Status: "expired"}).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/tickets/validate", gin.H{"ticketId": 42})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body, err := decodeJSONBody(w.Body)
		require.NoError(t, err)
		assert.Equal(t, false, body["valid"])
		assert.Equal(t, "Invalid ticket status: expired", body["error"])
	})

	t.Run("Failed - missing ticketId", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/tickets/validate", gin.H{})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body, err := decodeJSONBody(w.Body)
		require.NoError(t, err)
		assert.Equal(t, false, body["valid"])
		assert.Equal(t, "Missing ticketId", body["error"])
		mockService.AssertNotCalled(t, "ValidateTicket")
	})

	t.Run("Failed - unexpected error", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService)

		mockService.EXPECT().ValidateTicket(mock.Anything, 42).Return(nil, apperrors.ErrInternalServerError).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/tickets/validate", gin.H{"ticketId": 42})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestCreateTicket(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, mock.Anything).Return(&model.Ticket{
			ID:         1,
			AttendeeID: 7,
			EventID:    3,
			QRCode:     "payload-1",
			Status:     model.TicketStatusValid,
		}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/tickets", gin.H{"attendee_id": 7, "event_id": 3})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - missing required fields", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/tickets", gin.H{"attendee_id": 7})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - binding error", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService)

		req := createRawJSONHTTPRequest("POST", "/api/v1/tickets", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})
}

func TestGetTicket(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService)

		mockService.EXPECT().GetByID(mock.Anything, 42).Return(&model.Ticket{ID: 42}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/tickets/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService)

		mockService.EXPECT().GetByID(mock.Anything, 42).Return(nil, apperrors.ErrTicketNotFound).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/tickets/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - non-numeric id", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService)

		req := createJSONHTTPRequest("GET", "/api/v1/tickets/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "GetByID")
	})
}

func TestDeleteTicket(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService)

		mockService.EXPECT().Delete(mock.Anything, 42).Return(true, nil).Once()

		req := createJSONHTTPRequest("DELETE", "/api/v1/tickets/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService)

		mockService.EXPECT().Delete(mock.Anything, 42).Return(false, nil).Once()

		req := createJSONHTTPRequest("DELETE", "/api/v1/tickets/42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTicketsWithDetails(t *testing.T) {
	t.Run("Success - empty result stays a JSON array", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupTicketTestRouter(mockService)

		mockService.EXPECT().TicketsWithEventDetails(mock.Anything, 7).
			Return([]*model.TicketWithEvent{}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/students/7/tickets-with-details", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}
