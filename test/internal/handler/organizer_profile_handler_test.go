package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-experience/internal/handler"
	"event-experience/internal/model"
	"event-experience/internal/service/mocks"
	apperrors "event-experience/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupOrganizerProfileTestRouter(mockService *mocks.MockOrganizerProfileService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewOrganizerProfileHandler(mockService).RegisterRoutes(router)
	return router
}

func TestGetOrganizerProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockOrganizerProfileService(t)
		router := setupOrganizerProfileTestRouter(mockService)

		displayName := "Acme Events"
		mockService.EXPECT().GetByUserID(mock.Anything, 7).Return(&model.OrganizerProfile{
			UserID:      7,
			DisplayName: &displayName,
		}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/organizers/7/profile", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body, err := decodeJSONBody(w.Body)
		require.NoError(t, err)
		assert.Equal(t, "Acme Events", body["display_name"])
	})

	t.Run("Failed - profile not found", func(t *testing.T) {
		mockService := mocks.NewMockOrganizerProfileService(t)
		router := setupOrganizerProfileTestRouter(mockService)

		mockService.EXPECT().GetByUserID(mock.Anything, 7).
			Return(nil, apperrors.ErrOrganizerProfileNotFound).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/organizers/7/profile", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body, err := decodeJSONBody(w.Body)
		require.NoError(t, err)
		assert.Equal(t, "Organizer profile not found", body["error"])
	})
}

func TestCreateOrganizerProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockOrganizerProfileService(t)
		router := setupOrganizerProfileTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
			func(_ context.Context, profile *model.OrganizerProfile) (*model.OrganizerProfile, error) {
				return profile, nil
			}).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/organizers/7/profile", gin.H{
			"display_name": "Acme Events",
			"phone":        "+46 70-123 45 67",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - profile already exists", func(t *testing.T) {
		mockService := mocks.NewMockOrganizerProfileService(t)
		router := setupOrganizerProfileTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrProfileAlreadyExists).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/organizers/7/profile", gin.H{
			"display_name": "Acme Events",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body, err := decodeJSONBody(w.Body)
		require.NoError(t, err)
		assert.Equal(t, "Profile already exists", body["error"])
	})

	t.Run("Failed - invalid input", func(t *testing.T) {
		mockService := mocks.NewMockOrganizerProfileService(t)
		router := setupOrganizerProfileTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrInvalidInput).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/organizers/7/profile", gin.H{
			"display_name": "x",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - user not found", func(t *testing.T) {
		mockService := mocks.NewMockOrganizerProfileService(t)
		router := setupOrganizerProfileTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrUserNotFound).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/organizers/99/profile", gin.H{
			"display_name": "Ghost Events",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body, err := decodeJSONBody(w.Body)
		require.NoError(t, err)
		assert.Equal(t, "User not found", body["error"])
	})
}

func TestUpsertOrganizerProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockOrganizerProfileService(t)
		router := setupOrganizerProfileTestRouter(mockService)

		bio := "We run meetups."
		mockService.EXPECT().Upsert(mock.Anything, 7, model.UpdateOrganizerProfileParams{Bio: &bio}).
			Return(&model.OrganizerProfile{UserID: 7, Bio: &bio}, nil).Once()

		req := createJSONHTTPRequest("PUT", "/api/v1/organizers/7/profile", gin.H{
			"bio": "We run meetups.",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body, err := decodeJSONBody(w.Body)
		require.NoError(t, err)
		assert.Equal(t, "We run meetups.", body["bio"])
	})
}

func TestDeleteOrganizerProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockOrganizerProfileService(t)
		router := setupOrganizerProfileTestRouter(mockService)

		mockService.EXPECT().Delete(mock.Anything, 7).Return(true, nil).Once()

		req := createJSONHTTPRequest("DELETE", "/api/v1/organizers/7/profile", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Failed - profile not found", func(t *testing.T) {
		mockService := mocks.NewMockOrganizerProfileService(t)
		router := setupOrganizerProfileTestRouter(mockService)

		mockService.EXPECT().Delete(mock.Anything, 7).Return(false, nil).Once()

		req := createJSONHTTPRequest("DELETE", "/api/v1/organizers/7/profile", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body, err := decodeJSONBody(w.Body)
		require.NoError(t, err)
		assert.Equal(t, "Organizer profile not found", body["error"])
	})
}
