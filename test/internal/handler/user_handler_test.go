package handler

import (
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

func setupUserTestRouter(mockService *mocks.MockUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewUserHandler(mockService).RegisterRoutes(router)
	return router
}

func TestCreateUser(t *testing.T) {
	t.Run("Success - password never serialized", func(t *testing.T) {
		mockService := mocks.NewMockUserService(t)
		router := setupUserTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, mock.Anything).Return(&model.User{
			ID:       1,
			Username: "alice",
			Password: "secret",
			Email:    "alice@example.com",
		}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/users", gin.H{
			"username": "alice",
			"password": "secret",
			"email":    "alice@example.com",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		body, err := decodeJSONBody(w.Body)
		require.NoError(t, err)
		assert.Equal(t, "alice", body["username"])
		assert.NotContains(t, body, "password")
	})

	t.Run("Failed - user already exists", func(t *testing.T) {
		mockService := mocks.NewMockUserService(t)
		router := setupUserTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrUserAlreadyExists).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/users", gin.H{
			"username": "alice",
			"password": "secret",
			"email":    "alice@example.com",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		body, err := decodeJSONBody(w.Body)
		require.NoError(t, err)
		assert.Equal(t, "User already exists", body["error"])
	})

	t.Run("Failed - missing required fields", func(t *testing.T) {
		mockService := mocks.NewMockUserService(t)
		router := setupUserTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/users", gin.H{"username": "alice"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})
}

func TestGetUser(t *testing.T) {
	t.Run("Failed - not found", func(t *testing.T) {
		mockService := mocks.NewMockUserService(t)
		router := setupUserTestRouter(mockService)

		mockService.EXPECT().GetByID(mock.Anything, 99).Return(nil, apperrors.ErrUserNotFound).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/users/99", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockUserService(t)
		router := setupUserTestRouter(mockService)

		mockService.EXPECT().Delete(mock.Anything, 7).Return(true, nil).Once()

		req := createJSONHTTPRequest("DELETE", "/api/v1/users/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		mockService := mocks.NewMockUserService(t)
		router := setupUserTestRouter(mockService)

		mockService.EXPECT().Delete(mock.Anything, 7).Return(false, nil).Once()

		req := createJSONHTTPRequest("DELETE", "/api/v1/users/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
