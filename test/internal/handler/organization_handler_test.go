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
)

func setupOrganizationTestRouter(mockService *mocks.MockOrganizationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewOrganizationHandler(mockService).RegisterRoutes(router)
	return router
}

func TestAddOrganizationMember(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockOrganizationService(t)
		router := setupOrganizationTestRouter(mockService)

		mockService.EXPECT().AddMember(mock.Anything, 5, 7).Return(&model.OrganizationMember{
			OrganizationID: 5,
			UserID:         7,
		}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/organization-members", gin.H{
			"organization_id": 5,
			"user_id":         7,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - organization not found", func(t *testing.T) {
		mockService := mocks.NewMockOrganizationService(t)
		router := setupOrganizationTestRouter(mockService)

		mockService.EXPECT().AddMember(mock.Anything, 5, 7).
			Return(nil, apperrors.ErrOrganizationNotFound).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/organization-members", gin.H{
			"organization_id": 5,
			"user_id":         7,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - missing required fields", func(t *testing.T) {
		mockService := mocks.NewMockOrganizationService(t)
		router := setupOrganizationTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/organization-members", gin.H{"organization_id": 5})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "AddMember")
	})
}

func TestRemoveOrganizationMember(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockOrganizationService(t)
		router := setupOrganizationTestRouter(mockService)

		mockService.EXPECT().RemoveMember(mock.Anything, 5, 7).Return(true, nil).Once()

		req := createJSONHTTPRequest("DELETE", "/api/v1/organization-members/5/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Failed - membership not found", func(t *testing.T) {
		mockService := mocks.NewMockOrganizationService(t)
		router := setupOrganizationTestRouter(mockService)

		mockService.EXPECT().RemoveMember(mock.Anything, 5, 7).Return(false, nil).Once()

		req := createJSONHTTPRequest("DELETE", "/api/v1/organization-members/5/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListOrganizationMembers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockOrganizationService(t)
		router := setupOrganizationTestRouter(mockService)

		mockService.EXPECT().ListMembers(mock.Anything, 5).Return([]*model.OrganizationMember{
			{OrganizationID: 5, UserID: 7},
			{OrganizationID: 5, UserID: 8},
		}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/organizations/5/members", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
