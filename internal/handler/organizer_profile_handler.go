package handler

import (
	"errors"
	"net/http"

	"event-experience/internal/model"
	"event-experience/internal/service"
	apperrors "event-experience/pkg/app_errors"
	"event-experience/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrganizerProfileHandler struct {
	service service.OrganizerProfileService
}

func NewOrganizerProfileHandler(service service.OrganizerProfileService) *OrganizerProfileHandler {
	return &OrganizerProfileHandler{service: service}
}

func (h *OrganizerProfileHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("organizers/:id/profile", h.GetByUserID)
		router.POST("organizers/:id/profile", h.Create)
		router.PUT("organizers/:id/profile", h.Upsert)
		router.DELETE("organizers/:id/profile", h.Delete)
	}
}

type OrganizerProfileRequest struct {
	DisplayName    *string `json:"display_name"`
	ProfilePicture *string `json:"profile_picture"`
	Phone          *string `json:"phone"`
	Bio            *string `json:"bio"`
}

func (h *OrganizerProfileHandler) GetByUserID(c *gin.Context) {
	userID, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	profile, err := h.service.GetByUserID(c, userID)
	if err != nil {
		h.handleError(c, err, "GetByUserID")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *OrganizerProfileHandler) Create(c *gin.Context) {
	userID, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	var req OrganizerProfileRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	profile := &model.OrganizerProfile{
		UserID:         userID,
		DisplayName:    req.DisplayName,
		ProfilePicture: req.ProfilePicture,
		Phone:          req.Phone,
		Bio:            req.Bio,
	}
	created, err := h.service.Create(c, profile)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *OrganizerProfileHandler) Upsert(c *gin.Context) {
	userID, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	var req OrganizerProfileRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	params := model.UpdateOrganizerProfileParams{
		DisplayName:    req.DisplayName,
		ProfilePicture: req.ProfilePicture,
		Phone:          req.Phone,
		Bio:            req.Bio,
	}
	profile, err := h.service.Upsert(c, userID, params)
	if err != nil {
		h.handleError(c, err, "Upsert")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *OrganizerProfileHandler) Delete(c *gin.Context) {
	userID, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	deleted, err := h.service.Delete(c, userID)
	if err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Organizer profile not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrganizerProfileHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrOrganizerProfileNotFound):
		log.Warn("Organizer profile not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Organizer profile not found"})
	case errors.Is(err, apperrors.ErrUserNotFound):
		log.Warn("User not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, apperrors.ErrProfileAlreadyExists):
		log.Warn("Organizer profile already exists")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile already exists"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
