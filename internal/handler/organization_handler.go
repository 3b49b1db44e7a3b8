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

type OrganizationHandler struct {
	service service.OrganizationService
}

func NewOrganizationHandler(service service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

func (h *OrganizationHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("organizations", h.List)
		router.GET("organizations/:id", h.GetByID)
		router.POST("organizations", h.Create)
		router.PUT("organizations/:id", h.Update)
		router.DELETE("organizations/:id", h.Delete)

		router.GET("organizations/:id/members", h.ListMembers)
		router.POST("organization-members", h.AddMember)
		router.GET("organization-members/:orgId/:userId", h.GetMember)
		router.DELETE("organization-members/:orgId/:userId", h.RemoveMember)
	}
}

type CreateOrganizationRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type UpdateOrganizationRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type AddMemberRequest struct {
	OrganizationID int `json:"organization_id" binding:"required"`
	UserID         int `json:"user_id" binding:"required"`
}

func (h *OrganizationHandler) List(c *gin.Context) {
	orgs, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, orgs)
}

func (h *OrganizationHandler) GetByID(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	org, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, org)
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	var req CreateOrganizationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	org := &model.Organization{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
	created, err := h.service.Create(c, org)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	var req UpdateOrganizationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	params := model.UpdateOrganizationParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
	updated, err := h.service.Update(c, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *OrganizationHandler) Delete(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	deleted, err := h.service.Delete(c, id)
	if err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrganizationHandler) ListMembers(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	members, err := h.service.ListMembers(c, id)
	if err != nil {
		h.handleError(c, err, "ListMembers")
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *OrganizationHandler) AddMember(c *gin.Context) {
	var req AddMemberRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	member, err := h.service.AddMember(c, req.OrganizationID, req.UserID)
	if err != nil {
		h.handleError(c, err, "AddMember")
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *OrganizationHandler) GetMember(c *gin.Context) {
	orgID, ok := ParamInt(c, "orgId")
	if !ok {
		return
	}
	userID, ok := ParamInt(c, "userId")
	if !ok {
		return
	}
	member, err := h.service.GetMember(c, orgID, userID)
	if err != nil {
		h.handleError(c, err, "GetMember")
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *OrganizationHandler) RemoveMember(c *gin.Context) {
	orgID, ok := ParamInt(c, "orgId")
	if !ok {
		return
	}
	userID, ok := ParamInt(c, "userId")
	if !ok {
		return
	}
	removed, err := h.service.RemoveMember(c, orgID, userID)
	if err != nil {
		h.handleError(c, err, "RemoveMember")
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Organization member not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrganizationHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrOrganizationNotFound):
		log.Warn("Organization not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
	case errors.Is(err, apperrors.ErrMembershipNotFound):
		log.Warn("Organization member not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Organization member not found"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
