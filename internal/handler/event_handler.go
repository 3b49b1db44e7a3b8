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

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events", h.List)
		router.GET("events/:id", h.GetByID)
		router.POST("events", h.Create)
		router.PUT("events/:id", h.Update)
		router.DELETE("events/:id", h.Delete)
		router.GET("events/:id/attendance", h.Attendance)
		router.GET("events/:id/participants", h.Participants)
		router.GET("organizers/:id/events", h.ListByOrganizer)
	}
}

// Date fields arrive as ISO-8601 text; malformed values are dropped during
// normalization, not rejected.
type CreateEventRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Category    *string  `json:"category"`
	Capacity    *int     `json:"capacity"`
	Price       *float64 `json:"price"`
	Link        *string  `json:"link"`
	OrganizerID *int     `json:"organizer_id"`
	Seating     *string  `json:"seating"`
	Status      string   `json:"status"`
	Rating      *float64 `json:"rating"`
	Location    *string  `json:"location"`
}

type UpdateEventRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Category    *string  `json:"category"`
	Capacity    *int     `json:"capacity"`
	Price       *float64 `json:"price"`
	Link        *string  `json:"link"`
	Seating     *string  `json:"seating"`
	Status      *string  `json:"status"`
	Rating      *float64 `json:"rating"`
	Location    *string  `json:"location"`
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	event, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) ListByOrganizer(c *gin.Context) {
	organizerID, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	events, err := h.service.ListByOrganizerID(c, organizerID)
	if err != nil {
		h.handleError(c, err, "ListByOrganizer")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Link:        req.Link,
		OrganizerID: req.OrganizerID,
		Seating:     req.Seating,
		Status:      req.Status,
		Rating:      req.Rating,
		Location:    req.Location,
	}
	if req.StartDate != nil {
		event.StartDate = service.ParseEventDate(*req.StartDate)
	}
	if req.EndDate != nil {
		event.EndDate = service.ParseEventDate(*req.EndDate)
	}

	created, err := h.service.Create(c, event)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	params := model.UpdateEventParams{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Link:        req.Link,
		Seating:     req.Seating,
		Status:      req.Status,
		Rating:      req.Rating,
		Location:    req.Location,
	}
	if req.StartDate != nil {
		params.StartDate = service.ParseEventDate(*req.StartDate)
	}
	if req.EndDate != nil {
		params.EndDate = service.ParseEventDate(*req.EndDate)
	}

	updated, err := h.service.Update(c, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) Delete(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EventHandler) Attendance(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	attendance, err := h.service.Attendance(c, id)
	if err != nil {
		h.handleError(c, err, "Attendance")
		return
	}
	c.JSON(http.StatusOK, attendance)
}

func (h *EventHandler) Participants(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	participants, err := h.service.Participants(c, id)
	if err != nil {
		h.handleError(c, err, "Participants")
		return
	}
	c.JSON(http.StatusOK, participants)
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
