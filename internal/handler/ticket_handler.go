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

type TicketHandler struct {
	service service.TicketService
}

func NewTicketHandler(service service.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("tickets", h.List)
		router.GET("tickets/:id", h.GetByID)
		router.GET("tickets/:id/qr", h.GetQRCode)
		router.POST("tickets", h.Create)
		router.PUT("tickets/:id", h.Update)
		router.DELETE("tickets/:id", h.Delete)
		router.POST("tickets/validate", h.Validate)
		router.GET("events/:id/tickets", h.ListByEvent)
		router.GET("students/:id/tickets-with-details", h.TicketsWithDetails)
	}
}

type CreateTicketRequest struct {
	AttendeeID int    `json:"attendee_id" binding:"required"`
	EventID    int    `json:"event_id" binding:"required"`
	QRCode     string `json:"qr_code"`
	Status     string `json:"status"`
}

type UpdateTicketRequest struct {
	AttendeeID *int    `json:"attendee_id"`
	EventID    *int    `json:"event_id"`
	QRCode     *string `json:"qr_code"`
	Status     *string `json:"status"`
}

type ValidateTicketRequest struct {
	TicketID int `json:"ticketId"`
}

func (h *TicketHandler) List(c *gin.Context) {
	tickets, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) GetByID(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	ticket, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) GetQRCode(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	ticket, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetQRCode")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket_id": ticket.ID, "qr_code": ticket.QRCode})
}

func (h *TicketHandler) ListByEvent(c *gin.Context) {
	eventID, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	tickets, err := h.service.ListByEventID(c, eventID)
	if err != nil {
		h.handleError(c, err, "ListByEvent")
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	ticket := &model.Ticket{
		AttendeeID: req.AttendeeID,
		EventID:    req.EventID,
		QRCode:     req.QRCode,
		Status:     model.TicketStatus(req.Status),
	}
	created, err := h.service.Create(c, ticket)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TicketHandler) Update(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	var req UpdateTicketRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	params := model.UpdateTicketParams{
		AttendeeID: req.AttendeeID,
		EventID:    req.EventID,
		QRCode:     req.QRCode,
	}
	if req.Status != nil {
		status := model.TicketStatus(*req.Status)
		params.Status = &status
	}
	updated, err := h.service.Update(c, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *TicketHandler) Delete(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TicketHandler) Validate(c *gin.Context) {
	var req ValidateTicketRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.TicketID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": "Missing ticketId"})
		return
	}

	result, err := h.service.ValidateTicket(c, req.TicketID)
	if err != nil {
		h.handleValidateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":        true,
		"message":      "Ticket Checked In Successfully!",
		"attendeeName": result.AttendeeName,
		"ticket":       result.Ticket,
	})
}

func (h *TicketHandler) TicketsWithDetails(c *gin.Context) {
	attendeeID, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	details, err := h.service.TicketsWithEventDetails(c, attendeeID)
	if err != nil {
		h.handleError(c, err, "TicketsWithDetails")
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *TicketHandler) handleValidateError(c *gin.Context, err error) {
	log := logger.WithComponent("handler").With(zap.String("operation", "Validate"), zap.Error(err))

	var statusErr *apperrors.InvalidTicketStatusError
	switch {
	case errors.Is(err, apperrors.ErrTicketNotFound):
		log.Warn("Ticket not found")
		c.JSON(http.StatusNotFound, gin.H{"valid": false, "error": "Ticket not found"})
	case errors.Is(err, apperrors.ErrTicketAlreadyCheckedIn):
		log.Warn("Ticket already checked in")
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": "Ticket already checked in"})
	case errors.As(err, &statusErr):
		log.Warn("Invalid ticket status")
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": "Invalid ticket status: " + statusErr.Status})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"valid": false, "error": "Internal server error"})
	}
}

func (h *TicketHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrTicketNotFound):
		log.Warn("Ticket not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
