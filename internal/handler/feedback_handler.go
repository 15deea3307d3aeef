package handler

import (
	"errors"
	"net/http"

	"community-events/internal/service"
	apperrors "community-events/pkg/app_errors"
	"community-events/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FeedbackHandler struct {
	service service.FeedbackService
}

func NewFeedbackHandler(svc service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: svc}
}

func (h *FeedbackHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/v1/events/:uuid/feedback", h.Create)
}

type CreateFeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (h *FeedbackHandler) Create(c *gin.Context) {
	handle := currentHandle(c)
	if handle == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		return
	}
	eventID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event uuid"})
		return
	}
	var req CreateFeedbackRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	feedback, err := h.service.Create(c, handle, eventID, req.Rating, req.Comment)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

func (h *FeedbackHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventNotFound:
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrValidation):
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
