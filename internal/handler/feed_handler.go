package handler

import (
	"net/http"
	"time"

	"community-events/internal/calendar"
	"community-events/internal/service"
	"community-events/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FeedHandler serves the iCalendar feed of approved and canceled events.
type FeedHandler struct {
	service service.EventService
	loc     *time.Location
}

func NewFeedHandler(svc service.EventService, loc *time.Location) *FeedHandler {
	return &FeedHandler{service: svc, loc: loc}
}

func (h *FeedHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/events.ics", h.Feed)
}

func (h *FeedHandler) Feed(c *gin.Context) {
	events, err := h.service.CalendarEvents(c)
	if err != nil {
		logger.WithComponent("handler").Error("calendar feed failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Data(http.StatusOK, "text/calendar", []byte(calendar.Feed(events, h.loc)))
}
