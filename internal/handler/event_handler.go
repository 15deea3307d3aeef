package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"community-events/internal/model"
	"community-events/internal/rights"
	"community-events/internal/service"
	apperrors "community-events/pkg/app_errors"
	"community-events/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var phonePattern = regexp.MustCompile(`^[0-9+][0-9\-\.\s()]{6,19}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
	}
}

type EventHandler struct {
	service  service.EventService
	feedback service.FeedbackService
	resolver *rights.Resolver
}

func NewEventHandler(svc service.EventService, feedback service.FeedbackService, resolver *rights.Resolver) *EventHandler {
	return &EventHandler{service: svc, feedback: feedback, resolver: resolver}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events/approved", h.ListApproved)
		router.GET("events/pending", h.ListPending)
		router.GET("events/past", h.ListPast)
		router.GET("events/mine", h.ListMine)
		router.POST("events", h.Create)
		router.GET("events/:uuid", h.GetByEventID)
		router.POST("events/:uuid/state", h.ChangeState)
	}
}

// CreateEventRequest is the submission form for a new event.
type CreateEventRequest struct {
	Name          string    `json:"name" binding:"required"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	EndTime       time.Time `json:"end_time" binding:"required"`
	Type          string    `json:"type" binding:"required"`
	EstimatedSize string    `json:"estimated_size" binding:"required"`
	ContactName   string    `json:"contact_name" binding:"required"`
	ContactPhone  string    `json:"contact_phone" binding:"required,phone"`
	Details       string    `json:"details"`
	URL           string    `json:"url"`
	Fee           string    `json:"fee"`
	Notes         string    `json:"notes"`
	Rooms         []string  `json:"rooms"`
}

// StateRequest names the requested lifecycle transition.
type StateRequest struct {
	State string `json:"state" binding:"required"`
}

// EventDetail is the detail view: the event, what the requesting user may do
// with it, and any feedback left on it.
type EventDetail struct {
	Event        *model.Event       `json:"event"`
	Capabilities model.Capabilities `json:"capabilities"`
	Feedback     []*model.Feedback  `json:"feedback"`
}

func (h *EventHandler) ListApproved(c *gin.Context) {
	events, err := h.service.ApprovedUpcoming(c)
	if err != nil {
		h.handleError(c, err, "ListApproved")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) ListPending(c *gin.Context) {
	events, err := h.service.PendingUpcoming(c)
	if err != nil {
		h.handleError(c, err, "ListPending")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) ListPast(c *gin.Context) {
	events, err := h.service.Past(c)
	if err != nil {
		h.handleError(c, err, "ListPast")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) ListMine(c *gin.Context) {
	handle := currentHandle(c)
	if handle == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		return
	}
	events, err := h.service.Mine(c, handle)
	if err != nil {
		h.handleError(c, err, "ListMine")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Create(c *gin.Context) {
	handle := currentHandle(c)
	if handle == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Echo the submitted values so the form can be re-rendered filled in.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "values": req})
		return
	}

	created, err := h.service.Create(c, handle, service.CreateEventInput{
		Name:          req.Name,
		StartTime:     naive(req.StartTime),
		EndTime:       naive(req.EndTime),
		Type:          req.Type,
		EstimatedSize: req.EstimatedSize,
		ContactName:   req.ContactName,
		ContactPhone:  req.ContactPhone,
		Details:       req.Details,
		URL:           req.URL,
		Fee:           req.Fee,
		Notes:         req.Notes,
		Rooms:         req.Rooms,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "values": req})
			return
		}
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) GetByEventID(c *gin.Context) {
	eventID, ok := h.parseUUID(c)
	if !ok {
		return
	}
	event, err := h.service.GetByEventID(c, eventID)
	if err != nil {
		h.handleError(c, err, "GetByEventID")
		return
	}
	feedback, err := h.feedback.ListByEvent(c, eventID)
	if err != nil {
		h.handleError(c, err, "GetByEventID")
		return
	}
	c.JSON(http.StatusOK, EventDetail{
		Event:        event,
		Capabilities: h.resolver.Resolve(c, currentHandle(c), event),
		Feedback:     feedback,
	})
}

// ChangeState applies a lifecycle transition when the requesting user holds
// the matching capability. A request without the capability is skipped
// silently and the unchanged event returned, matching the fail-safe-quiet
// policy of the original workflow.
func (h *EventHandler) ChangeState(c *gin.Context) {
	eventID, ok := h.parseUUID(c)
	if !ok {
		return
	}
	var req StateRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	event, err := h.service.GetByEventID(c, eventID)
	if err != nil {
		h.handleError(c, err, "ChangeState")
		return
	}

	handle := currentHandle(c)
	caps := h.resolver.Resolve(c, handle, event)

	var updated *model.Event
	switch strings.ToLower(req.State) {
	case "approve":
		if caps.CanApprove {
			updated, err = h.service.Approve(c, handle, eventID)
		}
	case "staff":
		if caps.CanStaff {
			updated, err = h.service.AddStaff(c, handle, eventID)
		}
	case "unstaff":
		if caps.CanUnstaff {
			updated, err = h.service.RemoveStaff(c, handle, eventID)
		}
	case "cancel":
		if caps.CanCancel {
			updated, err = h.service.Cancel(c, handle, eventID)
		}
	case "expire":
		if caps.IsAdmin {
			updated, err = h.service.Expire(c, handle, eventID)
		}
	case "delete":
		if caps.IsAdmin {
			updated, err = h.service.Delete(c, handle, eventID)
		}
	case "undelete":
		if caps.IsAdmin {
			updated, err = h.service.Undelete(c, handle, eventID)
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown state action"})
		return
	}
	if err != nil {
		h.handleError(c, err, "ChangeState")
		return
	}
	if updated == nil {
		// Capability check failed: no-op, return the event unchanged.
		updated = event
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) parseUUID(c *gin.Context) (uuid.UUID, bool) {
	eventID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event uuid"})
		return uuid.Nil, false
	}
	return eventID, true
}

// naive strips the zone from an incoming timestamp, keeping the wall-clock
// fields; event times are local by convention.
func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
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
