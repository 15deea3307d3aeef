package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"community-events/internal/handler"
	"community-events/internal/model"
	serviceMocks "community-events/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeedHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	t.Run("serves approved and canceled events as a calendar", func(t *testing.T) {
		svc := serviceMocks.NewEventServiceMock()
		router := gin.New()
		handler.NewFeedHandler(svc, loc).RegisterRoutes(router)

		canceled := sampleEvent(model.StatusCanceled)
		svc.On("CalendarEvents", mock.Anything).
			Return([]*model.Event{sampleEvent(model.StatusApproved), canceled}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/events.ics", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/calendar")
		body := w.Body.String()
		assert.Contains(t, body, "BEGIN:VCALENDAR")
		assert.Contains(t, body, "Open House (CANCELED)")
	})

	t.Run("service failure maps to 500", func(t *testing.T) {
		svc := serviceMocks.NewEventServiceMock()
		router := gin.New()
		handler.NewFeedHandler(svc, loc).RegisterRoutes(router)

		svc.On("CalendarEvents", mock.Anything).Return(nil, assert.AnError).Once()

		req := httptest.NewRequest(http.MethodGet, "/events.ics", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
