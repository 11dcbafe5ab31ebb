//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"venue-booking/internal/domain/schedule"
	"venue-booking/internal/handler/api"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/infra/pubsub"
	"venue-booking/internal/pkg/timeofday"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/httptest"
	queriesmock "venue-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func openDayView() *queries.AvailabilityView {
	open, closeAt := timeofday.MustNew(10, 0), timeofday.MustNew(14, 0)
	return &queries.AvailabilityView{
		Date:         "2030-06-03",
		AudienceType: "public",
		OpenTime:     &open,
		CloseTime:    &closeAt,
		Currency:     "eur",
		Slots: []queries.SlotView{
			{StartTime: open, EndTime: timeofday.MustNew(12, 0), Capacity: 10, Booked: 4, Available: 6, OccupancyPercentage: 40, Price: 1000},
			{StartTime: timeofday.MustNew(12, 0), EndTime: closeAt, Capacity: 10, Available: 10, Price: 1000},
		},
		TotalCapacity:  20,
		TotalBooked:    4,
		TotalAvailable: 16,
	}
}

func newAvailabilityRouter(t *testing.T, registry *pubsub.Registry) (*gin.Engine, *queriesmock.MockAvailabilityQueries) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	q := queriesmock.NewMockAvailabilityQueries(gomock.NewController(t))
	h := api.NewAvailabilityHandler(q, registry)

	r := gin.New()
	r.GET("/availability", h.Get)
	r.GET("/availability/stream", h.Stream)
	return r, q
}

func TestAvailabilityHandler_Get(t *testing.T) {
	date := time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)

	t.Run("defaults to the public audience", func(t *testing.T) {
		r, q := newAvailabilityRouter(t, pubsub.NewRegistry(nil))
		q.EXPECT().GetAvailability(gomock.Any(), date, schedule.AudiencePublic).Return(openDayView(), nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/availability?date=2030-06-03", nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		require.Len(t, body.Slots, 2)
		assert.Equal(t, "10:00", body.Slots[0].StartTime)
		assert.Equal(t, 6, body.Slots[0].Available)
		require.NotNil(t, body.CloseTime)
		assert.Equal(t, "14:00", *body.CloseTime)
	})

	t.Run("group audience", func(t *testing.T) {
		r, q := newAvailabilityRouter(t, pubsub.NewRegistry(nil))
		q.EXPECT().GetAvailability(gomock.Any(), date, schedule.AudienceGroup).
			Return(&queries.AvailabilityView{Date: "2030-06-03", AudienceType: "group", IsClosed: true}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/availability?date=2030-06-03&audience=group", nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.True(t, body.IsClosed)
		assert.Empty(t, body.Slots)
	})

	for name, path := range map[string]string{
		"missing date":     "/availability",
		"malformed date":   "/availability?date=tomorrow",
		"unknown audience": "/availability?date=2030-06-03&audience=vip",
	} {
		t.Run(name, func(t *testing.T) {
			r, _ := newAvailabilityRouter(t, pubsub.NewRegistry(nil))
			rec := httptest.PerformRequest(t, r, http.MethodGet, path, nil, "")
			httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "")
		})
	}
}

func TestAvailabilityHandler_Stream(t *testing.T) {
	t.Run("sends a snapshot and ends when the registry closes", func(t *testing.T) {
		registry := pubsub.NewRegistry(nil)
		registry.Close()

		r, q := newAvailabilityRouter(t, registry)
		q.EXPECT().GetAvailability(gomock.Any(), gomock.Any(), schedule.AudiencePublic).Return(openDayView(), nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/availability/stream?date=2030-06-03", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		httptest.AssertEventStream(t, rec)
		body := rec.Body.String()
		assert.True(t, strings.HasPrefix(body, "event:availability\n"), body)
		assert.Contains(t, body, `"total_available":16`)
		assert.Equal(t, 0, registry.Subscribers("availability:2030-06-03"))
	})

	t.Run("query failure before streaming is a normal error response", func(t *testing.T) {
		r, q := newAvailabilityRouter(t, pubsub.NewRegistry(nil))
		q.EXPECT().GetAvailability(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, schedule.ErrInvalidAudience)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/availability/stream?date=2030-06-03", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "invalid audience type")
	})
}
