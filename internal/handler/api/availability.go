package api

import (
	"log/slog"
	"net/http"
	"time"

	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/infra/pubsub"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// RefreshSubscriber is the subscribe side of the refresh registry.
type RefreshSubscriber interface {
	Subscribe(topic string) *pubsub.Subscription
	Unsubscribe(sub *pubsub.Subscription)
}

type AvailabilityHandler struct {
	q       queries.AvailabilityQueries
	refresh RefreshSubscriber
}

func NewAvailabilityHandler(q queries.AvailabilityQueries, refresh RefreshSubscriber) *AvailabilityHandler {
	return &AvailabilityHandler{q: q, refresh: refresh}
}

// @Summary Get availability
// @Description Per-slot capacity and pricing for one date
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param audience query string false "Audience type" Enums(public, group, school)
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	q, ok := bindAvailabilityQuery(c)
	if !ok {
		return
	}
	res, err := h.load(c, q)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load availability")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Stream availability
// @Description Server-sent events: one "availability" event on connect and after every change to the date
// @Tags availability
// @Produce text/event-stream
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param audience query string false "Audience type" Enums(public, group, school)
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/availability/stream [get]
func (h *AvailabilityHandler) Stream(c *gin.Context) {
	q, ok := bindAvailabilityQuery(c)
	if !ok {
		return
	}

	first, err := h.load(c, q)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load availability")
		return
	}

	sub := h.refresh.Subscribe(shared.AvailabilityTopic(q.date))
	defer h.refresh.Unsubscribe(sub)

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("availability", first)
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case _, open := <-sub.C():
			if !open {
				return
			}
			res, err := h.load(c, q)
			if err != nil {
				slog.Warn("availability refresh failed",
					"date", q.date.Format(time.DateOnly),
					"error", err.Error())
				continue
			}
			c.SSEvent("availability", res)
			c.Writer.Flush()
		}
	}
}

func (h *AvailabilityHandler) load(c *gin.Context, q availabilityQuery) (*resdto.AvailabilityResponse, error) {
	view, err := h.q.GetAvailability(c.Request.Context(), q.date, q.audience)
	if err != nil {
		return nil, err
	}
	return resdto.FromAvailabilityView(view)
}
