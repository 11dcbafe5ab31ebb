//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/errs"
	"venue-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter(h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/x", h)
	return r
}

func TestErrorHandler(t *testing.T) {
	t.Run("aborted handler keeps its own body", func(t *testing.T) {
		r := newErrorRouter(func(c *gin.Context) {
			httperr.AbortWithDomainError(c, ticket.ErrSlotFull, "Booking failed")
		})
		w := httptest.PerformRequest(t, r, http.MethodGet, "/x", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "slot")
	})

	t.Run("private error is mapped by category", func(t *testing.T) {
		r := newErrorRouter(func(c *gin.Context) {
			_ = c.Error(errs.Wrap(ticket.ErrNotFound, "lookup"))
		})
		w := httptest.PerformRequest(t, r, http.MethodGet, "/x", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Not Found")
	})

	t.Run("uncategorised error is a 500", func(t *testing.T) {
		r := newErrorRouter(func(c *gin.Context) {
			_ = c.Error(errs.New("boom"))
		})
		w := httptest.PerformRequest(t, r, http.MethodGet, "/x", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("no error leaves the response alone", func(t *testing.T) {
		r := newErrorRouter(func(c *gin.Context) { c.Status(http.StatusNoContent) })
		w := httptest.PerformRequest(t, r, http.MethodGet, "/x", nil, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestCustomRecovery(t *testing.T) {
	r := newErrorRouter(func(*gin.Context) { panic("unexpected") })
	w := httptest.PerformRequest(t, r, http.MethodGet, "/x", nil, "")
	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
}
