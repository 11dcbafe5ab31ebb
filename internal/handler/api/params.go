package api

import (
	"net/http"
	"time"

	"venue-booking/internal/domain/schedule"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type availabilityQuery struct {
	date     time.Time
	audience schedule.Audience
}

func bindAvailabilityQuery(c *gin.Context) (availabilityQuery, bool) {
	var req reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return availabilityQuery{}, false
	}
	date, err := reqdto.ParseDate(req.Date)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Invalid date")
		return availabilityQuery{}, false
	}
	audience, err := schedule.ParseAudience(req.AudienceType)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Invalid audience")
		return availabilityQuery{}, false
	}
	return availabilityQuery{date: date, audience: audience}, true
}

func bindIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// respond writes body unless building it failed.
func respond[T any](c *gin.Context, status int, body T, err error) {
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(status, body)
}
