package httperr

import (
	"log/slog"
	"net/http"

	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error category to an HTTP status. Uncategorised errors are 500.
func StatusOf(err error) int {
	switch errs.CategoryOf(err) {
	case errs.ErrValidation:
		return http.StatusBadRequest
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrConflict:
		return http.StatusConflict
	case errs.ErrExternalService:
		return http.StatusBadGateway
	case errs.ErrExhausted:
		return http.StatusServiceUnavailable
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// AbortWithDomainError picks the status from the error category. Validation,
// not-found and conflict errors expose their own message; everything else is
// logged and answered with fallback.
func AbortWithDomainError(c *gin.Context, err error, fallback string) {
	status := StatusOf(err)
	msg := fallback

	switch status {
	case http.StatusBadRequest, http.StatusNotFound, http.StatusConflict:
		if m := errs.Message(err); m != "" {
			msg = m
		}
	default:
		slog.Error(fallback,
			"status", status,
			"path", c.FullPath(),
			"error", err.Error())
	}
	AbortWithError(c, status, err, msg, nil)
}
