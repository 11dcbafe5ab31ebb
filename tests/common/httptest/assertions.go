//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"venue-booking/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and decodes a 2xx body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return
	}
	if target == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "response: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error envelope message
// contains expectedMsg. An empty expectedMsg only checks the envelope shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) httperr.Response {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String())

	var res httperr.Response
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), "response: %s", w.Body.String()) {
		return res
	}
	assert.NotEmpty(t, res.Error.Message, "error envelope without a message")
	if expectedMsg != "" {
		assert.Contains(t, res.Error.Message, expectedMsg)
	}
	return res
}
