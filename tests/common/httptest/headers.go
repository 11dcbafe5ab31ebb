//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertEventStream checks the headers a live availability stream must carry.
func AssertEventStream(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
	assert.Equal(t, "no", w.Header().Get("X-Accel-Buffering"), "proxies must not buffer the stream")
}
