package middleware

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"venue-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	ctxRequestIDKey = "request_id"
)

// probes and scrapes are logged at debug only
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

type Logger struct {
	logger   *slog.Logger
	cfg      config.LogConfig
	timezone *time.Location
}

// NewLogger builds the process logger and installs it as slog's default.
func NewLogger(cfg config.LogConfig) *Logger {
	l := newLoggerTo(os.Stdout, cfg, gin.Mode() == gin.ReleaseMode)
	slog.SetDefault(l.logger)
	return l
}

func newLoggerTo(w io.Writer, cfg config.LogConfig, asJSON bool) *Logger {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if asJSON {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &Logger{
		logger:   slog.New(handler),
		cfg:      cfg,
		timezone: timezone,
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// LoggingMiddleware tags each request with an id (reusing the proxy's when
// present), echoes it back, and logs one line per request. Availability
// streams log when they close.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 64 {
			requestID = uuid.NewString()
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		path := c.Request.URL.Path
		statusCode := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("client_ip", c.ClientIP()),
			slog.Int("status_code", statusCode),
			slog.Duration("duration", time.Since(startTime)),
		}
		if route := c.FullPath(); route != "" && route != path {
			attrs = append(attrs, slog.String("route", route))
		}
		if staffID, role := extractStaffContext(c); staffID != "" {
			attrs = append(attrs,
				slog.String("staff_id", staffID),
				slog.String("staff_role", role),
			)
		}
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		level := slog.LevelInfo
		switch {
		case statusCode >= 500:
			level = slog.LevelError
		case statusCode >= 400:
			level = slog.LevelWarn
		default:
			if _, quiet := quietPaths[path]; quiet {
				level = slog.LevelDebug
			}
		}

		msg := "Request completed"
		if strings.HasPrefix(c.Writer.Header().Get("Content-Type"), "text/event-stream") {
			msg = "Stream closed"
		}
		l.logger.LogAttrs(c.Request.Context(), level, msg, attrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

func extractStaffContext(c *gin.Context) (staffID, role string) {
	if id, ok := GetStaffID(c); ok {
		staffID = id.String()
	}
	if r, ok := GetStaffRole(c); ok {
		role = r.String()
	}
	return staffID, role
}
