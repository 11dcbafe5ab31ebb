//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"venue-booking/internal/domain/staff"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/jwt"
	"venue-booking/tests/common/authtest"
	"venue-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
	tokens *authtest.JWTHelper
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.JWTConfig{Secret: "test-secret", Duration: "1h"}
	s.tokens = authtest.NewJWTHelper(cfg)

	auth := middleware.NewAuthMiddleware(middleware.NewTokenValidator(jwt.NewService(cfg.Secret, time.Hour)))

	s.router = gin.New()
	whoami := func(c *gin.Context) {
		id, _ := middleware.GetStaffID(c)
		role, _ := middleware.GetStaffRole(c)
		c.JSON(http.StatusOK, gin.H{"staff_id": id.String(), "role": role.String()})
	}
	s.router.GET("/door", auth.RequireAuth(), auth.RequireRoleAtLeast(staff.RoleDoor), whoami)
	s.router.GET("/admin", auth.RequireAuth(), auth.RequireRoleAtLeast(staff.RoleAdmin), whoami)
	s.router.GET("/unguarded", auth.RequireRoleAtLeast(staff.RoleDoor), whoami)
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: claims reach the handler", func() {
		staffID := uuid.New()
		token := s.tokens.GenerateToken(s.T(), staffID, staff.RoleDoor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/door", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(staffID.String(), body["staff_id"])
		s.Equal("door", body["role"])
	})

	s.Run("error: missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/door", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: expired token", func() {
		token := s.tokens.CreateExpiredToken(s.T(), uuid.New(), staff.RoleAdmin)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/door", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: garbage token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/door", nil, "not.a.jwt")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRoleAtLeast() {
	testCases := []struct {
		name   string
		role   staff.Role
		path   string
		status int
	}{
		{name: "admin passes the door check", role: staff.RoleAdmin, path: "/door", status: http.StatusOK},
		{name: "admin passes the admin check", role: staff.RoleAdmin, path: "/admin", status: http.StatusOK},
		{name: "door is refused admin routes", role: staff.RoleDoor, path: "/admin", status: http.StatusForbidden},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			token := s.tokens.GenerateToken(s.T(), uuid.New(), tc.role)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.path, nil, token)
			s.Equal(tc.status, rec.Code, rec.Body.String())
		})
	}

	s.Run("error: role check without auth", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/unguarded", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}
