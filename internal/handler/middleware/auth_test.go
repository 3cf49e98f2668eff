//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"pickup-rsvp/internal/domain/operator"
	"pickup-rsvp/internal/handler/middleware"
	"pickup-rsvp/internal/pkg/config"
	"pickup-rsvp/internal/pkg/jwt"
	"pickup-rsvp/internal/usecase"
	"pickup-rsvp/tests/common/authtest"
	"pickup-rsvp/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
	tokens *authtest.Tokens
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.JWTConfig{Secret: "middleware-test-secret", TTL: time.Hour}
	s.tokens = authtest.NewTokens(cfg)
	auth := middleware.NewAuthMiddleware(usecase.NewOperatorTokens(jwt.NewService(cfg.Secret, cfg.TTL)))

	whoami := func(c *gin.Context) {
		id, _ := middleware.GetOperatorID(c)
		role, _ := middleware.GetOperatorRole(c)
		c.JSON(http.StatusOK, gin.H{"operator_id": id.String(), "role": role.String()})
	}
	s.router.GET("/protected", auth.RequireAuth(), whoami)
	s.router.GET("/managed", auth.RequireAuth(), auth.RequireGameManager(), whoami)
	s.router.GET("/misconfigured", auth.RequireGameManager(), whoami)
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	operatorID := uuid.New()

	s.Run("success: claims are placed on the context", func() {
		token := s.tokens.For(s.T(), operatorID, operator.RoleStaff)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(operatorID.String(), body["operator_id"])
		s.Equal("staff", body["role"])
	})

	s.Run("error: missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: non bearer scheme", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodGet, "/protected", nil,
			map[string]string{"Authorization": "Basic b3BzOnNlY3JldA=="})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: malformed token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, "not-a-jwt")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: expired token", func() {
		token := s.tokens.Expired(s.T(), operatorID, operator.RoleAdmin)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: token signed with another secret", func() {
		other := authtest.NewTokens(config.JWTConfig{Secret: "someone-else", TTL: time.Hour})
		token := other.For(s.T(), operatorID, operator.RoleAdmin)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireGameManager() {
	operatorID := uuid.New()

	s.Run("success: admin", func() {
		token := s.tokens.For(s.T(), operatorID, operator.RoleAdmin)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/managed", nil, token)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: staff cannot manage games", func() {
		token := s.tokens.For(s.T(), operatorID, operator.RoleStaff)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/managed", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: used without RequireAuth", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/misconfigured", nil, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
