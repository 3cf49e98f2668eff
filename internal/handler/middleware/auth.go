package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"pickup-rsvp/internal/domain/operator"
	"pickup-rsvp/internal/handler/httperr"
	"pickup-rsvp/internal/pkg/errs"
	"pickup-rsvp/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokens usecase.OperatorTokens
}

const (
	ctxOperatorIDKey   = "operator_id"
	ctxOperatorRoleKey = "operator_role"
)

var errUnauthorized = errs.New("unauthorized")

func NewAuthMiddleware(tokens usecase.OperatorTokens) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth accepts a bearer token issued by the admin login.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Access token required")
			return
		}

		who, err := m.tokens.Authenticate(token)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "operator token rejected", "route", c.FullPath(), "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}

		c.Set(ctxOperatorIDKey, who.OperatorID)
		c.Set(ctxOperatorRoleKey, who.Role)
		c.Next()
	}
}

// RequireGameManager must run after RequireAuth.
func (m *AuthMiddleware) RequireGameManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetOperatorRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errUnauthorized, "Internal server error")
			return
		}
		if !role.CanManageGames() {
			httperr.AbortWithError(c, http.StatusForbidden, errUnauthorized, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func GetOperatorID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxOperatorIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetOperatorRole(c *gin.Context) (operator.Role, bool) {
	v, exists := c.Get(ctxOperatorRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(operator.Role)
	return role, ok
}
