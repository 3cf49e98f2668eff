//go:build unit || e2e

// Package authtest gets operator bearer tokens for admin endpoint tests.
package authtest

import (
	"net/http"
	"testing"

	"pickup-rsvp/internal/domain/operator"
	"pickup-rsvp/internal/handler/dto/request"
	"pickup-rsvp/internal/handler/dto/response"
	"pickup-rsvp/tests/common/dbtest"
	"pickup-rsvp/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const loginPath = "/api/v1/admin/login"

// Login goes through the real login endpoint and returns the access token.
func Login(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	rec := httptest.PerformRequest(t, router, http.MethodPost, loginPath,
		request.LoginRequest{Email: email, Password: password}, "")
	var body response.LoginResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
	require.NotEmpty(t, body.AccessToken, "login returned no token: %s", rec.Body.String())
	return body.AccessToken
}

// SeedAndLogin makes sure an active operator with role exists, then logs in
// as them.
func SeedAndLogin(t *testing.T, db dbtest.Conn, router *gin.Engine, email string, role operator.Role) string {
	t.Helper()
	dbtest.CreateTestOperator(t, db, email, role.String())
	return Login(t, router, email, dbtest.TestPassword)
}
