//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"pickup-rsvp/internal/handler/api"
	"pickup-rsvp/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(ping pingFunc) *gin.Engine {
		h := api.NewHealthHandler(ping)
		r := gin.New()
		r.GET("/health", h.Live)
		r.GET("/health/ready", h.Ready)
		return r
	}

	t.Run("live never touches the database", func(t *testing.T) {
		r := newRouter(func(context.Context) error { t.Fatal("pinged"); return nil })

		var body map[string]string
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, r, http.MethodGet, "/health", nil, ""), http.StatusOK, &body)
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("ready with database up", func(t *testing.T) {
		r := newRouter(func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		})

		var body map[string]string
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, r, http.MethodGet, "/health/ready", nil, ""), http.StatusOK, &body)
		assert.Equal(t, "up", body["database"])
	})

	t.Run("ready with database down", func(t *testing.T) {
		r := newRouter(func(context.Context) error { return errors.New("connection refused") })

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/health/ready", nil, "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"unavailable","database":"down"}`, rec.Body.String())
	})
}
