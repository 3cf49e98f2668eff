//go:build unit || e2e

// Package httptest drives a gin router in-process and checks the JSON bodies
// the handlers write.
package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pickup-rsvp/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// PerformRequest sends body as JSON, nil meaning no body, with an optional
// bearer token.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err, "encode request body")
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return serve(router, req)
}

// PerformRawRequest sends body untouched, for endpoints that verify the exact
// bytes such as the payment webhook.
func PerformRawRequest(t *testing.T, router *gin.Engine, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return serve(router, req)
}

// AssertSuccessResponse checks the status and, for 2xx with a non-nil target,
// decodes the body into it.
func AssertSuccessResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, target any) {
	t.Helper()

	if !assert.Equal(t, status, rec.Code, "body: %s", rec.Body.String()) {
		return
	}
	if target != nil && status >= 200 && status < 300 {
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), target), "decode body: %s", rec.Body.String())
	}
}

// AssertErrorResponse checks the status and that the error message contains msg.
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, msg string) httperr.Response {
	t.Helper()

	assert.Equal(t, status, rec.Code, "body: %s", rec.Body.String())

	var body httperr.Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "decode error body: %s", rec.Body.String())
	if msg != "" {
		assert.Contains(t, body.Error.Message, msg)
	}
	return body
}
