package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.Use(StructuredLogger(logger))
	r.Use(ErrorHandler(logger))
	return r
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	r := newTestEngine(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	r.GET("/ping", func(c *gin.Context) {
		id, _ := c.Get("request_id")
		c.String(http.StatusOK, id.(string))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestErrorHandler_HidesCause(t *testing.T) {
	var logs bytes.Buffer
	r := newTestEngine(slog.New(slog.NewJSONHandler(&logs, nil)))
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("store failure: dial tcp 10.0.0.1:27017: i/o timeout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Server error", body["message"])
	assert.Equal(t, "req-1", body["request_id"])
	assert.NotContains(t, w.Body.String(), "27017")

	assert.Contains(t, logs.String(), "i/o timeout")
	assert.Contains(t, logs.String(), `"status":500`)
}

func TestStructuredLogger_LevelFollowsStatus(t *testing.T) {
	var logs bytes.Buffer
	r := newTestEngine(slog.New(slog.NewJSONHandler(&logs, nil)))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing?x=1", nil))

	assert.Contains(t, logs.String(), `"level":"WARN"`)
	assert.Contains(t, logs.String(), `"path":"/missing?x=1"`)
}
