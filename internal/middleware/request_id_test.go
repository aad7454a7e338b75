package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-website-builder/internal/middleware"
)

func requestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	return router
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantReused bool
	}{
		{name: "generates id when header missing", header: "", wantReused: false},
		{name: "reuses client id", header: "client-provided-id-12345", wantReused: true},
		{name: "replaces id with spaces", header: "bad id", wantReused: false},
		{name: "replaces oversized id", header: strings.Repeat("a", 129), wantReused: false},
		{name: "accepts id at length limit", header: strings.Repeat("b", 128), wantReused: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := requestIDRouter()

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			got := w.Header().Get(middleware.RequestIDHeader)
			assert.Equal(t, got, w.Body.String(), "context and header must carry the same id")

			if tt.wantReused {
				assert.Equal(t, tt.header, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestRequestID_MultipleRequests_DifferentIDs(t *testing.T) {
	router := requestIDRouter()
	seen := make(map[string]bool)

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		id := w.Header().Get(middleware.RequestIDHeader)
		assert.False(t, seen[id], "request IDs should be unique")
		seen[id] = true
	}
}

func TestGetRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty when not set", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Empty(t, middleware.GetRequestID(c))
	})

	t.Run("returns stored id", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(middleware.RequestIDKey, "abc-123")
		assert.Equal(t, "abc-123", middleware.GetRequestID(c))
	})

	t.Run("empty when stored value has wrong type", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(middleware.RequestIDKey, 12345)
		assert.Empty(t, middleware.GetRequestID(c))
	})
}
