package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dogtorvet/dogtorvet-api/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("test")
}

func TestCorrelationID_GeneratesWhenMissing(t *testing.T) {
	router := gin.New()
	router.Use(CorrelationID())

	var seen string
	router.GET("/test", func(c *gin.Context) {
		seen = GetCorrelationID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(CorrelationIDHeader))
}

func TestCorrelationID_PreservesClientProvided(t *testing.T) {
	router := gin.New()
	router.Use(CorrelationID())

	var fromCtx string
	router.GET("/test", func(c *gin.Context) {
		fromCtx = CorrelationIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(CorrelationIDHeader, "client-supplied-id")
	router.ServeHTTP(w, req)

	assert.Equal(t, "client-supplied-id", fromCtx)
	assert.Equal(t, "client-supplied-id", w.Header().Get(CorrelationIDHeader))
}
