package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitPassesThroughWithoutRedis(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/revenue", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RateLimitMiddleware(RateLimitConfig{RPS: 1}) // no Redis client
	handler := mw(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitPassesThroughWithZeroRPS(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/revenue", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RateLimitMiddleware(RateLimitConfig{RPS: 0})
	handler := mw(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
