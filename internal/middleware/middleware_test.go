package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iliyamo/letter-pairs/internal/config"
	"github.com/iliyamo/letter-pairs/internal/logger"
	"github.com/iliyamo/letter-pairs/internal/utils"
)

func ok(c echo.Context) error { return c.String(http.StatusOK, "ok") }

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func adminEcho(secret string) *echo.Echo {
	e := echo.New()
	e.GET("/v1/stats", ok, JWTAuth(secret), RequireRole(utils.RoleAdmin))
	return e
}

func TestJWTAuth_MissingToken(t *testing.T) {
	rec := serve(adminEcho("k"), httptest.NewRequest(http.MethodGet, "/v1/stats", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing bearer token")
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	at, err := utils.NewAccessToken("other", "ops", utils.RoleAdmin, time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+at.Token)
	rec := serve(adminEcho("k"), req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_Expired(t *testing.T) {
	at, err := utils.NewAccessToken("k", "ops", utils.RoleAdmin, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+at.Token)
	assert.Equal(t, http.StatusUnauthorized, serve(adminEcho("k"), req).Code)
}

func TestRequireRole(t *testing.T) {
	for role, want := range map[string]int{utils.RoleAdmin: http.StatusOK, "CUSTOMER": http.StatusForbidden} {
		at, err := utils.NewAccessToken("k", "ops", role, time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+at.Token)
		assert.Equal(t, want, serve(adminEcho("k"), req).Code, role)
	}
}

func TestActorID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, "guest", actorID(c))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	e := echo.New()
	e.Use(RequestLogger(zap.New(core)))
	e.GET("/get_pairs/:mode", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "bucket not found"})
	})

	serve(e, httptest.NewRequest(http.MethodGet, "/get_pairs/start_x", nil))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zap.WarnLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, "/get_pairs/start_x", fields[logger.FieldPath])
	assert.EqualValues(t, http.StatusNotFound, fields[logger.FieldStatus])
	assert.Equal(t, "guest", fields["actor"])
}

func TestTokenBucket_PassThroughWithoutRedis(t *testing.T) {
	e := echo.New()
	cfg := config.RateLimitConfig{Enabled: true, Capacity: 1}
	e.GET("/get_pairs/:mode", ok, NewTokenBucket(cfg, nil, nil))

	for i := 0; i < 3; i++ {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/get_pairs/full", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestBuildRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/get_pairs/end_a", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.7")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/get_pairs/:mode")
	c.SetParamNames("mode")
	c.SetParamValues("end_a")

	cases := map[string]string{
		"":         "rl:ip:10.0.0.7",
		"ip":       "rl:ip:10.0.0.7",
		"route":    "rl:route:GET /get_pairs/:mode",
		"ip_route": "rl:ip:10.0.0.7:route:GET /get_pairs/:mode",
		"IP_MODE":  "rl:ip:10.0.0.7:mode:end_a",
	}
	for strategy, want := range cases {
		got := buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: strategy}, c)
		assert.Equal(t, want, got, strategy)
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 0, retryAfterSeconds(-5))
	assert.Equal(t, 1, retryAfterSeconds(1))
	assert.Equal(t, 2, retryAfterSeconds(1001))
}

func TestCacheKeyFrom(t *testing.T) {
	e := echo.New()
	mk := func(target string) echo.Context {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), httptest.NewRecorder())
		c.SetPath("/v1/stats")
		return c
	}
	cfg := config.CacheConfig{Prefix: "lp:cache", KeyStrategy: "route_query"}

	a := cacheKeyFrom(cfg, mk("/v1/stats?limit=5"))
	b := cacheKeyFrom(cfg, mk("/v1/stats?limit=6"))
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^lp:cache:[0-9a-f]{40}$`, a)

	cfg.KeyStrategy = "route"
	assert.Equal(t, cacheKeyFrom(cfg, mk("/v1/stats?limit=5")), cacheKeyFrom(cfg, mk("/v1/stats?limit=6")))
}

func TestRedisCache_PassThroughWithoutRedis(t *testing.T) {
	e := echo.New()
	e.GET("/v1/stats", ok, NewRedisCache(config.CacheConfig{Enabled: true}, nil))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/v1/stats", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestCaptureWriter_Limit(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 4}

	_, _ = cw.Write([]byte("abc"))
	_, _ = cw.Write([]byte("def"))

	assert.True(t, cw.truncated)
	assert.Equal(t, "abc", cw.buf.String())
	assert.Equal(t, "abcdef", rec.Body.String())
}
