package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/studentdeals/internal/pkg/database"
	"github.com/piresc/studentdeals/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	forgotPasswordPath = "/auth/password/forgot"
	studentOTPPath     = "/auth/student/otp/send"
)

func setupRateLimited(t *testing.T, limit int, trustedProxies ...string) (*echo.Echo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	extractor, err := IPExtractor(trustedProxies)
	require.NoError(t, err)

	e := echo.New()
	e.IPExtractor = extractor
	limiter := OTPRateLimiter(&database.RedisClient{Client: client}, limit, time.Minute)
	accepted := func(c echo.Context) error { return c.NoContent(http.StatusAccepted) }
	e.POST(forgotPasswordPath, accepted, limiter)
	e.POST(studentOTPPath, accepted, limiter)
	return e, mr
}

func send(e *echo.Echo, path, remoteIP string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = remoteIP + ":40312"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func postFrom(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	return send(e, studentOTPPath, ip, nil)
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	e, _ := setupRateLimited(t, 2)

	rec := postFrom(e, "10.0.0.1")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))

	rec = postFrom(e, "10.0.0.1")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = postFrom(e, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	// other callers have their own window
	rec = postFrom(e, "10.0.0.2")
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestRateLimiter_WindowResets(t *testing.T) {
	e, mr := setupRateLimited(t, 1)

	require.Equal(t, http.StatusAccepted, postFrom(e, "10.0.0.1").Code)
	require.Equal(t, http.StatusTooManyRequests, postFrom(e, "10.0.0.1").Code)

	mr.FastForward(time.Minute + time.Second)

	assert.Equal(t, http.StatusAccepted, postFrom(e, "10.0.0.1").Code)
}

func TestRateLimiter_KeysByUserWhenAuthenticated(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/phone/otp/send", nil), httptest.NewRecorder())
	c.SetPath("/auth/phone/otp/send")
	c.Set(IdentityContextKey, &models.Identity{UserID: "user-42"})

	h := OTPRateLimiter(&database.RedisClient{Client: client}, 5, time.Minute)(func(c echo.Context) error {
		return c.NoContent(http.StatusAccepted)
	})

	require.NoError(t, h(c))
	assert.True(t, mr.Exists("rate:limit:otp:/auth/phone/otp/send:user-42"))
}

func TestRateLimiter_FailsOpenWhenRedisDown(t *testing.T) {
	e, mr := setupRateLimited(t, 1)
	mr.Close()

	assert.Equal(t, http.StatusAccepted, postFrom(e, "10.0.0.1").Code)
	assert.Equal(t, http.StatusAccepted, postFrom(e, "10.0.0.1").Code)
}

func TestRateLimiter_IgnoresForwardingHeadersFromClients(t *testing.T) {
	e, _ := setupRateLimited(t, 2)

	blocked := 0
	for i := 0; i < 20; i++ {
		spoofed := fmt.Sprintf("198.51.100.%d", i+1)
		rec := send(e, forgotPasswordPath, "203.0.113.7", map[string]string{
			echo.HeaderXForwardedFor: spoofed,
			echo.HeaderXRealIP:       spoofed,
		})
		if rec.Code == http.StatusTooManyRequests {
			blocked++
		}
	}

	assert.Equal(t, 18, blocked)
}

func TestRateLimiter_TrustedProxyForwardsClientIP(t *testing.T) {
	e, _ := setupRateLimited(t, 1, "10.0.0.0/8")
	viaProxy := func(client string) *httptest.ResponseRecorder {
		return send(e, forgotPasswordPath, "10.0.0.5", map[string]string{echo.HeaderXForwardedFor: client})
	}

	assert.Equal(t, http.StatusAccepted, viaProxy("198.51.100.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, viaProxy("198.51.100.1").Code)
	assert.Equal(t, http.StatusAccepted, viaProxy("198.51.100.2").Code)
}

func TestRateLimiter_SeparateWindowPerRoute(t *testing.T) {
	e, mr := setupRateLimited(t, 1)

	assert.Equal(t, http.StatusAccepted, send(e, forgotPasswordPath, "203.0.113.7", nil).Code)
	assert.Equal(t, http.StatusAccepted, send(e, studentOTPPath, "203.0.113.7", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, send(e, forgotPasswordPath, "203.0.113.7", nil).Code)

	assert.True(t, mr.Exists("rate:limit:otp:"+forgotPasswordPath+":203.0.113.7"))
	assert.True(t, mr.Exists("rate:limit:otp:"+studentOTPPath+":203.0.113.7"))
}
