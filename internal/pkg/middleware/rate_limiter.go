package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/studentdeals/internal/pkg/constants"
	"github.com/piresc/studentdeals/internal/pkg/database"
	"github.com/piresc/studentdeals/internal/pkg/logger"
	"github.com/piresc/studentdeals/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Redis    *database.RedisClient
	Resource string        // Resource name used in the Redis key
	Limit    int           // Maximum number of requests
	Period   time.Duration // Fixed window length
}

// RateLimiterMiddleware limits requests per route and per user, or per client IP
// for anonymous callers, in a fixed window kept in Redis. The client IP comes from
// echo's IPExtractor. Redis errors let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if identity, ok := IdentityFromContext(c); ok {
				identifier = identity.UserID
			}

			key := fmt.Sprintf(constants.KeyRateLimit, config.Resource, c.Path(), identifier)
			ctx := c.Request().Context()

			count, err := config.Redis.IncrWithExpiry(ctx, key, config.Period)
			if err != nil {
				logger.WarnCtx(ctx, "Rate limiter unavailable, allowing request",
					logger.String("resource", config.Resource),
					logger.Err(err))
				return next(c)
			}

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))

			if count > int64(config.Limit) {
				ttl, err := config.Redis.TTL(ctx, key)
				if err != nil || ttl < 0 {
					ttl = config.Period
				}

				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))

				return utils.TooManyRequestsResponse(c)
			}

			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.Limit)-count, 10))
			return next(c)
		}
	}
}

// OTPRateLimiter limits OTP-issuing routes
func OTPRateLimiter(redisClient *database.RedisClient, limit int, period time.Duration) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		Redis:    redisClient,
		Resource: "otp",
		Limit:    limit,
		Period:   period,
	})
}
