package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/piresc/studentdeals/internal/pkg/logger"
	"github.com/piresc/studentdeals/internal/utils"
	"go.uber.org/zap"
)

// PanicRecovery recovers from handler panics, logs them with the stack trace
// and answers 500
func PanicRecovery(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecovery requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				userID := "anonymous"
				if uid, ok := c.Get(logger.UserIDContextKey).(string); ok && uid != "" {
					userID = uid
				}

				zapLogger.Error("Panic recovered",
					zap.Any("panic_value", r),
					zap.String("panic_type", fmt.Sprintf("%T", r)),
					zap.String("method", c.Request().Method),
					zap.String("path", c.Request().URL.Path),
					zap.String("client_ip", c.RealIP()),
					zap.String("user_id", userID),
					zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
					zap.String("stack_trace", string(debug.Stack())),
				)
				NoticeError(c, fmt.Errorf("panic: %v", r))

				if !c.Response().Committed {
					err = utils.InternalServerErrorResponse(c, "")
				}
			}()

			return next(c)
		}
	}
}
