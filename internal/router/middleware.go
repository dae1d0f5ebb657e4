package router

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	apperrors "sportmatch/internal/errors"
	"sportmatch/internal/handler"
	"sportmatch/internal/logger"
	"sportmatch/internal/service"
)

const authErrorKey = "auth_error"

// Authenticate resolves the bearer token into the stored user and puts it on
// the context under handler.UserContextKey. Failures answer 401 with a
// WWW-Authenticate: Bearer challenge.
func Authenticate(authService service.AuthService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  handler.UserContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			user, err := authService.ResolveCurrentUser(c.Request().Context(), token)
			if err != nil {
				c.Set(authErrorKey, err)
				return nil, err
			}
			return user, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			cause, ok := c.Get(authErrorKey).(error)
			if !ok {
				// missing or malformed Authorization header
				cause = apperrors.ErrInvalidToken
			}
			return handler.RespondError(c, cause)
		},
	})
}

// RequireAdmin rejects callers that are not admins with 403.
// It must run after Authenticate.
func RequireAdmin(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, err := authService.RequireAdmin(handler.CurrentUser(c)); err != nil {
				return handler.RespondError(c, err)
			}
			return next(c)
		}
	}
}

// RequestLogger logs one line per request through zap.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []interface{}{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			switch {
			case v.Status >= 500:
				log.Errorw("request failed", append(fields, "error", v.Error)...)
			case v.Error != nil:
				log.Infow("request rejected", append(fields, "error", v.Error)...)
			default:
				log.Infow("request", fields...)
			}
			return nil
		},
	})
}
