package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"declutter/internal/auth"
	"declutter/internal/config"
	"declutter/internal/handler"
	"declutter/internal/metrics"
)

// bodyLimit caps request bodies; images travel inline as data URIs.
const bodyLimit = "5M"

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	logger *logrus.Logger,
	m *metrics.Metrics,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	postHandler *handler.PostHandler,
	commentHandler *handler.CommentHandler,
	notificationHandler *handler.NotificationHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	e.Use(m.Middleware())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit(bodyLimit))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", m.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	requireAuth := auth.RequireAuth(jwtService)

	// Public routes
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/posts/user/:username", postHandler.ListByUsername)
	e.GET("/posts/user-email/:email", postHandler.ListByEmail)
	e.GET("/posts/:id/comments", commentHandler.List)

	// Secured routes (require a token in the Authorization header)
	e.POST("/posts", postHandler.Create, requireAuth)
	e.GET("/posts/me", postHandler.ListMine, requireAuth)
	e.GET("/posts/:id", postHandler.Get, requireAuth)
	e.DELETE("/posts/:id", postHandler.Delete, requireAuth)
	e.POST("/posts/:id/comments", commentHandler.Create, requireAuth)

	e.GET("/notifications/me", notificationHandler.ListMine, requireAuth)
	e.POST("/notifications", notificationHandler.Create, requireAuth)

	e.GET("/user/profile-image", userHandler.GetProfileImage, requireAuth)
	e.PUT("/user/profile-image", userHandler.SetProfileImage, requireAuth)
}

// requestLogger reports every request through logrus. Internal errors
// attached to echo errors are logged here and never reach the client.
func requestLogger(logger *logrus.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"request_id": v.RequestID,
			})
			switch {
			case v.Status >= http.StatusInternalServerError:
				entry.WithError(v.Error).Error("request failed")
			case v.Error != nil:
				entry.WithError(v.Error).Info("request rejected")
			default:
				entry.Info("request")
			}
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
