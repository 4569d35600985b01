package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "declutter/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"declutter/internal/auth"
	"declutter/internal/cache"
	"declutter/internal/config"
	"declutter/internal/db"
	"declutter/internal/handler"
	"declutter/internal/logging"
	"declutter/internal/metrics"
	"declutter/internal/router"
	"declutter/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Declutter API
// @version 1.0
// @description Post the things you no longer want, comment on other people's posts and get notified.
// @host localhost:3000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
// @description The raw token returned by /register or /login, without a Bearer prefix.
func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := db.Open(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("store init")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(ctx); err != nil {
		logger.WithError(err).Warn("redis unavailable, profile images will not be cached")
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	notifier := service.NewNotifier(store.Posts, store.Notifications, logger)
	authService := service.NewAuthService(store.Users, jwtService)
	postService := service.NewPostService(store.Posts)
	commentService := service.NewCommentService(store.Comments, notifier)
	notificationService := service.NewNotificationService(store.Notifications)
	userService := service.NewUserService(store.Users, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	userHandler := handler.NewUserHandler(userService)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(
		e,
		cfg,
		logger,
		metrics.New(),
		jwtService,
		authHandler,
		postHandler,
		commentHandler,
		notificationHandler,
		userHandler,
	)

	logger.Infof("Swagger documentation available at: %s", swaggerURL(cfg))

	addr := ":" + cfg.ServerPort
	go func() {
		logger.WithField("addr", addr).Info("server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("server start")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("server shutdown")
	}
	// pending comment notifications are written before the store goes away
	notifier.Close()
	if err := cacheClient.Close(); err != nil {
		logger.WithError(err).Warn("redis close")
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.WithError(err).Warn("store close")
	}
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
