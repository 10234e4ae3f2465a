package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/storynest/storynest-api/internal/clients/commerce"
	"github.com/storynest/storynest-api/internal/clients/storygen"
	"github.com/storynest/storynest-api/internal/config"
	"github.com/storynest/storynest-api/internal/errors"
	apiv1alpha1 "github.com/storynest/storynest-api/internal/handlers/api/v1alpha1"
	creditsorch "github.com/storynest/storynest-api/internal/orchestrators/credits"
	profileorch "github.com/storynest/storynest-api/internal/orchestrators/profile"
	wizardorch "github.com/storynest/storynest-api/internal/orchestrators/wizard"
	"github.com/storynest/storynest-api/internal/pkg/clock"
	"github.com/storynest/storynest-api/internal/pkg/idgen"
	redisclient "github.com/storynest/storynest-api/internal/redis"
	childrenrepo "github.com/storynest/storynest-api/internal/repositories/children"
	creditsrepo "github.com/storynest/storynest-api/internal/repositories/credits"
	savedrepo "github.com/storynest/storynest-api/internal/repositories/saved_characters"
	storiesrepo "github.com/storynest/storynest-api/internal/repositories/stories"
	sessionrepo "github.com/storynest/storynest-api/internal/repositories/wizard_session"
)

const shutdownTimeout = 30 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	redis, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return errors.Wrap(err, "failed to connect to redis")
	}

	router, err := buildRouter(cfg, redis, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- errors.Wrap(err, "failed to serve")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info("received shutdown signal, draining connections")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown failed, closing", zap.Error(err))
			_ = srv.Close()
		}
		logger.Info("server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}

// buildRouter wires repositories, clients, orchestrators and handlers
func buildRouter(cfg *config.Config, redis redisclient.Client, logger *zap.Logger) (*gin.Engine, error) {
	sessionRepo := sessionrepo.NewRedisRepository(redis)
	childrenRepo := childrenrepo.NewRedisRepository(redis)
	savedRepo := savedrepo.NewRedisRepository(redis)
	storyRepo := storiesrepo.NewRedisRepository(redis)
	creditRepo := creditsrepo.NewRedisRepository(redis)

	storyGenClient, err := storygen.NewOpenAIClient(&storygen.OpenAIConfig{
		APIKey: cfg.OpenAIAPIKey,
		Model:  cfg.OpenAIModel,
	})
	if err != nil {
		return nil, err
	}

	commerceClient, err := commerce.NewHTTPClient(&commerce.HTTPConfig{
		BaseURL: cfg.CommerceURL,
		APIKey:  cfg.CommerceKey,
	})
	if err != nil {
		return nil, err
	}

	clk := clock.New()

	creditsService, err := creditsorch.New(&creditsorch.Config{
		CreditsRepo:      creditRepo,
		CommerceClient:   commerceClient,
		EventIDGenerator: idgen.NewPrefixed("evt"),
		Clock:            clk,
		Logger:           logger.Named("credits"),
	})
	if err != nil {
		return nil, err
	}

	wizardService, err := wizardorch.New(&wizardorch.Config{
		SessionRepo:        sessionRepo,
		ChildrenRepo:       childrenRepo,
		SavedCharacterRepo: savedRepo,
		StoryRepo:          storyRepo,
		CreditsService:     creditsService,
		StoryGenClient:     storyGenClient,
		SessionIDGenerator: idgen.NewPrefixed("wizard"),
		StoryIDGenerator:   idgen.NewPrefixed("story"),
		OneOffIDGenerator:  idgen.NewPrefixed("oneoff"),
		Clock:              clk,
	})
	if err != nil {
		return nil, err
	}

	profileService, err := profileorch.New(&profileorch.Config{
		ChildrenRepo:       childrenRepo,
		SavedCharacterRepo: savedRepo,
		ChildIDGenerator:   idgen.NewPrefixed("child"),
		SavedIDGenerator:   idgen.NewPrefixed("saved"),
		Clock:              clk,
	})
	if err != nil {
		return nil, err
	}

	handler, err := apiv1alpha1.NewHandler(&apiv1alpha1.HandlerConfig{
		WizardService:  wizardService,
		ProfileService: profileService,
		CreditsService: creditsService,
	})
	if err != nil {
		return nil, err
	}

	if !cfg.GinDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler.RegisterRoutes(router)

	return router, nil
}

// requestLogger logs one structured line per request
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		zapLevel = zapcore.InfoLevel
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	return logger, nil
}
