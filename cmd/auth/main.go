package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/studentdeals/internal/pkg/circuitbreaker"
	"github.com/piresc/studentdeals/internal/pkg/config"
	"github.com/piresc/studentdeals/internal/pkg/database"
	"github.com/piresc/studentdeals/internal/pkg/health"
	httpclient "github.com/piresc/studentdeals/internal/pkg/http"
	"github.com/piresc/studentdeals/internal/pkg/jwt"
	"github.com/piresc/studentdeals/internal/pkg/logger"
	"github.com/piresc/studentdeals/internal/pkg/middleware"
	natspkg "github.com/piresc/studentdeals/internal/pkg/nats"
	nrpkg "github.com/piresc/studentdeals/internal/pkg/newrelic"
	"github.com/piresc/studentdeals/internal/pkg/otp"
	"github.com/piresc/studentdeals/internal/pkg/password"
	"github.com/piresc/studentdeals/internal/pkg/retry"
	"github.com/piresc/studentdeals/internal/pkg/server"
	"github.com/piresc/studentdeals/services/auth/gateway"
	"github.com/piresc/studentdeals/services/auth/handler"
	httpHandler "github.com/piresc/studentdeals/services/auth/handler/http"
	"github.com/piresc/studentdeals/services/auth/repository"
	"github.com/piresc/studentdeals/services/auth/usecase"
)

func main() {
	configs := config.InitConfig("config/auth.env")
	appName := configs.App.Name

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs.NewRelic)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Refuse to run with unsafe configuration
	if err := config.Validate(configs); err != nil {
		zapLogger.Fatal("Invalid configuration", logger.Err(err))
	}
	tokens, err := jwt.NewManager(configs.JWT)
	if err != nil {
		zapLogger.Fatal("Invalid token configuration", logger.Err(err))
	}

	components := server.NewShutdownManager(zapLogger)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	components.Register("postgres", func(context.Context) error { return postgresClient.Close() })

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	components.Register("redis", func(context.Context) error { return redisClient.Close() })

	// NATS is optional: without it emails are not sent and events are dropped
	var publisher gateway.Publisher
	checkers := map[string]health.Checker{
		"postgres": health.CheckerFunc(postgresClient.Ping),
		"redis":    health.CheckerFunc(redisClient.Ping),
	}
	if configs.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		publisher = natsClient
		checkers["nats"] = health.CheckerFunc(func(context.Context) error { return natsClient.Ping(2 * time.Second) })
		components.Register("nats", func(context.Context) error { natsClient.Close(); return nil })
	} else {
		zapLogger.Warn("NATS_URL not set, OTP emails will only be stored")
	}

	// Outbound HTTP for institution lookups
	retrier := retry.New(retry.Config{
		MaxRetries:  2,
		BaseDelay:   100 * time.Millisecond,
		MaxDelay:    time.Second,
		Multiplier:  2.0,
		Jitter:      true,
		IsRetryable: httpclient.IsRetryable,
	}, zapLogger)
	lookupClient := httpclient.NewClient(configs.Institution.LookupTimeout, retrier, circuitbreaker.NewManager(zapLogger))

	// Initialize repository
	authRepo := repository.NewAuthRepo(configs, postgresClient.GetDB())

	// Initialize UseCase
	authUC := usecase.NewAuthUC(
		configs,
		authRepo,
		gateway.NewEmailGateway(publisher),
		gateway.NewWhatsAppGateway(configs.Twilio),
		gateway.NewInstitutionGateway(lookupClient),
		gateway.NewEventGateway(publisher),
		otp.NewStore(redisClient),
		tokens,
		password.NewService(configs.Password.Cost),
	)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUC)
	otpLimiter := middleware.OTPRateLimiter(redisClient, configs.RateLimit.OTPLimit, configs.RateLimit.OTPPeriod)
	routes := handler.NewHandler(authHandler, tokens, otpLimiter)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	ipExtractor, err := middleware.IPExtractor(configs.Server.TrustedProxies)
	if err != nil {
		zapLogger.Fatal("Invalid trusted proxy configuration", logger.Err(err))
	}
	e.IPExtractor = ipExtractor

	e.Use(middleware.RequestID())
	e.Use(middleware.NewRelic(nrApp))
	e.Use(middleware.PanicRecovery(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.NewHandler(appName, checkers).Register(e)
	routes.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, components)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			logger.String("app", appName),
			logger.Err(err),
		)
	}
}
