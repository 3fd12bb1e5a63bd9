// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	"github.com/reignofvision/agency-api/internal/adapters/clients"
	"github.com/reignofvision/agency-api/internal/adapters/clients/contentful"
	httpadapter "github.com/reignofvision/agency-api/internal/adapters/http"
	"github.com/reignofvision/agency-api/internal/adapters/http/handlers"
	"github.com/reignofvision/agency-api/internal/adapters/mail"
	"github.com/reignofvision/agency-api/internal/app"
	"github.com/reignofvision/agency-api/internal/platform/config"
	"github.com/reignofvision/agency-api/internal/platform/logging"
	"github.com/reignofvision/agency-api/internal/platform/telemetry"
	"github.com/reignofvision/agency-api/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Create the instrumented client for the Content Delivery API.
	// The delivery token authenticates every request.
	accessToken := cfg.Content.AccessToken
	cdaClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Content.BaseURL,
		ServiceName: "contentful",
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		AuthFunc: func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+accessToken)
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("creating CDA client: %w", err)
	}

	// 7. Create the content store adapter
	contentStore := contentful.New(contentful.Config{
		Client:           cdaClient,
		SpaceID:          cfg.Content.SpaceID,
		Environment:      cfg.Content.Environment,
		ArticleTypes:     cfg.Content.ArticleTypes,
		PortfolioTypes:   cfg.Content.PortfolioTypes,
		TestimonialTypes: cfg.Content.TestimonialTypes,
		Logger:           logger,
	})

	if err := healthRegistry.Register(contentStore); err != nil {
		return fmt.Errorf("registering content store health check: %w", err)
	}

	// 8. Create the SES mailer
	sesClient, err := newSESClient(ctx, cfg.Email)
	if err != nil {
		return fmt.Errorf("creating SES client: %w", err)
	}

	mailer := mail.NewSender(sesClient, cfg.Email, logger)

	// 9. Create application services
	contentService := app.NewContentService(contentStore, logger)
	formService := app.NewFormService(mailer, logger)

	// 10. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	contentHandler := handlers.NewContentHandler(contentService)
	formHandler := handlers.NewFormHandler(formService)
	siteHandler := handlers.NewSiteHandler(cfg.Site)

	// 11. Create HTTP server and router
	server := httpadapter.New(&cfg.Server, logger)

	httpadapter.SetupRouter(server.Engine(), httpadapter.RouterConfig{
		Logger:         logger,
		ServiceName:    cfg.App.Name,
		HealthHandler:  healthHandler,
		ContentHandler: contentHandler,
		FormHandler:    formHandler,
		SiteHandler:    siteHandler,
		Timeout:        httpadapter.DefaultRequestTimeout,
	})

	// 12. Start server (non-blocking)
	serverErr := server.Start()

	// 13. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// newSESClient builds the SES v2 client. Static credentials are used
// when a key pair is configured; otherwise the default provider chain
// applies. A missing key pair is not fatal here: form submissions check
// delivery settings per request and answer with the misconfiguration
// message instead.
func newSESClient(ctx context.Context, cfg config.EmailConfig) (*sesv2.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return sesv2.NewFromConfig(awsCfg), nil
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *httpadapter.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
