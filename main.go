package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/AbdelwaliNour/Hospital/internal/audit"
	"github.com/AbdelwaliNour/Hospital/internal/azure"
	"github.com/AbdelwaliNour/Hospital/internal/config"
	"github.com/AbdelwaliNour/Hospital/internal/handler"
	"github.com/AbdelwaliNour/Hospital/internal/middleware"
	"github.com/AbdelwaliNour/Hospital/internal/pdf"
	"github.com/AbdelwaliNour/Hospital/internal/seed"
	"github.com/AbdelwaliNour/Hospital/internal/service"
	"github.com/AbdelwaliNour/Hospital/internal/store"
	"github.com/AbdelwaliNour/Hospital/pkg/api"
	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "1.0.0"

const clinicName = "Medicare Clinic"

var (
	logger *zap.Logger
	cfg    *config.Config
)

func main() {
	// Load configuration
	var err error
	cfg, err = config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger, err = newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded successfully",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("report_backend", cfg.Reports.Backend),
	)

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.Server.Environment,
			Release:          "hospital-dashboard@" + version,
		}); err != nil {
			logger.Error("Failed to initialize Sentry", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
			logger.Info("Sentry error reporting enabled")
		}
	}

	location, err := cfg.Location()
	if err != nil {
		logger.Fatal("Invalid clinic time zone", zap.Error(err))
	}
	weekStart, err := cfg.WeekStart()
	if err != nil {
		logger.Fatal("Invalid clinic week start", zap.Error(err))
	}
	calendar := service.Calendar{Location: location, WeekStart: weekStart}

	// Initialize the record store
	records := store.New()
	if cfg.Store.Seed {
		summary, err := seed.Load(records, time.Now().In(location), logger)
		if err != nil {
			logger.Fatal("Failed to load demo data", zap.Error(err))
		}
		logger.Info("Record store seeded", zap.Any("summary", summary))
	}

	auditLogger := audit.NewLogger(cfg.Audit.Capacity, logger)

	reportStorage, err := azure.NewReportStorage(cfg.Reports, logger)
	if err != nil {
		logger.Fatal("Failed to initialize report storage", zap.Error(err))
	}

	pdfGenerator := pdf.NewPDFGenerator(logger)

	// Initialize services
	directoryService := service.NewDirectoryService(records, cfg.Clinic.CurrentUserID, logger)
	appointmentService := service.NewAppointmentService(records, auditLogger, calendar, logger)
	visitService := service.NewVisitService(records, calendar, cfg.Clinic.PageSize, logger)
	healthMetricService := service.NewHealthMetricService(records, auditLogger, calendar, logger)
	dashboardService := service.NewDashboardService(records, calendar, logger)
	reportService := service.NewReportService(
		dashboardService,
		reportStorage,
		pdfGenerator,
		auditLogger,
		clinicName,
		logger,
	)

	validator, err := api.NewValidator()
	if err != nil {
		logger.Fatal("Failed to load OpenAPI document", zap.Error(err))
	}

	// Create a unified handler that implements the ServerInterface
	apiHandler := &handler.APIHandler{
		Directory:    handler.NewDirectoryHandler(directoryService, logger),
		Appointment:  handler.NewAppointmentHandler(appointmentService, validator, logger),
		Visit:        handler.NewVisitHandler(visitService, logger),
		HealthMetric: handler.NewHealthMetricHandler(healthMetricService, validator, logger),
		Dashboard:    handler.NewDashboardHandler(dashboardService, logger),
		Report:       handler.NewReportHandler(reportService, validator, logger),
		Health:       handler.NewHealthHandler(records, version),
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	r := gin.New()

	// Add recovery middleware (must be first)
	r.Use(middleware.RecoveryMiddleware(logger))

	// Sentry hub per request; panics are re-raised to the recovery middleware
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID", "X-Trace-ID"},
		AllowCredentials: !allowsAnyOrigin(cfg.Server.CORSOrigins),
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.TracingMiddleware())
	r.Use(middleware.AuditActorMiddleware(cfg.Clinic.CurrentUserID))
	r.Use(middleware.RequestLoggingMiddleware(logger))
	r.Use(middleware.ErrorLoggingMiddleware(logger))
	r.Use(middleware.SlowRequestLoggingMiddleware(logger, 1*time.Second))

	// Register API handlers
	api.RegisterHandlersWithOptions(r, apiHandler, api.GinServerOptions{
		ErrorHandler: handler.ParamErrorHandler(logger),
	})

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// newLogger builds the production or development zap logger at the configured level
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.Encoding = strings.ToLower(cfg.Logging.Format)
	return zapCfg.Build()
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
