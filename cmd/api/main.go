// Package main is the entry point for the Salon POS API server.
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

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/salon-pos/backend/config"
	"github.com/salon-pos/backend/internal/application/adapter"
	"github.com/salon-pos/backend/internal/application/usecase/auth"
	"github.com/salon-pos/backend/internal/application/usecase/ledger"
	"github.com/salon-pos/backend/internal/application/usecase/report"
	"github.com/salon-pos/backend/internal/infra/db"
	"github.com/salon-pos/backend/internal/infra/server/router"
	"github.com/salon-pos/backend/internal/integration/adapters"
	"github.com/salon-pos/backend/internal/integration/email"
	"github.com/salon-pos/backend/internal/integration/entrypoint/controller"
	"github.com/salon-pos/backend/internal/integration/entrypoint/middleware"
	"github.com/salon-pos/backend/internal/integration/persistence"
	"github.com/salon-pos/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Salon POS API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		dbHealthChecker = func() bool { return false }
	} else {
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.CustomerModel{},
			&model.SaleModel{},
			&model.BookingModel{},
			&model.ExpenseModel{},
			&model.DailyBalanceModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	// Create controllers and middleware (only if database is available)
	var authController *controller.AuthController
	var ledgerController *controller.LedgerController
	var reportController *controller.ReportController
	var loginRateLimiter *middleware.RateLimiter
	var authMiddleware *middleware.AuthMiddleware

	if database != nil {
		// Create repositories
		userRepo := persistence.NewUserRepository(database.DB())
		expenseRepo := persistence.NewExpenseRepository(database.DB())
		balanceRepo := persistence.NewDailyBalanceRepository(database.DB())
		salesRepo := persistence.NewSalesRepository(database.DB())
		customerRepo := persistence.NewCustomerRepository(database.DB())
		bookingRepo := persistence.NewBookingRepository(database.DB())

		// Create adapters/services
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
		reportCache := newReportCache(cfg)
		insightService := newInsightService(cfg)
		closingSummaryMailer := newClosingSummaryMailer(cfg)

		// Create auth use cases
		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

		// Create ledger use cases
		recordExpenseUseCase := ledger.NewRecordExpenseUseCase(expenseRepo)
		getExpensesUseCase := ledger.NewGetExpensesUseCase(expenseRepo)
		updateDailyBalanceUseCase := ledger.NewUpdateDailyBalanceUseCase(balanceRepo, expenseRepo, salesRepo)
		getOpeningBalanceUseCase := ledger.NewGetOpeningBalanceUseCase(balanceRepo)
		getTodaysIncomeUseCase := ledger.NewGetTodaysIncomeUseCase(salesRepo)

		// Create report use cases
		assembler := report.NewAssembler(
			balanceRepo,
			expenseRepo,
			salesRepo,
			customerRepo,
			bookingRepo,
			reportCache,
			insightService,
		)
		buildDailyReportUseCase := report.NewBuildDailyReportUseCase(assembler)
		buildWeeklyReportUseCase := report.NewBuildWeeklyReportUseCase(assembler)
		buildMonthlyReportUseCase := report.NewBuildMonthlyReportUseCase(assembler)

		// Create controllers
		authController = controller.NewAuthController(registerUseCase, loginUseCase)
		ledgerController = controller.NewLedgerController(
			recordExpenseUseCase,
			getExpensesUseCase,
			updateDailyBalanceUseCase,
			getOpeningBalanceUseCase,
			getTodaysIncomeUseCase,
			closingSummaryMailer,
		)
		reportController = controller.NewReportController(
			buildDailyReportUseCase,
			buildWeeklyReportUseCase,
			buildMonthlyReportUseCase,
		)

		// Create middleware
		loginRateLimiter = middleware.NewRateLimiter()
		authMiddleware = middleware.NewAuthMiddleware(tokenService)

		slog.Info("Ledger and report systems initialized successfully")
	} else {
		slog.Warn("API routes not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		ledgerController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// newReportCache builds the Redis-backed report cache, or nil when Redis is
// not configured.
func newReportCache(cfg *config.Config) adapter.ReportCache {
	if cfg.Redis.URL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Warn("Invalid Redis URL, report caching disabled", "error", err)
		return nil
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB

	return adapters.NewRedisReportCache(redis.NewClient(opts), cfg.Redis.ReportTTL)
}

// newInsightService builds the report narrative service, or nil when Gemini
// is not configured.
func newInsightService(cfg *config.Config) adapter.InsightService {
	if cfg.Insights.GeminiAPIKey == "" {
		return nil
	}
	return adapters.NewGeminiInsightService(cfg.Insights.GeminiAPIKey)
}

// newClosingSummaryMailer builds the owner closing summary mailer. Returns a
// disabled mailer when Resend is not configured.
func newClosingSummaryMailer(cfg *config.Config) *email.ClosingSummaryMailer {
	enabled := cfg.Email.Enabled && cfg.Email.ResendAPIKey != "" && cfg.Email.OwnerEmail != ""
	sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	return email.NewClosingSummaryMailer(sender, cfg.Email.OwnerEmail, enabled)
}
