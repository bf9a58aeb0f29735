// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/salon-pos/backend/internal/integration/entrypoint/controller"
	"github.com/salon-pos/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	healthController *controller.HealthController
	authController   *controller.AuthController
	ledgerController *controller.LedgerController
	reportController *controller.ReportController
	loginRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	ledgerController *controller.LedgerController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController: healthController,
		authController:   authController,
		ledgerController: ledgerController,
		reportController: reportController,
		loginRateLimiter: loginRateLimiter,
		authMiddleware:   authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		// Expense and balance routes (require authentication)
		if r.ledgerController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.POST("", r.ledgerController.RecordExpense)
				expenses.GET("", r.ledgerController.ListExpenses)
				expenses.GET("/summary", r.ledgerController.ExpenseSummary)
			}

			balances := v1.Group("/balances")
			balances.Use(r.authMiddleware.Authenticate())
			{
				balances.POST("/:date/close", r.ledgerController.CloseDay)
				balances.GET("/:date/opening", r.ledgerController.OpeningBalance)
			}

			income := v1.Group("/income")
			income.Use(r.authMiddleware.Authenticate())
			{
				income.GET("/today", r.ledgerController.TodaysIncome)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("/daily", r.reportController.GetDailyReport)
				reports.GET("/weekly", r.reportController.GetWeeklyReport)
				reports.GET("/monthly", r.reportController.GetMonthlyReport)
			}
		}
	}
}
