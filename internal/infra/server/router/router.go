// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pensive/backend/internal/integration/entrypoint/controller"
	"github.com/pensive/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	allowedOrigins      []string
	healthController    *controller.HealthController
	expenseController   *controller.ExpenseController
	dashboardController *controller.DashboardController
	stockController     *controller.StockController
	advisorController   *controller.AdvisorController
	advisorRateLimiter  *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	allowedOrigins []string,
	healthController *controller.HealthController,
	expenseController *controller.ExpenseController,
	dashboardController *controller.DashboardController,
	stockController *controller.StockController,
	advisorController *controller.AdvisorController,
	advisorRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		allowedOrigins:      allowedOrigins,
		healthController:    healthController,
		expenseController:   expenseController,
		dashboardController: dashboardController,
		stockController:     stockController,
		advisorController:   advisorController,
		advisorRateLimiter:  advisorRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())

	// Trace ID must run first so the logger and handlers can pick it up.
	r.engine.Use(middleware.TraceID())
	r.engine.Use(middleware.RequestLogger())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

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
	api := r.engine.Group("/api")
	{
		expenses := api.Group("/expenses")
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Create)
			expenses.GET("/:id", r.expenseController.Get)
			expenses.PUT("/:id", r.expenseController.Update)
			expenses.PATCH("/:id", r.expenseController.Update)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}

		api.GET("/dashboard", r.dashboardController.Get)

		stocks := api.Group("/stocks")
		{
			stocks.GET("", r.stockController.List)
			stocks.POST("/advisor", r.advisorRateLimiter.Middleware(), r.advisorController.Stream)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
