// Package main is the entry point for the Pensive API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pensive/backend/config"
	"github.com/pensive/backend/internal/application/usecase/advisor"
	"github.com/pensive/backend/internal/application/usecase/dashboard"
	"github.com/pensive/backend/internal/application/usecase/expense"
	"github.com/pensive/backend/internal/application/usecase/stock"
	"github.com/pensive/backend/internal/infra/db"
	"github.com/pensive/backend/internal/infra/server/router"
	"github.com/pensive/backend/internal/integration/adapters"
	"github.com/pensive/backend/internal/integration/entrypoint/controller"
	"github.com/pensive/backend/internal/integration/entrypoint/middleware"
	"github.com/pensive/backend/internal/integration/persistence"
	"github.com/pensive/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting Pensive API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection. The expense and dashboard endpoints
	// cannot serve anything without it, so a failed connection is fatal.
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(&model.ExpenseModel{}); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Create repositories and outbound adapters
	expenseRepo := persistence.NewExpenseRepository(database.DB())
	quoteClient := adapters.NewYahooQuoteClient(cfg.Stocks.QuoteURL, cfg.Stocks.Timeout)
	chatStreamer := adapters.NewOpenAIStreamer(cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	// Create use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	getAggregatesUseCase := dashboard.NewGetAggregatesUseCase(expenseRepo)
	listStocksUseCase := stock.NewListStocksUseCase(quoteClient)
	streamAdviceUseCase := advisor.NewStreamAdviceUseCase(chatStreamer)

	// Create controllers and middleware
	healthController := controller.NewHealthController(database.HealthCheck)
	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		getExpenseUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)
	dashboardController := controller.NewDashboardController(getAggregatesUseCase)
	stockController := controller.NewStockController(listStocksUseCase)
	advisorController := controller.NewAdvisorController(streamAdviceUseCase)
	advisorRateLimiter := middleware.NewRateLimiter()

	// Setup router
	r := router.NewRouter(
		cfg.CORS.OriginList(),
		healthController,
		expenseController,
		dashboardController,
		stockController,
		advisorController,
		advisorRateLimiter,
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

// parseLogLevel maps a configured level name to a slog level.
// Unknown values fall back to info.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
