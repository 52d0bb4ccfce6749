package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"coinkeeper/internal/api"
	"coinkeeper/internal/api/handlers"
	"coinkeeper/internal/repository"
	"coinkeeper/internal/service"
	"coinkeeper/pkg/auth"
	"coinkeeper/pkg/config"
	"coinkeeper/pkg/logger"
	"coinkeeper/pkg/postgres"

	"go.uber.org/zap"
)

// @title Coinkeeper API
// @version 1.0
// @description Personal finance tracking backend: categories, incomes, expenses and spending statistics

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting coinkeeper service")

	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.New(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)
	incomeRepo := repository.NewIncomeRepository(db, appLogger)
	statsRepo := repository.NewStatsRepository(db, appLogger)

	// JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	userService := service.NewUserService(userRepo, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, db, appLogger)
	expenseService := service.NewExpenseService(expenseRepo, categoryRepo, db, appLogger)
	incomeService := service.NewIncomeService(incomeRepo, categoryRepo, db, appLogger)
	statsService := service.NewStatsService(statsRepo, appLogger)

	// Handlers
	h := api.Handlers{
		Auth:     handlers.NewAuthHandler(authService, appLogger),
		User:     handlers.NewUserHandler(userService, appLogger),
		Category: handlers.NewCategoryHandler(categoryService, appLogger),
		Expense:  handlers.NewExpenseHandler(expenseService, appLogger),
		Income:   handlers.NewIncomeHandler(incomeService, appLogger),
		Stats:    handlers.NewStatsHandler(statsService, appLogger),
	}

	app := api.SetupRouter(h, jwtManager, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
