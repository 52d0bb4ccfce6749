package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"coinkeeper/internal/models"
	"coinkeeper/internal/repository"
	"coinkeeper/pkg/auth"
	"coinkeeper/pkg/config"
	"coinkeeper/pkg/logger"
	"coinkeeper/pkg/postgres"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	seedUsers          = 3
	seedEntriesPerUser = 200
)

var expenseCategoryTitles = []string{
	"Groceries", "Transport", "Rent", "Utilities", "Restaurants",
	"Entertainment", "Health", "Clothing", "Subscriptions", "Travel",
}

var incomeCategoryTitles = []string{"Salary", "Freelance"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.New(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)
	incomeRepo := repository.NewIncomeRepository(db, appLogger)

	appLogger.Info("Starting database seeding")

	for i := 0; i < seedUsers; i++ {
		user, err := seedUser(ctx, userRepo)
		if err != nil {
			appLogger.Fatal("Failed to seed user", zap.Error(err))
		}

		expenseCats, incomeCats, err := seedCategories(ctx, categoryRepo, user.ID)
		if err != nil {
			appLogger.Fatal("Failed to seed categories", zap.Error(err))
		}

		if err := seedLedger(ctx, expenseRepo, incomeRepo, user.ID, expenseCats, incomeCats); err != nil {
			appLogger.Fatal("Failed to seed ledger entries", zap.Error(err))
		}

		appLogger.Info("Seeded user",
			zap.String("email", user.Email),
			zap.Int("expense_categories", len(expenseCats)),
			zap.Int("income_categories", len(incomeCats)),
		)
	}

	appLogger.Info("Database seeding completed")
}

func seedUser(ctx context.Context, users *repository.UserRepository) (*models.User, error) {
	hashed, err := auth.HashPassword(gofakeit.Password(true, true, true, false, false, 12))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:              uuid.New(),
		Username:        gofakeit.Username(),
		Email:           gofakeit.Email(),
		Password:        hashed,
		DayExpenseLimit: models.DefaultDayExpenseLimit,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func seedCategories(ctx context.Context, categories *repository.CategoryRepository, userID uuid.UUID) ([]uuid.UUID, []uuid.UUID, error) {
	var expenseCats, incomeCats []uuid.UUID

	create := func(title string, categoryType models.CategoryType) (uuid.UUID, error) {
		now := time.Now()
		category := &models.Category{
			ID:        uuid.New(),
			UserID:    userID,
			Title:     title,
			Type:      categoryType,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return category.ID, categories.Create(ctx, category)
	}

	for _, title := range expenseCategoryTitles {
		id, err := create(title, models.CategoryTypeExpense)
		if err != nil {
			return nil, nil, err
		}
		expenseCats = append(expenseCats, id)
	}
	for _, title := range incomeCategoryTitles {
		id, err := create(title, models.CategoryTypeIncome)
		if err != nil {
			return nil, nil, err
		}
		incomeCats = append(incomeCats, id)
	}

	return expenseCats, incomeCats, nil
}

func seedLedger(ctx context.Context, expenses *repository.ExpenseRepository, incomes *repository.IncomeRepository, userID uuid.UUID, expenseCats, incomeCats []uuid.UUID) error {
	now := time.Now()

	for i := 0; i < seedEntriesPerUser; i++ {
		// Spread entries over the trailing year so every stats period has data.
		date := now.AddDate(0, 0, -rand.Intn(365)).Add(-time.Duration(rand.Intn(24)) * time.Hour)
		value := decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2)

		if i%10 == 0 {
			income := &models.Income{
				ID:         uuid.New(),
				UserID:     userID,
				CategoryID: incomeCats[rand.Intn(len(incomeCats))],
				IncomeDate: date,
				Value:      decimal.NewFromFloat(gofakeit.Price(500, 5000)).Round(2),
				Comment:    gofakeit.Sentence(3),
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := incomes.Create(ctx, income); err != nil {
				return err
			}
			continue
		}

		expense := &models.Expense{
			ID:          uuid.New(),
			UserID:      userID,
			CategoryID:  expenseCats[rand.Intn(len(expenseCats))],
			ExpenseDate: date,
			Value:       value,
			Comment:     gofakeit.Sentence(3),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := expenses.Create(ctx, expense); err != nil {
			return err
		}
	}

	return nil
}
