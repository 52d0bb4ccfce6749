package service

import (
	"context"
	"time"

	"coinkeeper/internal/models"
	"coinkeeper/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxRunner runs a function inside a single all-or-nothing transaction.
// Every mutating service operation goes through it so a failure partway
// through validation reads and writes never leaves a mutated row.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
	UpdateExpenseLimit(ctx context.Context, id uuid.UUID, limit decimal.Decimal) error
}

type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ExpenseStore interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	ListByUser(ctx context.Context, userID uuid.UUID, from, to time.Time, skip, limit int) ([]*models.Expense, error)
	SumByUser(ctx context.Context, userID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
	Update(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type IncomeStore interface {
	Create(ctx context.Context, income *models.Income) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Income, error)
	ListByUser(ctx context.Context, userID uuid.UUID, from, to time.Time, skip, limit int) ([]*models.Income, error)
	SumByUser(ctx context.Context, userID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
	Update(ctx context.Context, income *models.Income) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatsStore interface {
	CategoryExpenses(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]repository.CategoryExpenseRow, error)
	ExpenseSumsByUnit(ctx context.Context, userID uuid.UUID, unit repository.TimeUnit, from, to time.Time) (map[int]decimal.Decimal, error)
}
