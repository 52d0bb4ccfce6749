package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultDayExpenseLimit is the advisory daily spending limit assigned at
// registration. It is stored and reported only; nothing enforces it.
var DefaultDayExpenseLimit = decimal.NewFromInt(500)

type User struct {
	ID              uuid.UUID       `db:"id"`
	Username        string          `db:"username"`
	Email           string          `db:"email"`
	Password        string          `db:"password"`
	DayExpenseLimit decimal.Decimal `db:"day_expense_limit"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}
