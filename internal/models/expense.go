package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Expense struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	CategoryID  uuid.UUID       `db:"category_id"`
	ExpenseDate time.Time       `db:"expense_date"`
	Value       decimal.Decimal `db:"value"`
	Comment     string          `db:"comment"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (e *Expense) Owner() uuid.UUID {
	return e.UserID
}
