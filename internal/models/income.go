package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Income struct {
	ID         uuid.UUID       `db:"id"`
	UserID     uuid.UUID       `db:"user_id"`
	CategoryID uuid.UUID       `db:"category_id"`
	IncomeDate time.Time       `db:"income_date"`
	Value      decimal.Decimal `db:"value"`
	Comment    string          `db:"comment"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

func (i *Income) Owner() uuid.UUID {
	return i.UserID
}
