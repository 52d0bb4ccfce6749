package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateIncomeRequest struct {
	IncomeDate time.Time       `json:"income_date"`
	CategoryID string          `json:"category_id"`
	Value      decimal.Decimal `json:"value"`
	Comment    string          `json:"comment"`
}

type UpdateIncomeRequest struct {
	IncomeDate time.Time       `json:"income_date"`
	CategoryID string          `json:"category_id"`
	Value      decimal.Decimal `json:"value"`
	Comment    string          `json:"comment"`
}

type IncomeResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	CategoryID string          `json:"category_id"`
	IncomeDate time.Time       `json:"income_date"`
	Value      decimal.Decimal `json:"value"`
	Comment    string          `json:"comment"`
}

// IncomesResponse carries one page of incomes. Total is the monetary sum over
// the whole filtered range, not just the returned page.
type IncomesResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
	Total   decimal.Decimal  `json:"total"`
	Skip    int              `json:"skip"`
	Limit   int              `json:"limit"`
}
