package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateExpenseRequest struct {
	ExpenseDate time.Time       `json:"expense_date"`
	CategoryID  string          `json:"category_id"`
	Value       decimal.Decimal `json:"value"`
	Comment     string          `json:"comment"`
}

type UpdateExpenseRequest struct {
	ExpenseDate time.Time       `json:"expense_date"`
	CategoryID  string          `json:"category_id"`
	Value       decimal.Decimal `json:"value"`
	Comment     string          `json:"comment"`
}

type ExpenseResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	CategoryID  string          `json:"category_id"`
	ExpenseDate time.Time       `json:"expense_date"`
	Value       decimal.Decimal `json:"value"`
	Comment     string          `json:"comment"`
}

// ExpensesResponse carries one page of expenses. Total is the monetary sum
// over the whole filtered range, not just the returned page.
type ExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    decimal.Decimal   `json:"total"`
	Skip     int               `json:"skip"`
	Limit    int               `json:"limit"`
}
