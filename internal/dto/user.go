package dto

import "github.com/shopspring/decimal"

type UserResponse struct {
	ID              string          `json:"id"`
	Username        string          `json:"username"`
	Email           string          `json:"email"`
	DayExpenseLimit decimal.Decimal `json:"day_expense_limit"`
}

type UpdateExpenseLimitRequest struct {
	DayExpenseLimit decimal.Decimal `json:"day_expense_limit"`
}
