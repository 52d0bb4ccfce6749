package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CategoryExpense struct {
	Title  string `json:"title"`
	Amount int64  `json:"amount"`
}

type CategoryExpenseStat struct {
	Categories []CategoryExpense `json:"categories"`
	Total      int64             `json:"total"`
}

// ExpenseDynamic is one bucket of a fixed-cardinality time series. Buckets
// with no activity carry a zero amount rather than being omitted.
type ExpenseDynamic struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}
