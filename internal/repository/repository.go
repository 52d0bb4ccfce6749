package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested record does not exist. Services
// translate it into their entity-specific sentinel.
var ErrNotFound = errors.New("record not found")

// CategoryExpenseRow is one group of the category ranking query: a category
// and the sum of its expenses over the queried range.
type CategoryExpenseRow struct {
	CategoryID uuid.UUID
	Title      string
	Total      decimal.Decimal
}

// TimeUnit selects the field extracted from expense_date when grouping
// expense sums for the dynamics series.
type TimeUnit string

const (
	UnitHour      TimeUnit = "hour"
	UnitDayOfWeek TimeUnit = "dow"
	UnitDay       TimeUnit = "day"
	UnitDayOfYear TimeUnit = "doy"
)
