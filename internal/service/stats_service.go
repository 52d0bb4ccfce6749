package service

import (
	"context"
	"time"

	"coinkeeper/internal/dto"
	"coinkeeper/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	// maxRankedCategories caps the category ranking; everything past the top
	// nine is folded into one synthetic entry.
	maxRankedCategories = 10
	otherCategoryTitle  = "Other"
)

type StatsService struct {
	stats  StatsStore
	logger *zap.Logger

	// now is swapped out by tests for deterministic windows.
	now func() time.Time
}

func NewStatsService(stats StatsStore, logger *zap.Logger) *StatsService {
	return &StatsService{
		stats:  stats,
		logger: logger,
		now:    time.Now,
	}
}

// CategoryExpenseStats ranks the user's expense categories over the period,
// largest sum first, collapsing the long tail into "Other" so the result
// never exceeds ten entries. Total is computed from the returned list.
func (s *StatsService) CategoryExpenseStats(ctx context.Context, userID uuid.UUID, period Period) (*dto.CategoryExpenseStat, error) {
	from, to := period.Range(s.now())

	rows, err := s.stats.CategoryExpenses(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	categories := collapseCategories(rows)

	var total int64
	for _, category := range categories {
		total += category.Amount
	}

	return &dto.CategoryExpenseStat{
		Categories: categories,
		Total:      total,
	}, nil
}

// ExpenseDynamics produces the fixed-cardinality series for the period: 24
// hours for today, 7 days of week, every day of the month, every day of the
// year. Buckets with no expenses carry a zero amount.
func (s *StatsService) ExpenseDynamics(ctx context.Context, userID uuid.UUID, period Period) ([]dto.ExpenseDynamic, error) {
	from, to := period.Range(s.now())

	sums, err := s.stats.ExpenseSumsByUnit(ctx, userID, unitForPeriod(period), from, to)
	if err != nil {
		return nil, err
	}

	return buildSeries(period, from, sums), nil
}

func unitForPeriod(period Period) repository.TimeUnit {
	switch period {
	case PeriodToday:
		return repository.UnitHour
	case PeriodWeek:
		return repository.UnitDayOfWeek
	case PeriodMonth:
		return repository.UnitDay
	default:
		return repository.UnitDayOfYear
	}
}

// collapseCategories truncates each category sum toward zero and, when more
// than ten categories remain, keeps the top nine and folds the rest into a
// single "Other" entry whose amount is the sum of everything collapsed.
func collapseCategories(rows []repository.CategoryExpenseRow) []dto.CategoryExpense {
	categories := make([]dto.CategoryExpense, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, dto.CategoryExpense{
			Title:  row.Title,
			Amount: row.Total.IntPart(),
		})
	}

	if len(categories) <= maxRankedCategories {
		return categories
	}

	var other int64
	for _, category := range categories[maxRankedCategories-1:] {
		other += category.Amount
	}

	return append(categories[:maxRankedCategories-1], dto.CategoryExpense{
		Title:  otherCategoryTitle,
		Amount: other,
	})
}

// buildSeries generates every unit of the period and fills each from the
// sparse query result, defaulting to zero. The full fixed-size unit list is
// always emitted; the series length never depends on which rows exist.
func buildSeries(period Period, from time.Time, sums map[int]decimal.Decimal) []dto.ExpenseDynamic {
	switch period {
	case PeriodToday:
		series := make([]dto.ExpenseDynamic, 0, 24)
		for hour := 0; hour < 24; hour++ {
			series = append(series, dto.ExpenseDynamic{
				Date:   time.Date(from.Year(), from.Month(), from.Day(), hour, 0, 0, 0, from.Location()),
				Amount: amountAt(sums, hour),
			})
		}
		return series

	case PeriodWeek:
		// Buckets keyed by Postgres day-of-week numbering, 0=Sunday.
		series := make([]dto.ExpenseDynamic, 0, 7)
		for dow := 0; dow < 7; dow++ {
			series = append(series, dto.ExpenseDynamic{
				Date:   from.AddDate(0, 0, dow),
				Amount: amountAt(sums, dow),
			})
		}
		return series

	case PeriodMonth:
		daysInMonth := time.Date(from.Year(), from.Month()+1, 0, 0, 0, 0, 0, from.Location()).Day()
		series := make([]dto.ExpenseDynamic, 0, daysInMonth)
		for day := 1; day <= daysInMonth; day++ {
			series = append(series, dto.ExpenseDynamic{
				Date:   time.Date(from.Year(), from.Month(), day, 0, 0, 0, 0, from.Location()),
				Amount: amountAt(sums, day),
			})
		}
		return series

	default: // PeriodYear
		daysInYear := 365
		if isLeapYear(from.Year()) {
			daysInYear = 366
		}
		jan1 := time.Date(from.Year(), 1, 1, 0, 0, 0, 0, from.Location())
		series := make([]dto.ExpenseDynamic, 0, daysInYear)
		for doy := 1; doy <= daysInYear; doy++ {
			series = append(series, dto.ExpenseDynamic{
				Date:   jan1.AddDate(0, 0, doy-1),
				Amount: amountAt(sums, doy),
			})
		}
		return series
	}
}

func amountAt(sums map[int]decimal.Decimal, unit int) decimal.Decimal {
	if amount, ok := sums[unit]; ok {
		return amount
	}
	return decimal.Zero
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
