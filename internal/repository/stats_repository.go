package repository

import (
	"context"
	"fmt"
	"time"

	"coinkeeper/internal/models"
	"coinkeeper/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type StatsRepository struct {
	db     *postgres.DB
	logger *zap.Logger
}

func NewStatsRepository(db *postgres.DB, logger *zap.Logger) *StatsRepository {
	return &StatsRepository{
		db:     db,
		logger: logger,
	}
}

// CategoryExpenses sums the user's expenses per expense-type category over
// [from, to], largest first. The secondary order on category id keeps ties
// deterministic.
func (r *StatsRepository) CategoryExpenses(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]CategoryExpenseRow, error) {
	query := squirrel.Select("c.id", "c.title", "SUM(e.value) AS total").
		From("categories c").
		Join("expenses e ON e.category_id = c.id").
		Where(squirrel.Eq{"c.user_id": userID}).
		Where(squirrel.Eq{"c.type": models.CategoryTypeExpense}).
		Where(squirrel.GtOrEq{"e.expense_date": from}).
		Where(squirrel.LtOrEq{"e.expense_date": to}).
		GroupBy("c.id", "c.title").
		Having("SUM(e.value) > 0").
		OrderBy("total DESC", "c.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []CategoryExpenseRow
	for rows.Next() {
		var row CategoryExpenseRow
		if err := rows.Scan(&row.CategoryID, &row.Title, &row.Total); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// ExpenseSumsByUnit groups the user's expense sums over [from, to] by the
// given unit of expense_date. Only units with activity are returned; the
// service zero-fills the rest.
func (r *StatsRepository) ExpenseSumsByUnit(ctx context.Context, userID uuid.UUID, unit TimeUnit, from, to time.Time) (map[int]decimal.Decimal, error) {
	switch unit {
	case UnitHour, UnitDayOfWeek, UnitDay, UnitDayOfYear:
	default:
		return nil, fmt.Errorf("unsupported time unit %q", unit)
	}

	field := fmt.Sprintf("EXTRACT(%s FROM expense_date)::int", unit)
	query := squirrel.Select(field+" AS unit", "SUM(value) AS amount").
		From("expenses").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"expense_date": from}).
		Where(squirrel.LtOrEq{"expense_date": to}).
		GroupBy(field).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[int]decimal.Decimal)
	for rows.Next() {
		var (
			u      int
			amount decimal.Decimal
		)
		if err := rows.Scan(&u, &amount); err != nil {
			return nil, err
		}
		sums[u] = amount
	}

	return sums, rows.Err()
}
