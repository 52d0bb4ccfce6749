package repository

import (
	"context"
	"errors"
	"time"

	"coinkeeper/internal/models"
	"coinkeeper/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var incomeColumns = []string{"id", "user_id", "category_id", "income_date", "value", "comment", "created_at", "updated_at"}

type IncomeRepository struct {
	db     *postgres.DB
	logger *zap.Logger
}

func NewIncomeRepository(db *postgres.DB, logger *zap.Logger) *IncomeRepository {
	return &IncomeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *IncomeRepository) Create(ctx context.Context, income *models.Income) error {
	query := squirrel.Insert("incomes").
		Columns(incomeColumns...).
		Values(income.ID, income.UserID, income.CategoryID, income.IncomeDate, income.Value, income.Comment, income.CreatedAt, income.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Querier(ctx).Exec(ctx, sql, args...)
	return err
}

func (r *IncomeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Income, error) {
	query := squirrel.Select(incomeColumns...).
		From("incomes").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var income models.Income
	err = r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(
		&income.ID, &income.UserID, &income.CategoryID, &income.IncomeDate,
		&income.Value, &income.Comment, &income.CreatedAt, &income.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &income, nil
}

// ListByUser returns one page of the user's incomes with income_date in
// [from, to], both bounds inclusive.
func (r *IncomeRepository) ListByUser(ctx context.Context, userID uuid.UUID, from, to time.Time, skip, limit int) ([]*models.Income, error) {
	query := squirrel.Select(incomeColumns...).
		From("incomes").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"income_date": from}).
		Where(squirrel.LtOrEq{"income_date": to}).
		OrderBy("income_date DESC", "id ASC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
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

	var incomes []*models.Income
	for rows.Next() {
		var income models.Income
		if err := rows.Scan(
			&income.ID, &income.UserID, &income.CategoryID, &income.IncomeDate,
			&income.Value, &income.Comment, &income.CreatedAt, &income.UpdatedAt,
		); err != nil {
			return nil, err
		}
		incomes = append(incomes, &income)
	}

	return incomes, rows.Err()
}

// SumByUser totals the user's incomes over [from, to] regardless of any page
// window.
func (r *IncomeRepository) SumByUser(ctx context.Context, userID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	query := squirrel.Select("COALESCE(SUM(value), 0)").
		From("incomes").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"income_date": from}).
		Where(squirrel.LtOrEq{"income_date": to}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	if err := r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *IncomeRepository) Update(ctx context.Context, income *models.Income) error {
	query := squirrel.Update("incomes").
		Set("category_id", income.CategoryID).
		Set("income_date", income.IncomeDate).
		Set("value", income.Value).
		Set("comment", income.Comment).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": income.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *IncomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("incomes").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
