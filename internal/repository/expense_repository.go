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

var expenseColumns = []string{"id", "user_id", "category_id", "expense_date", "value", "comment", "created_at", "updated_at"}

type ExpenseRepository struct {
	db     *postgres.DB
	logger *zap.Logger
}

func NewExpenseRepository(db *postgres.DB, logger *zap.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	query := squirrel.Insert("expenses").
		Columns(expenseColumns...).
		Values(expense.ID, expense.UserID, expense.CategoryID, expense.ExpenseDate, expense.Value, expense.Comment, expense.CreatedAt, expense.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Querier(ctx).Exec(ctx, sql, args...)
	return err
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	query := squirrel.Select(expenseColumns...).
		From("expenses").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var expense models.Expense
	err = r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(
		&expense.ID, &expense.UserID, &expense.CategoryID, &expense.ExpenseDate,
		&expense.Value, &expense.Comment, &expense.CreatedAt, &expense.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &expense, nil
}

// ListByUser returns one page of the user's expenses with expense_date in
// [from, to], both bounds inclusive.
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID uuid.UUID, from, to time.Time, skip, limit int) ([]*models.Expense, error) {
	query := squirrel.Select(expenseColumns...).
		From("expenses").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"expense_date": from}).
		Where(squirrel.LtOrEq{"expense_date": to}).
		OrderBy("expense_date DESC", "id ASC").
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

	var expenses []*models.Expense
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(
			&expense.ID, &expense.UserID, &expense.CategoryID, &expense.ExpenseDate,
			&expense.Value, &expense.Comment, &expense.CreatedAt, &expense.UpdatedAt,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, &expense)
	}

	return expenses, rows.Err()
}

// SumByUser totals the user's expenses over [from, to] regardless of any
// page window.
func (r *ExpenseRepository) SumByUser(ctx context.Context, userID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	query := squirrel.Select("COALESCE(SUM(value), 0)").
		From("expenses").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"expense_date": from}).
		Where(squirrel.LtOrEq{"expense_date": to}).
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

func (r *ExpenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	query := squirrel.Update("expenses").
		Set("category_id", expense.CategoryID).
		Set("expense_date", expense.ExpenseDate).
		Set("value", expense.Value).
		Set("comment", expense.Comment).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": expense.ID}).
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

func (r *ExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("expenses").
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
