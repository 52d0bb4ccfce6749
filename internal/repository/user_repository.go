package repository

import (
	"context"
	"errors"

	"coinkeeper/internal/models"
	"coinkeeper/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var userColumns = []string{"id", "username", "email", "password", "day_expense_limit", "created_at", "updated_at"}

type UserRepository struct {
	db     *postgres.DB
	logger *zap.Logger
}

func NewUserRepository(db *postgres.DB, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := squirrel.Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Email, user.Password, user.DayExpenseLimit, user.CreatedAt, user.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Querier(ctx).Exec(ctx, sql, args...)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username})
}

// GetByEmailOrUsername backs the duplicate check at registration.
func (r *UserRepository) GetByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Or{
		squirrel.Eq{"email": email},
		squirrel.Eq{"username": username},
	})
}

func (r *UserRepository) getOne(ctx context.Context, where any) (*models.User, error) {
	query := squirrel.Select(userColumns...).
		From("users").
		Where(where).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user models.User
	err = r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.DayExpenseLimit, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// UpdateExpenseLimit stores a new advisory daily limit for the user.
func (r *UserRepository) UpdateExpenseLimit(ctx context.Context, id uuid.UUID, limit decimal.Decimal) error {
	query := squirrel.Update("users").
		Set("day_expense_limit", limit).
		Set("updated_at", squirrel.Expr("now()")).
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
