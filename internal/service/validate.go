package service

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"coinkeeper/internal/models"
	"coinkeeper/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxCommentLength = 100
	defaultPageLimit = 10
	maxPageLimit     = 100

	// defaultListWindow is the range used when a list request names no dates:
	// the last 24 hours ending now.
	defaultListWindow = 24 * time.Hour
)

// maxLedgerValue is the exclusive upper bound on a single ledger entry.
var maxLedgerValue = decimal.New(1, 9)

// validateLedgerEntry enforces the shared value and comment bounds for both
// expenses and incomes.
func validateLedgerEntry(value decimal.Decimal, comment string) error {
	if value.IsNegative() || !value.LessThan(maxLedgerValue) {
		return ErrValueOutOfRange
	}
	if utf8.RuneCountInString(comment) > maxCommentLength {
		return ErrCommentTooLong
	}
	return nil
}

// requireCategoryType resolves a category and verifies its declared type
// matches the ledger entry kind being written. Used on create and again on
// update, since an update may repoint category_id at a category of the wrong
// type.
func requireCategoryType(ctx context.Context, categories CategoryStore, id uuid.UUID, want models.CategoryType) (*models.Category, error) {
	category, err := categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	if category.Type != want {
		return nil, ErrCategoryTypeMismatch
	}
	return category, nil
}

func normalizePage(skip, limit int) (int, int, error) {
	if skip < 0 || limit < 0 || limit > maxPageLimit {
		return 0, 0, ErrInvalidPagination
	}
	if limit == 0 {
		limit = defaultPageLimit
	}
	return skip, limit, nil
}

// normalizeRange fills in missing bounds of a list range and rejects an
// inverted one. An empty range defaults to the last 24 hours ending at now.
func normalizeRange(from, to, now time.Time) (time.Time, time.Time, error) {
	if to.IsZero() {
		to = now
	}
	if from.IsZero() {
		from = to.Add(-defaultListWindow)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	return from, to, nil
}
