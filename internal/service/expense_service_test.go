package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"coinkeeper/internal/dto"
	"coinkeeper/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type expenseFixture struct {
	svc        *ExpenseService
	expenses   *fakeExpenseStore
	categories *fakeCategoryStore

	userID            uuid.UUID
	expenseCategoryID uuid.UUID
	incomeCategoryID  uuid.UUID
}

func newExpenseFixture(t *testing.T) *expenseFixture {
	t.Helper()

	f := &expenseFixture{
		expenses:          newFakeExpenseStore(),
		categories:        newFakeCategoryStore(),
		userID:            uuid.New(),
		expenseCategoryID: uuid.New(),
		incomeCategoryID:  uuid.New(),
	}
	f.svc = NewExpenseService(f.expenses, f.categories, fakeTx{}, zap.NewNop())

	require.NoError(t, f.categories.Create(context.Background(), &models.Category{
		ID:     f.expenseCategoryID,
		UserID: f.userID,
		Title:  "Groceries",
		Type:   models.CategoryTypeExpense,
	}))
	require.NoError(t, f.categories.Create(context.Background(), &models.Category{
		ID:     f.incomeCategoryID,
		UserID: f.userID,
		Title:  "Salary",
		Type:   models.CategoryTypeIncome,
	}))
	return f
}

func (f *expenseFixture) create(t *testing.T, value string, date time.Time) *dto.ExpenseResponse {
	t.Helper()
	resp, err := f.svc.Create(context.Background(), f.userID, &dto.CreateExpenseRequest{
		ExpenseDate: date,
		CategoryID:  f.expenseCategoryID.String(),
		Value:       decimal.RequireFromString(value),
	})
	require.NoError(t, err)
	return resp
}

func TestExpenseCreate(t *testing.T) {
	f := newExpenseFixture(t)

	resp := f.create(t, "12.34", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))

	assert.Equal(t, f.userID.String(), resp.UserID)
	assert.Equal(t, f.expenseCategoryID.String(), resp.CategoryID)
	// The exact decimal survives the round trip.
	assert.Equal(t, "12.34", resp.Value.String())
}

func TestExpenseCreateDefaultsDateToNow(t *testing.T) {
	f := newExpenseFixture(t)

	before := time.Now()
	resp := f.create(t, "5", time.Time{})

	assert.False(t, resp.ExpenseDate.Before(before))
	assert.False(t, resp.ExpenseDate.After(time.Now()))
}

func TestExpenseCreateRejectsIncomeCategory(t *testing.T) {
	f := newExpenseFixture(t)

	_, err := f.svc.Create(context.Background(), f.userID, &dto.CreateExpenseRequest{
		CategoryID: f.incomeCategoryID.String(),
		Value:      decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, ErrCategoryTypeMismatch)
	assert.Empty(t, f.expenses.expenses)
}

func TestExpenseCreateUnknownCategory(t *testing.T) {
	f := newExpenseFixture(t)

	_, err := f.svc.Create(context.Background(), f.userID, &dto.CreateExpenseRequest{
		CategoryID: uuid.New().String(),
		Value:      decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	_, err = f.svc.Create(context.Background(), f.userID, &dto.CreateExpenseRequest{
		CategoryID: "not-a-uuid",
		Value:      decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestExpenseCreateValueBounds(t *testing.T) {
	f := newExpenseFixture(t)

	_, err := f.svc.Create(context.Background(), f.userID, &dto.CreateExpenseRequest{
		CategoryID: f.expenseCategoryID.String(),
		Value:      decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	// The billion bound is exclusive.
	_, err = f.svc.Create(context.Background(), f.userID, &dto.CreateExpenseRequest{
		CategoryID: f.expenseCategoryID.String(),
		Value:      decimal.NewFromInt(1_000_000_000),
	})
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	f.create(t, "999999999.99", time.Now())
	f.create(t, "0", time.Now())
}

func TestExpenseCreateCommentTooLong(t *testing.T) {
	f := newExpenseFixture(t)

	_, err := f.svc.Create(context.Background(), f.userID, &dto.CreateExpenseRequest{
		CategoryID: f.expenseCategoryID.String(),
		Value:      decimal.NewFromInt(1),
		Comment:    strings.Repeat("x", 101),
	})
	assert.ErrorIs(t, err, ErrCommentTooLong)

	_, err = f.svc.Create(context.Background(), f.userID, &dto.CreateExpenseRequest{
		CategoryID: f.expenseCategoryID.String(),
		Value:      decimal.NewFromInt(1),
		Comment:    strings.Repeat("x", 100),
	})
	assert.NoError(t, err)
}

func TestExpenseListTotalIndependentOfPage(t *testing.T) {
	f := newExpenseFixture(t)

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		f.create(t, "10.50", base.Add(time.Duration(i)*time.Hour))
	}

	from := base.Add(-time.Hour)
	to := base.Add(24 * time.Hour)

	first, err := f.svc.List(context.Background(), f.userID, from, to, 0, 2)
	require.NoError(t, err)
	assert.Len(t, first.Expenses, 2)
	assert.Equal(t, "52.5", first.Total.String())

	last, err := f.svc.List(context.Background(), f.userID, from, to, 4, 2)
	require.NoError(t, err)
	assert.Len(t, last.Expenses, 1)
	assert.True(t, last.Total.Equal(first.Total))
}

func TestExpenseListPagination(t *testing.T) {
	f := newExpenseFixture(t)

	_, err := f.svc.List(context.Background(), f.userID, time.Time{}, time.Time{}, -1, 10)
	assert.ErrorIs(t, err, ErrInvalidPagination)

	_, err = f.svc.List(context.Background(), f.userID, time.Time{}, time.Time{}, 0, 101)
	assert.ErrorIs(t, err, ErrInvalidPagination)

	_, err = f.svc.List(context.Background(), f.userID, time.Time{}, time.Time{}, 0, -1)
	assert.ErrorIs(t, err, ErrInvalidPagination)

	resp, err := f.svc.List(context.Background(), f.userID, time.Time{}, time.Time{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Limit)
}

func TestExpenseListRejectsInvertedRange(t *testing.T) {
	f := newExpenseFixture(t)

	now := time.Now()
	_, err := f.svc.List(context.Background(), f.userID, now, now.Add(-time.Hour), 0, 10)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestExpenseGetOwnership(t *testing.T) {
	f := newExpenseFixture(t)
	created := f.create(t, "25", time.Now())
	expenseID := uuid.MustParse(created.ID)

	got, err := f.svc.Get(context.Background(), expenseID, f.userID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = f.svc.Get(context.Background(), expenseID, uuid.New())
	assert.ErrorIs(t, err, ErrExpensePermissionDenied)

	_, err = f.svc.Get(context.Background(), uuid.New(), f.userID)
	assert.ErrorIs(t, err, ErrExpenseNotFound)
}

func TestExpenseUpdate(t *testing.T) {
	f := newExpenseFixture(t)
	created := f.create(t, "25", time.Now())
	expenseID := uuid.MustParse(created.ID)

	newDate := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	updated, err := f.svc.Update(context.Background(), expenseID, f.userID, &dto.UpdateExpenseRequest{
		ExpenseDate: newDate,
		CategoryID:  f.expenseCategoryID.String(),
		Value:       decimal.RequireFromString("30.01"),
		Comment:     "updated",
	})
	require.NoError(t, err)
	assert.Equal(t, "30.01", updated.Value.String())
	assert.Equal(t, newDate, updated.ExpenseDate)
	assert.Equal(t, "updated", updated.Comment)
}

func TestExpenseUpdateGuards(t *testing.T) {
	f := newExpenseFixture(t)
	created := f.create(t, "25", time.Now())
	expenseID := uuid.MustParse(created.ID)

	req := &dto.UpdateExpenseRequest{
		ExpenseDate: time.Now(),
		CategoryID:  f.expenseCategoryID.String(),
		Value:       decimal.NewFromInt(1),
	}

	_, err := f.svc.Update(context.Background(), expenseID, uuid.New(), req)
	assert.ErrorIs(t, err, ErrExpensePermissionDenied)

	// Repointing at an income category is rejected and the record stays put.
	_, err = f.svc.Update(context.Background(), expenseID, f.userID, &dto.UpdateExpenseRequest{
		ExpenseDate: time.Now(),
		CategoryID:  f.incomeCategoryID.String(),
		Value:       decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, ErrCategoryTypeMismatch)

	unchanged, err := f.svc.Get(context.Background(), expenseID, f.userID)
	require.NoError(t, err)
	assert.Equal(t, "25", unchanged.Value.String())
}

func TestExpenseDelete(t *testing.T) {
	f := newExpenseFixture(t)
	created := f.create(t, "25", time.Now())
	expenseID := uuid.MustParse(created.ID)

	_, err := f.svc.Delete(context.Background(), expenseID, uuid.New())
	assert.ErrorIs(t, err, ErrExpensePermissionDenied)

	removed, err := f.svc.Delete(context.Background(), expenseID, f.userID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	_, err = f.svc.Get(context.Background(), expenseID, f.userID)
	assert.ErrorIs(t, err, ErrExpenseNotFound)
}
