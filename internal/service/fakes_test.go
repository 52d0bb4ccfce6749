package service

import (
	"context"
	"time"

	"coinkeeper/internal/models"
	"coinkeeper/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fakeTx runs the function directly; service tests exercise logic, not the
// database transaction machinery.
type fakeTx struct{}

func (fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserStore struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) GetByEmailOrUsername(_ context.Context, email, username string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email || user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) UpdateExpenseLimit(_ context.Context, id uuid.UUID, limit decimal.Decimal) error {
	user, ok := s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.DayExpenseLimit = limit
	return nil
}

type fakeCategoryStore struct {
	categories map[uuid.UUID]*models.Category
	order      []uuid.UUID
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: make(map[uuid.UUID]*models.Category)}
}

func (s *fakeCategoryStore) Create(_ context.Context, category *models.Category) error {
	copied := *category
	s.categories[category.ID] = &copied
	s.order = append(s.order, category.ID)
	return nil
}

func (s *fakeCategoryStore) GetByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *category
	return &copied, nil
}

func (s *fakeCategoryStore) ListByUser(_ context.Context, userID uuid.UUID, skip, limit int) ([]*models.Category, error) {
	var owned []*models.Category
	for _, id := range s.order {
		if category, ok := s.categories[id]; ok && category.UserID == userID {
			copied := *category
			owned = append(owned, &copied)
		}
	}
	return page(owned, skip, limit), nil
}

func (s *fakeCategoryStore) Update(_ context.Context, category *models.Category) error {
	if _, ok := s.categories[category.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *category
	s.categories[category.ID] = &copied
	return nil
}

func (s *fakeCategoryStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.categories[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

type fakeExpenseStore struct {
	expenses map[uuid.UUID]*models.Expense
	order    []uuid.UUID
}

func newFakeExpenseStore() *fakeExpenseStore {
	return &fakeExpenseStore{expenses: make(map[uuid.UUID]*models.Expense)}
}

func (s *fakeExpenseStore) Create(_ context.Context, expense *models.Expense) error {
	copied := *expense
	s.expenses[expense.ID] = &copied
	s.order = append(s.order, expense.ID)
	return nil
}

func (s *fakeExpenseStore) GetByID(_ context.Context, id uuid.UUID) (*models.Expense, error) {
	expense, ok := s.expenses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *expense
	return &copied, nil
}

func (s *fakeExpenseStore) ListByUser(_ context.Context, userID uuid.UUID, from, to time.Time, skip, limit int) ([]*models.Expense, error) {
	var matched []*models.Expense
	for _, id := range s.order {
		expense, ok := s.expenses[id]
		if !ok || expense.UserID != userID || !within(expense.ExpenseDate, from, to) {
			continue
		}
		copied := *expense
		matched = append(matched, &copied)
	}
	return page(matched, skip, limit), nil
}

func (s *fakeExpenseStore) SumByUser(_ context.Context, userID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, expense := range s.expenses {
		if expense.UserID == userID && within(expense.ExpenseDate, from, to) {
			total = total.Add(expense.Value)
		}
	}
	return total, nil
}

func (s *fakeExpenseStore) Update(_ context.Context, expense *models.Expense) error {
	if _, ok := s.expenses[expense.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *expense
	s.expenses[expense.ID] = &copied
	return nil
}

func (s *fakeExpenseStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.expenses[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.expenses, id)
	return nil
}

type fakeIncomeStore struct {
	incomes map[uuid.UUID]*models.Income
	order   []uuid.UUID
}

func newFakeIncomeStore() *fakeIncomeStore {
	return &fakeIncomeStore{incomes: make(map[uuid.UUID]*models.Income)}
}

func (s *fakeIncomeStore) Create(_ context.Context, income *models.Income) error {
	copied := *income
	s.incomes[income.ID] = &copied
	s.order = append(s.order, income.ID)
	return nil
}

func (s *fakeIncomeStore) GetByID(_ context.Context, id uuid.UUID) (*models.Income, error) {
	income, ok := s.incomes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *income
	return &copied, nil
}

func (s *fakeIncomeStore) ListByUser(_ context.Context, userID uuid.UUID, from, to time.Time, skip, limit int) ([]*models.Income, error) {
	var matched []*models.Income
	for _, id := range s.order {
		income, ok := s.incomes[id]
		if !ok || income.UserID != userID || !within(income.IncomeDate, from, to) {
			continue
		}
		copied := *income
		matched = append(matched, &copied)
	}
	return page(matched, skip, limit), nil
}

func (s *fakeIncomeStore) SumByUser(_ context.Context, userID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, income := range s.incomes {
		if income.UserID == userID && within(income.IncomeDate, from, to) {
			total = total.Add(income.Value)
		}
	}
	return total, nil
}

func (s *fakeIncomeStore) Update(_ context.Context, income *models.Income) error {
	if _, ok := s.incomes[income.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *income
	s.incomes[income.ID] = &copied
	return nil
}

func (s *fakeIncomeStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.incomes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.incomes, id)
	return nil
}

// fakeStatsStore returns canned aggregation results and records the query it
// was asked for.
type fakeStatsStore struct {
	rows []repository.CategoryExpenseRow
	sums map[int]decimal.Decimal

	lastUnit repository.TimeUnit
	lastFrom time.Time
	lastTo   time.Time
}

func (s *fakeStatsStore) CategoryExpenses(_ context.Context, _ uuid.UUID, from, to time.Time) ([]repository.CategoryExpenseRow, error) {
	s.lastFrom, s.lastTo = from, to
	return s.rows, nil
}

func (s *fakeStatsStore) ExpenseSumsByUnit(_ context.Context, _ uuid.UUID, unit repository.TimeUnit, from, to time.Time) (map[int]decimal.Decimal, error) {
	s.lastUnit = unit
	s.lastFrom, s.lastTo = from, to
	return s.sums, nil
}

func within(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

func page[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return nil
	}
	items = items[skip:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}
