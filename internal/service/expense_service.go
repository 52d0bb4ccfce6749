package service

import (
	"context"
	"time"

	"coinkeeper/internal/dto"
	"coinkeeper/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ExpenseService struct {
	expenses   ExpenseStore
	categories CategoryStore
	tx         TxRunner
	logger     *zap.Logger
}

func NewExpenseService(expenses ExpenseStore, categories CategoryStore, tx TxRunner, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		expenses:   expenses,
		categories: categories,
		tx:         tx,
		logger:     logger,
	}
}

func (s *ExpenseService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	if err := validateLedgerEntry(req.Value, req.Comment); err != nil {
		return nil, err
	}

	now := time.Now()
	expenseDate := req.ExpenseDate
	if expenseDate.IsZero() {
		expenseDate = now
	}

	expense := &models.Expense{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		ExpenseDate: expenseDate,
		Value:       req.Value,
		Comment:     req.Comment,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := requireCategoryType(ctx, s.categories, categoryID, models.CategoryTypeExpense); err != nil {
			return err
		}
		return s.expenses.Create(ctx, expense)
	})
	if err != nil {
		return nil, err
	}

	return expenseResponse(expense), nil
}

// List returns one page of expenses in [from, to] plus the sum over the whole
// range. The sum is computed by its own query, so skip/limit never change it.
func (s *ExpenseService) List(ctx context.Context, userID uuid.UUID, from, to time.Time, skip, limit int) (*dto.ExpensesResponse, error) {
	skip, limit, err := normalizePage(skip, limit)
	if err != nil {
		return nil, err
	}
	from, to, err = normalizeRange(from, to, time.Now())
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenses.ListByUser(ctx, userID, from, to, skip, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.expenses.SumByUser(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	resp := &dto.ExpensesResponse{
		Expenses: make([]dto.ExpenseResponse, 0, len(expenses)),
		Total:    total,
		Skip:     skip,
		Limit:    limit,
	}
	for _, expense := range expenses {
		resp.Expenses = append(resp.Expenses, *expenseResponse(expense))
	}
	return resp, nil
}

func (s *ExpenseService) Get(ctx context.Context, expenseID, userID uuid.UUID) (*dto.ExpenseResponse, error) {
	expense, err := s.expenses.GetByID(ctx, expenseID)
	expense, err = requireOwned(expense, err, userID, ErrExpenseNotFound, ErrExpensePermissionDenied)
	if err != nil {
		return nil, err
	}
	return expenseResponse(expense), nil
}

func (s *ExpenseService) Update(ctx context.Context, expenseID, userID uuid.UUID, req *dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	if err := validateLedgerEntry(req.Value, req.Comment); err != nil {
		return nil, err
	}

	var updated *models.Expense
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		expense, err := s.expenses.GetByID(ctx, expenseID)
		expense, err = requireOwned(expense, err, userID, ErrExpenseNotFound, ErrExpensePermissionDenied)
		if err != nil {
			return err
		}

		if _, err := requireCategoryType(ctx, s.categories, categoryID, models.CategoryTypeExpense); err != nil {
			return err
		}

		expense.CategoryID = categoryID
		expense.ExpenseDate = req.ExpenseDate
		expense.Value = req.Value
		expense.Comment = req.Comment
		expense.UpdatedAt = time.Now()
		if err := s.expenses.Update(ctx, expense); err != nil {
			return err
		}
		updated = expense
		return nil
	})
	if err != nil {
		return nil, err
	}

	return expenseResponse(updated), nil
}

func (s *ExpenseService) Delete(ctx context.Context, expenseID, userID uuid.UUID) (*dto.ExpenseResponse, error) {
	var removed *models.Expense
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		expense, err := s.expenses.GetByID(ctx, expenseID)
		expense, err = requireOwned(expense, err, userID, ErrExpenseNotFound, ErrExpensePermissionDenied)
		if err != nil {
			return err
		}

		if err := s.expenses.Delete(ctx, expenseID); err != nil {
			return err
		}
		removed = expense
		return nil
	})
	if err != nil {
		return nil, err
	}

	return expenseResponse(removed), nil
}

func expenseResponse(expense *models.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          expense.ID.String(),
		UserID:      expense.UserID.String(),
		CategoryID:  expense.CategoryID.String(),
		ExpenseDate: expense.ExpenseDate,
		Value:       expense.Value,
		Comment:     expense.Comment,
	}
}
