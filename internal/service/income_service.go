package service

import (
	"context"
	"time"

	"coinkeeper/internal/dto"
	"coinkeeper/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IncomeService struct {
	incomes    IncomeStore
	categories CategoryStore
	tx         TxRunner
	logger     *zap.Logger
}

func NewIncomeService(incomes IncomeStore, categories CategoryStore, tx TxRunner, logger *zap.Logger) *IncomeService {
	return &IncomeService{
		incomes:    incomes,
		categories: categories,
		tx:         tx,
		logger:     logger,
	}
}

func (s *IncomeService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateIncomeRequest) (*dto.IncomeResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	if err := validateLedgerEntry(req.Value, req.Comment); err != nil {
		return nil, err
	}

	now := time.Now()
	incomeDate := req.IncomeDate
	if incomeDate.IsZero() {
		incomeDate = now
	}

	income := &models.Income{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		IncomeDate: incomeDate,
		Value:      req.Value,
		Comment:    req.Comment,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := requireCategoryType(ctx, s.categories, categoryID, models.CategoryTypeIncome); err != nil {
			return err
		}
		return s.incomes.Create(ctx, income)
	})
	if err != nil {
		return nil, err
	}

	return incomeResponse(income), nil
}

// List returns one page of incomes in [from, to] plus the sum over the whole
// range. The sum is computed by its own query, so skip/limit never change it.
func (s *IncomeService) List(ctx context.Context, userID uuid.UUID, from, to time.Time, skip, limit int) (*dto.IncomesResponse, error) {
	skip, limit, err := normalizePage(skip, limit)
	if err != nil {
		return nil, err
	}
	from, to, err = normalizeRange(from, to, time.Now())
	if err != nil {
		return nil, err
	}

	incomes, err := s.incomes.ListByUser(ctx, userID, from, to, skip, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.incomes.SumByUser(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	resp := &dto.IncomesResponse{
		Incomes: make([]dto.IncomeResponse, 0, len(incomes)),
		Total:   total,
		Skip:    skip,
		Limit:   limit,
	}
	for _, income := range incomes {
		resp.Incomes = append(resp.Incomes, *incomeResponse(income))
	}
	return resp, nil
}

func (s *IncomeService) Get(ctx context.Context, incomeID, userID uuid.UUID) (*dto.IncomeResponse, error) {
	income, err := s.incomes.GetByID(ctx, incomeID)
	income, err = requireOwned(income, err, userID, ErrIncomeNotFound, ErrIncomePermissionDenied)
	if err != nil {
		return nil, err
	}
	return incomeResponse(income), nil
}

func (s *IncomeService) Update(ctx context.Context, incomeID, userID uuid.UUID, req *dto.UpdateIncomeRequest) (*dto.IncomeResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	if err := validateLedgerEntry(req.Value, req.Comment); err != nil {
		return nil, err
	}

	var updated *models.Income
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		income, err := s.incomes.GetByID(ctx, incomeID)
		income, err = requireOwned(income, err, userID, ErrIncomeNotFound, ErrIncomePermissionDenied)
		if err != nil {
			return err
		}

		if _, err := requireCategoryType(ctx, s.categories, categoryID, models.CategoryTypeIncome); err != nil {
			return err
		}

		income.CategoryID = categoryID
		income.IncomeDate = req.IncomeDate
		income.Value = req.Value
		income.Comment = req.Comment
		income.UpdatedAt = time.Now()
		if err := s.incomes.Update(ctx, income); err != nil {
			return err
		}
		updated = income
		return nil
	})
	if err != nil {
		return nil, err
	}

	return incomeResponse(updated), nil
}

func (s *IncomeService) Delete(ctx context.Context, incomeID, userID uuid.UUID) (*dto.IncomeResponse, error) {
	var removed *models.Income
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		income, err := s.incomes.GetByID(ctx, incomeID)
		income, err = requireOwned(income, err, userID, ErrIncomeNotFound, ErrIncomePermissionDenied)
		if err != nil {
			return err
		}

		if err := s.incomes.Delete(ctx, incomeID); err != nil {
			return err
		}
		removed = income
		return nil
	})
	if err != nil {
		return nil, err
	}

	return incomeResponse(removed), nil
}

func incomeResponse(income *models.Income) *dto.IncomeResponse {
	return &dto.IncomeResponse{
		ID:         income.ID.String(),
		UserID:     income.UserID.String(),
		CategoryID: income.CategoryID.String(),
		IncomeDate: income.IncomeDate,
		Value:      income.Value,
		Comment:    income.Comment,
	}
}
