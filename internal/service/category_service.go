package service

import (
	"context"
	"time"

	"coinkeeper/internal/dto"
	"coinkeeper/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryService struct {
	categories CategoryStore
	tx         TxRunner
	logger     *zap.Logger
}

func NewCategoryService(categories CategoryStore, tx TxRunner, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categories: categories,
		tx:         tx,
		logger:     logger,
	}
}

func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	categoryType := models.CategoryType(req.Type)
	if !categoryType.Valid() {
		return nil, ErrInvalidCategoryType
	}

	now := time.Now()
	category := &models.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     req.Title,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.categories.Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	return categoryResponse(category), nil
}

func (s *CategoryService) List(ctx context.Context, userID uuid.UUID, skip, limit int) (*dto.CategoriesResponse, error) {
	skip, limit, err := normalizePage(skip, limit)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.ListByUser(ctx, userID, skip, limit)
	if err != nil {
		return nil, err
	}

	resp := &dto.CategoriesResponse{
		Categories: make([]dto.CategoryResponse, 0, len(categories)),
		Skip:       skip,
		Limit:      limit,
	}
	for _, category := range categories {
		resp.Categories = append(resp.Categories, *categoryResponse(category))
	}
	return resp, nil
}

func (s *CategoryService) Get(ctx context.Context, categoryID, userID uuid.UUID) (*dto.CategoryResponse, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	category, err = requireOwned(category, err, userID, ErrCategoryNotFound, ErrCategoryPermissionDenied)
	if err != nil {
		return nil, err
	}
	return categoryResponse(category), nil
}

func (s *CategoryService) Update(ctx context.Context, categoryID, userID uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	categoryType := models.CategoryType(req.Type)
	if !categoryType.Valid() {
		return nil, ErrInvalidCategoryType
	}

	var updated *models.Category
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		category, err := s.categories.GetByID(ctx, categoryID)
		category, err = requireOwned(category, err, userID, ErrCategoryNotFound, ErrCategoryPermissionDenied)
		if err != nil {
			return err
		}

		category.Title = req.Title
		category.Type = categoryType
		category.UpdatedAt = time.Now()
		if err := s.categories.Update(ctx, category); err != nil {
			return err
		}
		updated = category
		return nil
	})
	if err != nil {
		return nil, err
	}

	return categoryResponse(updated), nil
}

// Delete removes the category together with every income and expense filed
// under it.
func (s *CategoryService) Delete(ctx context.Context, categoryID, userID uuid.UUID) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		category, err := s.categories.GetByID(ctx, categoryID)
		if _, err = requireOwned(category, err, userID, ErrCategoryNotFound, ErrCategoryPermissionDenied); err != nil {
			return err
		}
		return s.categories.Delete(ctx, categoryID)
	})
}

func categoryResponse(category *models.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:     category.ID.String(),
		UserID: category.UserID.String(),
		Title:  category.Title,
		Type:   string(category.Type),
	}
}
