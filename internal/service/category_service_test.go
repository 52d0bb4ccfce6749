package service

import (
	"context"
	"fmt"
	"testing"

	"coinkeeper/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCategoryService() (*CategoryService, *fakeCategoryStore) {
	store := newFakeCategoryStore()
	return NewCategoryService(store, fakeTx{}, zap.NewNop()), store
}

func TestCategoryCreate(t *testing.T) {
	svc, _ := newCategoryService()
	userID := uuid.New()

	resp, err := svc.Create(context.Background(), userID, &dto.CreateCategoryRequest{
		Title: "Groceries",
		Type:  "expense",
	})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", resp.Title)
	assert.Equal(t, "expense", resp.Type)
	assert.Equal(t, userID.String(), resp.UserID)
}

func TestCategoryCreateInvalidType(t *testing.T) {
	svc, store := newCategoryService()

	for _, typ := range []string{"", "savings", "Expense"} {
		_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateCategoryRequest{
			Title: "Broken",
			Type:  typ,
		})
		assert.ErrorIs(t, err, ErrInvalidCategoryType, "type %q", typ)
	}
	assert.Empty(t, store.categories)
}

func TestCategoryListOnlyOwn(t *testing.T) {
	svc, _ := newCategoryService()
	owner := uuid.New()
	stranger := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), owner, &dto.CreateCategoryRequest{
			Title: fmt.Sprintf("category %d", i),
			Type:  "expense",
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), stranger, &dto.CreateCategoryRequest{
		Title: "not yours",
		Type:  "income",
	})
	require.NoError(t, err)

	resp, err := svc.List(context.Background(), owner, 0, 0)
	require.NoError(t, err)
	assert.Len(t, resp.Categories, 3)
	assert.Equal(t, 10, resp.Limit)

	paged, err := svc.List(context.Background(), owner, 2, 10)
	require.NoError(t, err)
	assert.Len(t, paged.Categories, 1)

	_, err = svc.List(context.Background(), owner, -1, 10)
	assert.ErrorIs(t, err, ErrInvalidPagination)
}

func TestCategoryGetOwnership(t *testing.T) {
	svc, _ := newCategoryService()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateCategoryRequest{
		Title: "Groceries",
		Type:  "expense",
	})
	require.NoError(t, err)
	categoryID := uuid.MustParse(created.ID)

	got, err := svc.Get(context.Background(), categoryID, owner)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Get(context.Background(), categoryID, uuid.New())
	assert.ErrorIs(t, err, ErrCategoryPermissionDenied)

	_, err = svc.Get(context.Background(), uuid.New(), owner)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryUpdate(t *testing.T) {
	svc, _ := newCategoryService()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateCategoryRequest{
		Title: "Groceries",
		Type:  "expense",
	})
	require.NoError(t, err)
	categoryID := uuid.MustParse(created.ID)

	updated, err := svc.Update(context.Background(), categoryID, owner, &dto.UpdateCategoryRequest{
		Title: "Food",
		Type:  "expense",
	})
	require.NoError(t, err)
	assert.Equal(t, "Food", updated.Title)

	_, err = svc.Update(context.Background(), categoryID, uuid.New(), &dto.UpdateCategoryRequest{
		Title: "Hijacked",
		Type:  "expense",
	})
	assert.ErrorIs(t, err, ErrCategoryPermissionDenied)

	_, err = svc.Update(context.Background(), categoryID, owner, &dto.UpdateCategoryRequest{
		Title: "Food",
		Type:  "bogus",
	})
	assert.ErrorIs(t, err, ErrInvalidCategoryType)
}

func TestCategoryDelete(t *testing.T) {
	svc, _ := newCategoryService()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateCategoryRequest{
		Title: "Groceries",
		Type:  "expense",
	})
	require.NoError(t, err)
	categoryID := uuid.MustParse(created.ID)

	err = svc.Delete(context.Background(), categoryID, uuid.New())
	assert.ErrorIs(t, err, ErrCategoryPermissionDenied)

	require.NoError(t, svc.Delete(context.Background(), categoryID, owner))

	err = svc.Delete(context.Background(), categoryID, owner)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
