package service

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// CategoryService handles category read paths.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// ListCategories returns all categories owned by the user.
func (s *CategoryService) ListCategories(ctx context.Context, userID int64) ([]Category, error) {
	rows, err := s.storage.Categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = categoryFromStorage(row)
	}
	return categories, nil
}
