package service

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// CurrencyService handles currency reference-data reads.
type CurrencyService struct {
	storage *storage.Storage
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(store *storage.Storage) *CurrencyService {
	return &CurrencyService{storage: store}
}

// ListCurrencies returns all currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]Currency, error) {
	rows, err := s.storage.Currencies.List(ctx)
	if err != nil {
		return nil, err
	}

	currencies := make([]Currency, len(rows))
	for i, row := range rows {
		currencies[i] = currencyFromStorage(row)
	}
	return currencies, nil
}
