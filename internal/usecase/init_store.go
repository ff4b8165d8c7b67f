package usecase

import (
	"context"
	"fmt"

	"github.com/fittrack/fittrack/internal/domain"
)

// InitStoreOutput contains the result of initializing the store.
type InitStoreOutput struct{}

// InitStore is the use case for first-time setup.
type InitStore struct {
	store domain.StoreInitializer
}

// NewInitStore creates a new InitStore use case.
func NewInitStore(store domain.StoreInitializer) *InitStore {
	return &InitStore{store: store}
}

// Execute creates the store file if it doesn't exist.
func (uc *InitStore) Execute(_ context.Context) (*InitStoreOutput, error) {
	if err := uc.store.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}
	return &InitStoreOutput{}, nil
}
