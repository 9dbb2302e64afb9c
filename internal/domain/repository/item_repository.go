package repository

import (
	"context"

	"github.com/andikasp/atk-intel/internal/domain/entity"
)

// ItemRepository is the persistence port for catalog items.
type ItemRepository interface {
	// ListAll returns the full catalog in stable (name) order. The matcher
	// relies on the ordering being deterministic.
	ListAll(ctx context.Context) ([]entity.Item, error)
	GetByID(ctx context.Context, id string) (*entity.Item, error)
}
