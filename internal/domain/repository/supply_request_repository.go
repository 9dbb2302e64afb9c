package repository

import (
	"context"

	"github.com/andikasp/atk-intel/internal/domain/entity"
)

// SupplyRequestRepository persists requests created from parsed commands.
// Create stores the request header and all its line items atomically.
type SupplyRequestRepository interface {
	Create(ctx context.Context, req *entity.SupplyRequest) error
}
