package repository

import (
	"context"

	"github.com/andikasp/atk-intel/internal/domain/entity"
)

// RecipientRepository reads the alert recipient list.
type RecipientRepository interface {
	// ListWithPhone returns only recipients with a non-empty phone number;
	// recipients without one are never dispatch targets.
	ListWithPhone(ctx context.Context) ([]entity.Recipient, error)
}
