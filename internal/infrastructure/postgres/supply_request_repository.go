package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andikasp/atk-intel/internal/domain/entity"
	"github.com/andikasp/atk-intel/internal/domain/repository"
)

var _ repository.SupplyRequestRepository = (*SupplyRequestRepo)(nil)

// SupplyRequestRepo persists supply requests. Needs the pool (not a Querier)
// because Create opens its own transaction for the header plus line items.
type SupplyRequestRepo struct {
	pool *pgxpool.Pool
}

// NewSupplyRequestRepository builds the adapter.
func NewSupplyRequestRepository(pool *pgxpool.Pool) *SupplyRequestRepo {
	return &SupplyRequestRepo{pool: pool}
}

// Create inserts the request and all its items in one transaction.
func (r *SupplyRequestRepo) Create(ctx context.Context, req *entity.SupplyRequest) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO supply_requests (id, sender, purpose, created_at)
		VALUES ($1, $2, $3, $4)`,
		req.ID, req.Sender, req.Purpose, req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supply request: %w", err)
	}

	for _, item := range req.Items {
		// item_id is nullable: unmatched lines keep only the requested name.
		var itemID any
		if item.ItemID != "" {
			itemID = item.ItemID
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO supply_request_items (id, request_id, item_id, requested_name, quantity, unit)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, req.ID, itemID, item.RequestedName, item.Quantity, item.Unit,
		)
		if err != nil {
			return fmt.Errorf("insert supply request item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
