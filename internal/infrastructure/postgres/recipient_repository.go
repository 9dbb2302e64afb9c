package postgres

import (
	"context"
	"fmt"

	"github.com/andikasp/atk-intel/internal/domain/entity"
	"github.com/andikasp/atk-intel/internal/domain/repository"
)

var _ repository.RecipientRepository = (*RecipientRepo)(nil)

// RecipientRepo reads alert recipients.
type RecipientRepo struct {
	q Querier
}

// NewRecipientRepository builds the adapter.
func NewRecipientRepository(q Querier) *RecipientRepo {
	return &RecipientRepo{q: q}
}

func (r *RecipientRepo) ListWithPhone(ctx context.Context) ([]entity.Recipient, error) {
	query := `
		SELECT id, display_name, phone
		FROM recipients
		WHERE phone IS NOT NULL AND phone <> ''
		ORDER BY display_name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}
	defer rows.Close()

	var list []entity.Recipient
	for rows.Next() {
		var rec entity.Recipient
		if err := rows.Scan(&rec.ID, &rec.DisplayName, &rec.Phone); err != nil {
			return nil, fmt.Errorf("scan recipient: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
