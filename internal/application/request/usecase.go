// Package request turns inbound chat commands into persisted supply requests:
// parse, resolve against the catalog, store, and build the reply text.
package request

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andikasp/atk-intel/internal/application/dto"
	"github.com/andikasp/atk-intel/internal/domain/command"
	"github.com/andikasp/atk-intel/internal/domain/entity"
	"github.com/andikasp/atk-intel/internal/domain/repository"
)

// usageHelp is sent back whenever a command fails to parse. A parse failure
// must never be a silent drop.
const usageHelp = `Format permintaan ATK:

/atk
1. Kertas HVS A4 - 5 rim
2. Pulpen - 12 pcs
Keperluan: Print laporan bulanan`

// UseCase handles one inbound command end to end.
type UseCase struct {
	itemRepo    repository.ItemRepository
	requestRepo repository.SupplyRequestRepository
	now         func() time.Time
}

// NewUseCase builds the use case.
func NewUseCase(itemRepo repository.ItemRepository, requestRepo repository.SupplyRequestRepository) *UseCase {
	return &UseCase{
		itemRepo:    itemRepo,
		requestRepo: requestRepo,
		now:         time.Now,
	}
}

// HandleCommand parses the message, matches requested names against the
// catalog and persists a SupplyRequest. Parse failures are normal outcomes:
// the response carries the usage help and no request is created. Only
// infrastructure failures (catalog read, request insert) return an error.
func (uc *UseCase) HandleCommand(ctx context.Context, sender, message string) (*dto.WebhookCommandResponse, error) {
	parsed := command.Parse(message)
	if !parsed.Valid {
		return &dto.WebhookCommandResponse{Reply: failureReply(parsed.Failure)}, nil
	}

	catalog, err := uc.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("handle command: load catalog: %w", err)
	}

	results := command.Match(parsed.Items, catalog)

	req := &entity.SupplyRequest{
		ID:        uuid.NewString(),
		Sender:    sender,
		Purpose:   parsed.Purpose,
		CreatedAt: uc.now(),
	}
	resp := &dto.WebhookCommandResponse{
		RequestID: req.ID,
		Purpose:   parsed.Purpose,
	}
	for _, r := range results {
		req.Items = append(req.Items, entity.SupplyRequestItem{
			ID:            uuid.NewString(),
			RequestID:     req.ID,
			ItemID:        r.ItemID,
			RequestedName: r.Parsed.Name,
			Quantity:      r.Parsed.Quantity,
			Unit:          r.Parsed.Unit,
		})
		if r.Matched() {
			resp.Matched = append(resp.Matched, dto.MatchedItemDTO{
				ItemID:        r.ItemID,
				RequestedName: r.Parsed.Name,
				MatchedName:   r.MatchedName,
				Quantity:      r.Parsed.Quantity,
				Unit:          r.Parsed.Unit,
			})
		} else {
			resp.Unmatched = append(resp.Unmatched, dto.UnmatchedItemDTO{
				RequestedName: r.Parsed.Name,
				Quantity:      r.Parsed.Quantity,
				Unit:          r.Parsed.Unit,
			})
		}
	}

	if err := uc.requestRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("handle command: store request: %w", err)
	}

	resp.Reply = buildReply(resp)
	return resp, nil
}

func failureReply(f command.ParseFailure) string {
	switch f {
	case command.FailureNoItems:
		return "Tidak ada item ATK yang dikenali.\n\n" + usageHelp
	default:
		return usageHelp
	}
}

// buildReply summarizes the created request for the requester.
func buildReply(resp *dto.WebhookCommandResponse) string {
	var b strings.Builder
	b.WriteString("Permintaan ATK diterima.\n")
	for _, m := range resp.Matched {
		fmt.Fprintf(&b, "- %s: %d %s\n", m.MatchedName, m.Quantity, m.Unit)
	}
	for _, u := range resp.Unmatched {
		fmt.Fprintf(&b, "- %s: %d %s (tidak ada di katalog, akan dicek admin)\n", u.RequestedName, u.Quantity, u.Unit)
	}
	if resp.Purpose != "" {
		fmt.Fprintf(&b, "Keperluan: %s\n", resp.Purpose)
	}
	return strings.TrimRight(b.String(), "\n")
}
