// Package alerting fans the urgent-restock digest out to the recipient list
// over the messaging gateway, with per-recipient failure isolation.
package alerting

import (
	"context"
	"fmt"

	"github.com/andikasp/atk-intel/internal/application/dto"
	"github.com/andikasp/atk-intel/internal/domain/entity"
	"github.com/andikasp/atk-intel/internal/domain/repository"
	"github.com/andikasp/atk-intel/pkg/logger"
)

// Dispatcher sends the urgent-restock digest to every configured recipient.
type Dispatcher struct {
	gateway       MessageGateway
	recipientRepo repository.RecipientRepository
	leadTimeDays  int
	log           *logger.Logger
}

// NewDispatcher builds the dispatcher.
func NewDispatcher(
	gateway MessageGateway,
	recipientRepo repository.RecipientRepository,
	leadTimeDays int,
	log *logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		gateway:       gateway,
		recipientRepo: recipientRepo,
		leadTimeDays:  leadTimeDays,
		log:           log,
	}
}

// DispatchToAll loads the phone-bearing recipients and runs Dispatch. With no
// urgent forecasts it is a no-op: no recipients are loaded or contacted.
func (d *Dispatcher) DispatchToAll(ctx context.Context, urgent []dto.PredictionDTO) (dto.DispatchReportDTO, error) {
	if len(urgent) == 0 {
		return dto.DispatchReportDTO{Outcomes: []dto.DispatchOutcomeDTO{}}, nil
	}
	recipients, err := d.recipientRepo.ListWithPhone(ctx)
	if err != nil {
		return dto.DispatchReportDTO{}, fmt.Errorf("dispatch: list recipients: %w", err)
	}
	return d.Dispatch(ctx, urgent, recipients), nil
}

// Dispatch sends one digest per recipient, sequentially. A delivery failure
// for one recipient is recorded and logged but never stops the remaining
// sends; the report carries the exact attempt count and per-recipient result.
func (d *Dispatcher) Dispatch(ctx context.Context, urgent []dto.PredictionDTO, recipients []entity.Recipient) dto.DispatchReportDTO {
	report := dto.DispatchReportDTO{Outcomes: []dto.DispatchOutcomeDTO{}}
	if len(urgent) == 0 {
		return report
	}

	digest := BuildDigest(urgent, d.leadTimeDays)

	for _, r := range recipients {
		if r.Phone == "" {
			continue
		}
		report.Attempted++
		outcome := dto.DispatchOutcomeDTO{Recipient: r.DisplayName, Phone: r.Phone}
		if err := d.gateway.SendMessage(ctx, r.Phone, digest); err != nil {
			outcome.Error = err.Error()
			d.log.Warn().
				Err(err).
				Str("recipient", r.DisplayName).
				Msg("restock digest delivery failed")
		} else {
			outcome.Success = true
			d.log.Info().
				Str("recipient", r.DisplayName).
				Int("urgent_items", len(urgent)).
				Msg("restock digest sent")
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}
	return report
}
