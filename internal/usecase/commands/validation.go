package commands

import (
	"context"

	"venue-booking/internal/domain/shortcode"
	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"
)

type ValidationCommands interface {
	ValidateTicket(ctx context.Context, code string) (*queries.TicketView, error)
}

type validationUseCaseImpl struct {
	uow   shared.UnitOfWork
	rules shared.BookingRules
	clock clock.Clock
}

func NewValidationUseCase(uow shared.UnitOfWork, rules shared.BookingRules, clk clock.Clock) ValidationCommands {
	return &validationUseCaseImpl{uow: uow, rules: rules, clock: clk}
}

// ValidateTicket admits a paid ticket once. It is the only writer of used_at.
func (uc *validationUseCaseImpl) ValidateTicket(ctx context.Context, code string) (*queries.TicketView, error) {
	code = shortcode.Normalize(code)
	if !shortcode.IsWellFormed(code, shortcode.TicketCodeLength) {
		return nil, ticket.ErrNotFound
	}

	now := uc.clock.Now()
	today := clock.Today(uc.clock, uc.rules.Loc())

	var used *ticket.Ticket
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Tickets().FindByCode(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ticket.ErrNotFound
			}
			return err
		}
		if err := t.CheckEntry(today); err != nil {
			return err
		}

		updated, err := tx.Tickets().MarkUsed(ctx, t.ID(), today, now)
		if err != nil {
			return err
		}
		if updated == nil {
			// a concurrent validation got there first
			return ticket.ErrAlreadyUsed
		}
		used = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewTicketView(used), nil
}
