package queries

import (
	"context"

	"venue-booking/internal/domain/shortcode"
	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/infra"
	"venue-booking/internal/usecase/shared"
)

type TicketQueries interface {
	GetByCode(ctx context.Context, code string) (*TicketView, error)
}

type ticketQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewTicketQueries(uow shared.UnitOfWork) TicketQueries {
	return &ticketQueriesImpl{uow: uow}
}

func (q *ticketQueriesImpl) GetByCode(ctx context.Context, code string) (*TicketView, error) {
	code = shortcode.Normalize(code)
	if !shortcode.IsWellFormed(code, shortcode.TicketCodeLength) {
		return nil, ticket.ErrNotFound
	}

	var view *TicketView
	err := q.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Tickets().FindByCode(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ticket.ErrNotFound
			}
			return err
		}
		view = NewTicketView(t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
