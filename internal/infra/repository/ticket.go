package repository

import (
	"context"
	"time"

	"venue-booking/internal/domain/payment"
	"venue-booking/internal/domain/shortcode"
	"venue-booking/internal/domain/slot"
	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/repository/converter"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TicketQueries interface {
	InsertTicket(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertTicketParams) (uuid.UUID, error)
	TicketCodeExists(ctx context.Context, db sqlc.DBTX, code string) (bool, error)
	GetTicketByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Tickets, error)
	GetTicketByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Tickets, error)
	ListBookingsByDate(ctx context.Context, db sqlc.DBTX, reservationDate pgtype.Date) ([]sqlc.ListBookingsByDateRow, error)
	LockReservationDate(ctx context.Context, db sqlc.DBTX, reservationDate pgtype.Date) error
	TransitionTicketsByCheckoutID(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionTicketsByCheckoutIDParams) ([]sqlc.Tickets, error)
	TransitionTicketsByCheckoutReference(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionTicketsByCheckoutReferenceParams) ([]sqlc.Tickets, error)
	TransitionPendingTicket(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionPendingTicketParams) (sqlc.Tickets, error)
	MarkTicketUsed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkTicketUsedParams) (sqlc.Tickets, error)
	CancelStalePendingTickets(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelStalePendingTicketsParams) ([]pgtype.Date, error)
	CountTicketsByCheckoutID(ctx context.Context, db sqlc.DBTX, arg sqlc.CountTicketsByCheckoutIDParams) (int64, error)
	CountTicketsByCheckoutReference(ctx context.Context, db sqlc.DBTX, arg sqlc.CountTicketsByCheckoutReferenceParams) (int64, error)
}

var errUnknownCheckoutKey = errs.New("unknown checkout key field")

type TicketRepository struct {
	queries TicketQueries
	db      sqlc.DBTX
}

func NewTicketRepository(queries TicketQueries, db sqlc.DBTX) *TicketRepository {
	return &TicketRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TicketRepository) Insert(ctx context.Context, t *ticket.Ticket) error {
	_, err := r.queries.InsertTicket(ctx, r.db, converter.TicketToInsertParams(t))
	if pgconv.IsNoRows(err) {
		// ON CONFLICT (code) DO NOTHING returned nothing
		return shortcode.ErrCodeTaken
	}
	if err != nil {
		return infra.WrapRepoErr("failed to insert ticket", err)
	}
	return nil
}

func (r *TicketRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	exists, err := r.queries.TicketCodeExists(ctx, r.db, code)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check ticket code", err)
	}
	return exists, nil
}

func (r *TicketRepository) FindByCode(ctx context.Context, code string) (*ticket.Ticket, error) {
	row, err := r.queries.GetTicketByCode(ctx, r.db, code)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get ticket by code", err)
	}
	return converter.TicketFromRow(row), nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	row, err := r.queries.GetTicketByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get ticket by id", err)
	}
	return converter.TicketFromRow(row), nil
}

func (r *TicketRepository) ListBookings(ctx context.Context, date time.Time) ([]slot.Booking, error) {
	rows, err := r.queries.ListBookingsByDate(ctx, r.db, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return converter.BookingsFromRows(rows), nil
}

func (r *TicketRepository) LockDate(ctx context.Context, date time.Time) error {
	if err := r.queries.LockReservationDate(ctx, r.db, pgconv.DateToPgtype(date)); err != nil {
		return infra.WrapRepoErr("failed to lock reservation date", err)
	}
	return nil
}

func (r *TicketRepository) TransitionCheckout(ctx context.Context, key payment.Key, to ticket.Status, transactionStatus string, now time.Time) ([]*ticket.Ticket, error) {
	var (
		rows []sqlc.Tickets
		err  error
	)
	switch key.Field {
	case payment.KeyCheckoutID:
		rows, err = r.queries.TransitionTicketsByCheckoutID(ctx, r.db, sqlc.TransitionTicketsByCheckoutIDParams{
			CheckoutID:        pgconv.StringToPgtype(key.Value),
			Status:            to.String(),
			TransactionStatus: pgconv.StringToPgtype(transactionStatus),
			UpdatedAt:         pgconv.TimeToPgtype(now),
		})
	case payment.KeyCheckoutReference:
		rows, err = r.queries.TransitionTicketsByCheckoutReference(ctx, r.db, sqlc.TransitionTicketsByCheckoutReferenceParams{
			CheckoutReference: pgconv.StringToPgtype(key.Value),
			Status:            to.String(),
			TransactionStatus: pgconv.StringToPgtype(transactionStatus),
			UpdatedAt:         pgconv.TimeToPgtype(now),
		})
	default:
		return nil, errs.Wrapf(errUnknownCheckoutKey, "field=%s", key.Field)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to transition checkout tickets", err)
	}
	return converter.TicketsFromRows(rows), nil
}

func (r *TicketRepository) CountCheckout(ctx context.Context, key payment.Key, status ticket.Status) (int, error) {
	var (
		n   int64
		err error
	)
	switch key.Field {
	case payment.KeyCheckoutID:
		n, err = r.queries.CountTicketsByCheckoutID(ctx, r.db, sqlc.CountTicketsByCheckoutIDParams{
			CheckoutID: pgconv.StringToPgtype(key.Value),
			Status:     status.String(),
		})
	case payment.KeyCheckoutReference:
		n, err = r.queries.CountTicketsByCheckoutReference(ctx, r.db, sqlc.CountTicketsByCheckoutReferenceParams{
			CheckoutReference: pgconv.StringToPgtype(key.Value),
			Status:            status.String(),
		})
	default:
		return 0, errs.Wrapf(errUnknownCheckoutKey, "field=%s", key.Field)
	}
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count checkout tickets", err)
	}
	return int(n), nil
}

func (r *TicketRepository) TransitionPending(ctx context.Context, id uuid.UUID, to ticket.Status, transactionStatus string, now time.Time) (*ticket.Ticket, error) {
	row, err := r.queries.TransitionPendingTicket(ctx, r.db, sqlc.TransitionPendingTicketParams{
		ID:                id,
		Status:            to.String(),
		TransactionStatus: pgconv.StringToPgtype(transactionStatus),
		UpdatedAt:         pgconv.TimeToPgtype(now),
	})
	if pgconv.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to transition pending ticket", err)
	}
	return converter.TicketFromRow(row), nil
}

func (r *TicketRepository) MarkUsed(ctx context.Context, id uuid.UUID, today, now time.Time) (*ticket.Ticket, error) {
	row, err := r.queries.MarkTicketUsed(ctx, r.db, sqlc.MarkTicketUsedParams{
		ID:     id,
		Today:  pgconv.DateToPgtype(today),
		UsedAt: pgconv.TimeToPgtype(now),
	})
	if pgconv.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to mark ticket used", err)
	}
	return converter.TicketFromRow(row), nil
}

func (r *TicketRepository) CancelStalePending(ctx context.Context, createdBefore, now time.Time) ([]time.Time, error) {
	dates, err := r.queries.CancelStalePendingTickets(ctx, r.db, sqlc.CancelStalePendingTicketsParams{
		CreatedBefore: pgconv.TimeToPgtype(createdBefore),
		UpdatedAt:     pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to cancel stale pending tickets", err)
	}
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		out = append(out, pgconv.DateFromPgtype(d))
	}
	return out, nil
}
