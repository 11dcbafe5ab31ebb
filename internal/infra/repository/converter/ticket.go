package converter

import (
	"venue-booking/internal/domain/schedule"
	"venue-booking/internal/domain/slot"
	"venue-booking/internal/domain/ticket"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/pgconv"
)

func TicketToInsertParams(t *ticket.Ticket) sqlc.InsertTicketParams {
	return sqlc.InsertTicketParams{
		ID:                t.ID(),
		Code:              t.Code(),
		VisitorName:       pgconv.StringPtrToPgtype(t.VisitorName()),
		Email:             t.Email(),
		ReservationDate:   pgconv.DateToPgtype(t.ReservationDate()),
		SlotStart:         pgconv.TimeOfDayToPgtype(t.SlotStart()),
		SlotEnd:           pgconv.TimeOfDayToPgtype(t.SlotEnd()),
		TicketPrice:       t.TicketPrice(),
		DonationAmount:    t.DonationAmount(),
		TotalAmount:       t.TotalAmount(),
		Status:            t.Status().String(),
		CheckoutID:        pgconv.StringPtrToPgtype(t.CheckoutID()),
		CheckoutReference: pgconv.StringPtrToPgtype(t.CheckoutReference()),
		TransactionStatus: pgconv.StringPtrToPgtype(t.TransactionStatus()),
		AudienceType:      t.Audience().String(),
		CreatedAt:         pgconv.TimeToPgtype(t.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(t.UpdatedAt()),
	}
}

func TicketFromRow(row sqlc.Tickets) *ticket.Ticket {
	return ticket.Reconstruct(
		row.ID,
		row.Code,
		pgconv.StringPtrFromPgtype(row.VisitorName),
		row.Email,
		pgconv.DateFromPgtype(row.ReservationDate),
		pgconv.TimeOfDayFromPgtype(row.SlotStart),
		pgconv.TimeOfDayFromPgtype(row.SlotEnd),
		row.TicketPrice,
		row.DonationAmount,
		row.TotalAmount,
		ticket.Status(row.Status),
		pgconv.TimePtrFromPgtype(row.UsedAt),
		pgconv.StringPtrFromPgtype(row.CheckoutID),
		pgconv.StringPtrFromPgtype(row.CheckoutReference),
		pgconv.StringPtrFromPgtype(row.TransactionStatus),
		schedule.Audience(row.AudienceType),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func TicketsFromRows(rows []sqlc.Tickets) []*ticket.Ticket {
	out := make([]*ticket.Ticket, 0, len(rows))
	for _, row := range rows {
		out = append(out, TicketFromRow(row))
	}
	return out
}

func BookingsFromRows(rows []sqlc.ListBookingsByDateRow) []slot.Booking {
	out := make([]slot.Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, slot.Booking{
			TicketID: row.ID,
			Start:    pgconv.TimeOfDayFromPgtype(row.SlotStart),
			End:      pgconv.TimeOfDayFromPgtype(row.SlotEnd),
		})
	}
	return out
}
