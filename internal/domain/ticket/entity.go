package ticket

import (
	"net/mail"
	"strings"
	"time"

	"venue-booking/internal/domain/schedule"
	"venue-booking/internal/pkg/timeofday"

	"github.com/google/uuid"
)

const MaxVisitorNameLength = 200

// Details is what a visitor submits for one ticket.
type Details struct {
	VisitorName     *string
	Email           string
	ReservationDate time.Time
	SlotStart       timeofday.TimeOfDay
	SlotEnd         timeofday.TimeOfDay
	TicketPrice     int64
	DonationAmount  int64
	Audience        schedule.Audience
}

// Validate checks the shape of the details. today is midnight UTC of the
// venue's current date.
func (d Details) Validate(today time.Time) error {
	if err := d.validateShape(); err != nil {
		return err
	}
	if d.ReservationDate.Before(today) {
		return ErrDateInPast
	}
	return nil
}

func (d Details) validateShape() error {
	if !validEmail(d.Email) {
		return ErrInvalidEmail
	}
	if d.VisitorName != nil && len(*d.VisitorName) > MaxVisitorNameLength {
		return ErrNameTooLong
	}
	if d.TicketPrice < 0 || d.DonationAmount < 0 {
		return ErrNegativeAmount
	}
	if !d.SlotStart.Before(d.SlotEnd) {
		return ErrInvalidSlot
	}
	if d.Audience != "" && !d.Audience.IsValid() {
		return schedule.ErrInvalidAudience
	}
	return nil
}

func (d Details) Total() int64 {
	return d.TicketPrice + d.DonationAmount
}

func validEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

type Checkout struct {
	ID        string
	Reference string
}

type Ticket struct {
	id                uuid.UUID
	code              string
	visitorName       *string
	email             string
	reservationDate   time.Time
	slotStart         timeofday.TimeOfDay
	slotEnd           timeofday.TimeOfDay
	ticketPrice       int64
	donationAmount    int64
	totalAmount       int64
	status            Status
	usedAt            *time.Time
	checkoutID        *string
	checkoutReference *string
	transactionStatus *string
	audience          schedule.Audience
	createdAt         time.Time
	updatedAt         time.Time
}

// New builds a pending ticket. The code must already be claimed and the
// reservation date checked against the venue calendar by the caller.
func New(id uuid.UUID, code string, d Details, now time.Time) (*Ticket, error) {
	if err := d.validateShape(); err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	audience := d.Audience
	if audience == "" {
		audience = schedule.AudiencePublic
	}

	return &Ticket{
		id:              id,
		code:            code,
		visitorName:     trimmed(d.VisitorName),
		email:           strings.TrimSpace(d.Email),
		reservationDate: d.ReservationDate,
		slotStart:       d.SlotStart,
		slotEnd:         d.SlotEnd,
		ticketPrice:     d.TicketPrice,
		donationAmount:  d.DonationAmount,
		totalAmount:     d.Total(),
		status:          StatusPending,
		audience:        audience,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	code string,
	visitorName *string,
	email string,
	reservationDate time.Time,
	slotStart, slotEnd timeofday.TimeOfDay,
	ticketPrice, donationAmount, totalAmount int64,
	status Status,
	usedAt *time.Time,
	checkoutID, checkoutReference, transactionStatus *string,
	audience schedule.Audience,
	createdAt, updatedAt time.Time,
) *Ticket {
	return &Ticket{
		id:                id,
		code:              code,
		visitorName:       visitorName,
		email:             email,
		reservationDate:   reservationDate,
		slotStart:         slotStart,
		slotEnd:           slotEnd,
		ticketPrice:       ticketPrice,
		donationAmount:    donationAmount,
		totalAmount:       totalAmount,
		status:            status,
		usedAt:            usedAt,
		checkoutID:        checkoutID,
		checkoutReference: checkoutReference,
		transactionStatus: transactionStatus,
		audience:          audience,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// AttachCheckout tags a not-yet-persisted ticket with its payment session.
func (t *Ticket) AttachCheckout(c Checkout) {
	t.checkoutID = &c.ID
	t.checkoutReference = &c.Reference
}

// SettleWithoutPayment marks a not-yet-persisted zero-total ticket as paid.
func (t *Ticket) SettleWithoutPayment() {
	status := "no_payment_required"
	t.status = StatusPaid
	t.transactionStatus = &status
}

// CheckEntry applies the door rules in order: used, not paid, stale date.
func (t *Ticket) CheckEntry(today time.Time) error {
	if t.status == StatusUsed || t.usedAt != nil {
		return ErrAlreadyUsed
	}
	if t.status != StatusPaid {
		return ErrInvalidState
	}
	if t.reservationDate.Before(today) {
		return ErrReservationStale
	}
	return nil
}

func (t *Ticket) IsPending() bool { return t.status == StatusPending }

func (t *Ticket) HasDonation() bool { return t.donationAmount > 0 }

func (t *Ticket) ID() uuid.UUID                  { return t.id }
func (t *Ticket) Code() string                   { return t.code }
func (t *Ticket) VisitorName() *string           { return t.visitorName }
func (t *Ticket) Email() string                  { return t.email }
func (t *Ticket) ReservationDate() time.Time     { return t.reservationDate }
func (t *Ticket) SlotStart() timeofday.TimeOfDay { return t.slotStart }
func (t *Ticket) SlotEnd() timeofday.TimeOfDay   { return t.slotEnd }
func (t *Ticket) TicketPrice() int64             { return t.ticketPrice }
func (t *Ticket) DonationAmount() int64          { return t.donationAmount }
func (t *Ticket) TotalAmount() int64             { return t.totalAmount }
func (t *Ticket) Status() Status                 { return t.status }
func (t *Ticket) UsedAt() *time.Time             { return t.usedAt }
func (t *Ticket) CheckoutID() *string            { return t.checkoutID }
func (t *Ticket) CheckoutReference() *string     { return t.checkoutReference }
func (t *Ticket) TransactionStatus() *string     { return t.transactionStatus }
func (t *Ticket) Audience() schedule.Audience    { return t.audience }
func (t *Ticket) CreatedAt() time.Time           { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time           { return t.updatedAt }

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
