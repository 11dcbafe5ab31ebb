package ticket

import "venue-booking/internal/pkg/errs"

var (
	ErrInvalidEmail     = errs.Validation("a valid contact email is required")
	ErrNegativeAmount   = errs.Validation("ticket price and donation must not be negative")
	ErrInvalidSlot      = errs.Validation("slot must end after it starts")
	ErrDateInPast       = errs.Validation("reservation date is in the past")
	ErrVenueClosed      = errs.Validation("venue is closed on the requested date")
	ErrOutsideOpening   = errs.Validation("slot is outside opening hours")
	ErrNotPlannedSlot   = errs.Validation("slot is not one of the offered slots")
	ErrInvalidStatus    = errs.Validation("invalid ticket status")
	ErrEmptyBasket      = errs.Validation("basket has no items")
	ErrNameTooLong      = errs.Validation("visitor name is too long")
	ErrSlotFull         = errs.Conflict("slot is fully booked")
	ErrNotFound         = errs.NotFound("ticket not found")
	ErrAlreadyUsed      = errs.Conflict("ticket already used")
	ErrInvalidState     = errs.Conflict("ticket is not valid for entry")
	ErrNotPending       = errs.Conflict("ticket is no longer pending")
	ErrReservationStale = errs.Conflict("reservation date has passed")
	ErrPaymentSession   = errs.External("payment session could not be opened")
)
