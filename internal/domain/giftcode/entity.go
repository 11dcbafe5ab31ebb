package giftcode

import (
	"time"

	"venue-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxPackSize = 500

var (
	ErrNotFound        = errs.NotFound("gift code not found")
	ErrAlreadyUsed     = errs.Conflict("gift code already used")
	ErrExpired         = errs.Conflict("gift code expired")
	ErrInvalidQuantity = errs.Validation("pack quantity must be between 1 and 500")
	ErrExpiryInPast    = errs.Validation("pack expiry must be in the future")
	ErrInvalidStatus   = errs.Validation("invalid gift code status")
)

type Status string

const (
	StatusUnused  Status = "unused"
	StatusUsed    Status = "used"
	StatusExpired Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUnused, StatusUsed, StatusExpired:
		return true
	default:
		return false
	}
}

type GiftCode struct {
	id        uuid.UUID
	code      string
	status    Status
	packID    *uuid.UUID
	expiresAt *time.Time
	ticketID  *uuid.UUID
	usedAt    *time.Time
	createdAt time.Time
}

func New(id uuid.UUID, code string, packID *uuid.UUID, expiresAt *time.Time, now time.Time) *GiftCode {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &GiftCode{
		id:        id,
		code:      code,
		status:    StatusUnused,
		packID:    packID,
		expiresAt: expiresAt,
		createdAt: now,
	}
}

func Reconstruct(
	id uuid.UUID,
	code string,
	status Status,
	packID *uuid.UUID,
	expiresAt *time.Time,
	ticketID *uuid.UUID,
	usedAt *time.Time,
	createdAt time.Time,
) *GiftCode {
	return &GiftCode{
		id:        id,
		code:      code,
		status:    status,
		packID:    packID,
		expiresAt: expiresAt,
		ticketID:  ticketID,
		usedAt:    usedAt,
		createdAt: createdAt,
	}
}

// PastExpiry reports an unused code whose expiry has passed but that has not
// been flipped to expired yet.
func (g *GiftCode) PastExpiry(now time.Time) bool {
	return g.status == StatusUnused && g.expiresAt != nil && !now.Before(*g.expiresAt)
}

// CheckRedeemable returns nil only for an unused, unexpired code.
func (g *GiftCode) CheckRedeemable(now time.Time) error {
	switch g.status {
	case StatusUsed:
		return ErrAlreadyUsed
	case StatusExpired:
		return ErrExpired
	}
	if g.PastExpiry(now) {
		return ErrExpired
	}
	return nil
}

func (g *GiftCode) ID() uuid.UUID         { return g.id }
func (g *GiftCode) Code() string          { return g.code }
func (g *GiftCode) Status() Status        { return g.status }
func (g *GiftCode) PackID() *uuid.UUID    { return g.packID }
func (g *GiftCode) ExpiresAt() *time.Time { return g.expiresAt }
func (g *GiftCode) TicketID() *uuid.UUID  { return g.ticketID }
func (g *GiftCode) UsedAt() *time.Time    { return g.usedAt }
func (g *GiftCode) CreatedAt() time.Time  { return g.createdAt }

type PackRequest struct {
	Quantity  int
	ExpiresAt *time.Time
}

func (r PackRequest) Validate(now time.Time) error {
	if r.Quantity < 1 || r.Quantity > MaxPackSize {
		return ErrInvalidQuantity
	}
	if r.ExpiresAt != nil && !r.ExpiresAt.After(now) {
		return ErrExpiryInPast
	}
	return nil
}
