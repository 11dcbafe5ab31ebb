//go:build unit || e2e

package builder

import (
	"time"

	"venue-booking/internal/domain/giftcode"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/pgconv"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type GiftCodeBuilder struct {
	ID        uuid.UUID
	Code      string
	Status    giftcode.Status
	PackID    *uuid.UUID
	ExpiresAt *time.Time
	TicketID  *uuid.UUID
	UsedAt    *time.Time
	CreatedAt time.Time
}

func NewGiftCodeBuilder() *GiftCodeBuilder {
	return &GiftCodeBuilder{
		ID:        uuid.New(),
		Code:      "GIFT00000001",
		Status:    giftcode.StatusUnused,
		CreatedAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *GiftCodeBuilder) With(mutate func(*GiftCodeBuilder)) *GiftCodeBuilder {
	mutate(b)
	return b
}

func (b *GiftCodeBuilder) WithCode(code string) *GiftCodeBuilder {
	b.Code = code
	return b
}

func (b *GiftCodeBuilder) WithStatus(s giftcode.Status) *GiftCodeBuilder {
	b.Status = s
	return b
}

func (b *GiftCodeBuilder) ExpiringAt(t time.Time) *GiftCodeBuilder {
	b.ExpiresAt = &t
	return b
}

func (b *GiftCodeBuilder) BuildDomain() *giftcode.GiftCode {
	return giftcode.Reconstruct(b.ID, b.Code, b.Status, b.PackID, b.ExpiresAt, b.TicketID, b.UsedAt, b.CreatedAt)
}

func (b *GiftCodeBuilder) BuildInfra() sqlc.GiftCodes {
	return sqlc.GiftCodes{
		ID:        b.ID,
		Code:      b.Code,
		Status:    b.Status.String(),
		PackID:    pgconv.UUIDPtrToPgtype(b.PackID),
		ExpiresAt: pgconv.TimePtrToPgtype(b.ExpiresAt),
		TicketID:  pgconv.UUIDPtrToPgtype(b.TicketID),
		UsedAt:    pgconv.TimePtrToPgtype(b.UsedAt),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *GiftCodeBuilder) BuildView() *queries.GiftCodeView {
	return queries.NewGiftCodeView(b.BuildDomain())
}
