package commands

import (
	"context"
	"time"

	"venue-booking/internal/domain/giftcode"
	"venue-booking/internal/domain/shortcode"
	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type PackResult struct {
	PackID    uuid.UUID
	ExpiresAt *time.Time
	Codes     []*queries.GiftCodeView
}

type GiftCodeCommands interface {
	CreatePack(ctx context.Context, req giftcode.PackRequest) (*PackResult, error)
	Validate(ctx context.Context, code string) (*queries.GiftCodeView, error)
	Redeem(ctx context.Context, code string, ticketID uuid.UUID) (*queries.GiftCodeView, error)
}

type giftCodeUseCaseImpl struct {
	uow      shared.UnitOfWork
	codes    *shortcode.Generator
	recorder shared.Recorder
	clock    clock.Clock
}

func NewGiftCodeUseCase(uow shared.UnitOfWork, recorder shared.Recorder, clk clock.Clock) GiftCodeCommands {
	return &giftCodeUseCaseImpl{
		uow:      uow,
		codes:    shortcode.NewGiftCodeGenerator(),
		recorder: recorder,
		clock:    clk,
	}
}

// CreatePack issues req.Quantity codes under one pack id, all or nothing.
func (uc *giftCodeUseCaseImpl) CreatePack(ctx context.Context, req giftcode.PackRequest) (*PackResult, error) {
	now := uc.clock.Now()
	if err := req.Validate(now); err != nil {
		return nil, err
	}

	packID := uuid.New()
	var issued []*giftcode.GiftCode
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		issued = make([]*giftcode.GiftCode, 0, req.Quantity)
		for range req.Quantity {
			var g *giftcode.GiftCode
			_, err := uc.codes.Issue(ctx, tx.GiftCodes().CodeExists, func(ctx context.Context, code string) error {
				candidate := giftcode.New(uuid.New(), code, &packID, req.ExpiresAt, now)
				if err := tx.GiftCodes().Insert(ctx, candidate); err != nil {
					return err
				}
				g = candidate
				return nil
			})
			if err != nil {
				return errs.Wrapf(err, "issue gift code %d of %d", len(issued)+1, req.Quantity)
			}
			issued = append(issued, g)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &PackResult{PackID: packID, ExpiresAt: req.ExpiresAt}
	for _, g := range issued {
		result.Codes = append(result.Codes, queries.NewGiftCodeView(g))
	}
	return result, nil
}

// Validate returns a redeemable code. An unused code past its expiry is
// flipped to expired before ErrExpired is returned.
func (uc *giftCodeUseCaseImpl) Validate(ctx context.Context, code string) (*queries.GiftCodeView, error) {
	code = shortcode.Normalize(code)
	now := uc.clock.Now()

	var (
		found   *giftcode.GiftCode
		expired bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, err := findGiftCode(ctx, tx, code)
		if err != nil {
			return err
		}
		found = g
		expired, err = expireIfStale(ctx, tx, g, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	if expired {
		uc.recorder.GiftCodesExpired(1)
		return nil, giftcode.ErrExpired
	}
	if err := found.CheckRedeemable(now); err != nil {
		return nil, err
	}
	return queries.NewGiftCodeView(found), nil
}

func (uc *giftCodeUseCaseImpl) Redeem(ctx context.Context, code string, ticketID uuid.UUID) (*queries.GiftCodeView, error) {
	code = shortcode.Normalize(code)
	now := uc.clock.Now()

	var (
		redeemed *giftcode.GiftCode
		expired  bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Tickets().FindByID(ctx, ticketID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ticket.ErrNotFound
			}
			return err
		}

		g, err := findGiftCode(ctx, tx, code)
		if err != nil {
			return err
		}
		if expired, err = expireIfStale(ctx, tx, g, now); err != nil || expired {
			return err
		}
		if err := redeemIn(ctx, tx, g, ticketID, now); err != nil {
			return err
		}
		redeemed, err = findGiftCode(ctx, tx, code)
		return err
	})
	if err != nil {
		return nil, err
	}
	if expired {
		uc.recorder.GiftCodesExpired(1)
		return nil, giftcode.ErrExpired
	}

	uc.recorder.GiftCodesRedeemed(1)
	return queries.NewGiftCodeView(redeemed), nil
}

func findGiftCode(ctx context.Context, tx shared.Tx, code string) (*giftcode.GiftCode, error) {
	if !shortcode.IsWellFormed(code, shortcode.GiftCodeLength) {
		return nil, giftcode.ErrNotFound
	}
	g, err := tx.GiftCodes().FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, giftcode.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func expireIfStale(ctx context.Context, tx shared.Tx, g *giftcode.GiftCode, now time.Time) (bool, error) {
	if !g.PastExpiry(now) {
		return false, nil
	}
	if err := tx.GiftCodes().MarkExpired(ctx, g.ID()); err != nil {
		return false, errs.Wrap(err, "expire gift code")
	}
	return true, nil
}

// redeemIn re-checks g and binds it to ticketID with a conditional update.
// Losing a concurrent redemption yields ErrAlreadyUsed.
func redeemIn(ctx context.Context, tx shared.Tx, g *giftcode.GiftCode, ticketID uuid.UUID, now time.Time) error {
	if err := g.CheckRedeemable(now); err != nil {
		return err
	}
	ok, err := tx.GiftCodes().Redeem(ctx, g.ID(), ticketID, now)
	if err != nil {
		return errs.Wrap(err, "redeem gift code")
	}
	if !ok {
		return giftcode.ErrAlreadyUsed
	}
	return nil
}
