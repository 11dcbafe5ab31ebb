package commands

import (
	"context"
	"log/slog"
	"time"

	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/usecase/shared"
)

type SweepResult struct {
	TicketsCancelled int
	GiftCodesExpired int64
	Err              error
}

type SweepCommands interface {
	SweepExpired(ctx context.Context, grace time.Duration) SweepResult
}

type sweepUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher shared.Publisher
	recorder  shared.Recorder
	clock     clock.Clock
}

func NewSweepUseCase(uow shared.UnitOfWork, publisher shared.Publisher, recorder shared.Recorder, clk clock.Clock) SweepCommands {
	return &sweepUseCaseImpl{uow: uow, publisher: publisher, recorder: recorder, clock: clk}
}

// SweepExpired cancels pending tickets older than grace and expires stale
// gift codes. It never fails the caller: errors are logged and reported in
// the result, and the next cycle simply tries again.
func (uc *sweepUseCaseImpl) SweepExpired(ctx context.Context, grace time.Duration) SweepResult {
	now := uc.clock.Now()
	cutoff := now.Add(-grace)

	var (
		dates  []time.Time
		result SweepResult
	)
	err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		cancelled, err := tx.Tickets().CancelStalePending(ctx, cutoff, now)
		if err != nil {
			return err
		}
		dates = cancelled

		expired, err := tx.GiftCodes().ExpireStale(ctx, now)
		if err != nil {
			return err
		}
		result.GiftCodesExpired = expired
		return nil
	})
	result.TicketsCancelled = len(dates)
	if err != nil {
		slog.Error("expiry sweep failed",
			"cutoff", cutoff,
			"tickets_cancelled", result.TicketsCancelled,
			"error", err.Error())
		result.Err = err
	}

	if result.TicketsCancelled > 0 {
		uc.recorder.TicketsSwept(result.TicketsCancelled)
		publishAvailability(ctx, uc.publisher, dates...)
	}
	if result.GiftCodesExpired > 0 {
		uc.recorder.GiftCodesExpired(int(result.GiftCodesExpired))
	}

	slog.Info("expiry sweep finished",
		"tickets_cancelled", result.TicketsCancelled,
		"gift_codes_expired", result.GiftCodesExpired,
		"grace", grace.String())
	return result
}
