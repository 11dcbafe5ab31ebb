package commands

import (
	"context"
	"log/slog"

	"venue-booking/internal/domain/payment"
	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/usecase/shared"
)

type ReconcileResult struct {
	EventID string
	Outcome payment.Outcome
	Updated int
}

type WebhookCommands interface {
	ReconcileWebhook(ctx context.Context, event payment.Event) (*ReconcileResult, error)
}

type webhookUseCaseImpl struct {
	uow       shared.UnitOfWork
	notifier  shared.Notifier
	publisher shared.Publisher
	recorder  shared.Recorder
	clock     clock.Clock
}

func NewWebhookUseCase(
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	publisher shared.Publisher,
	recorder shared.Recorder,
	clk clock.Clock,
) WebhookCommands {
	return &webhookUseCaseImpl{
		uow:       uow,
		notifier:  notifier,
		publisher: publisher,
		recorder:  recorder,
		clock:     clk,
	}
}

// ReconcileWebhook applies one provider event to every still-pending ticket
// of its checkout. Replays and out-of-order deliveries find nothing pending
// and succeed without side effects; notifications follow only rows this call
// actually moved to paid.
func (uc *webhookUseCaseImpl) ReconcileWebhook(ctx context.Context, event payment.Event) (*ReconcileResult, error) {
	res := payment.Classify(event)
	result := &ReconcileResult{EventID: event.EventID(), Outcome: res.Outcome}

	if !res.IsTerminal() {
		uc.recorder.WebhookEvent(event.EventType(), "ignored")
		slog.Debug("webhook event acknowledged without action",
			"event_id", event.EventID(),
			"event_type", event.EventType())
		return result, nil
	}

	to := ticket.StatusPaid
	if res.Outcome == payment.OutcomeCancelled {
		to = ticket.StatusCancelled
	}

	var (
		updated  []*ticket.Ticket
		released int
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Tickets().TransitionCheckout(ctx, res.Key, to, res.TransactionStatus, uc.clock.Now())
		if err != nil {
			return err
		}
		updated = rows
		if len(rows) == 0 && res.Outcome == payment.OutcomePaid {
			// money taken for holds the sweeper already gave back
			released, err = tx.Tickets().CountCheckout(ctx, res.Key, ticket.StatusCancelled)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.recorder.WebhookEvent(event.EventType(), "error")
		return nil, err
	}

	result.Updated = len(updated)
	if released > 0 {
		uc.recorder.WebhookEvent(event.EventType(), "paid_after_release")
		slog.Error("payment captured for cancelled tickets, refund required",
			"event_id", event.EventID(),
			"event_type", event.EventType(),
			"key", string(res.Key.Field),
			"value", res.Key.Value,
			"tickets", released)
		return result, nil
	}
	if len(updated) == 0 {
		uc.recorder.WebhookEvent(event.EventType(), "noop")
		slog.Info("webhook event matched no pending tickets",
			"event_id", event.EventID(),
			"event_type", event.EventType(),
			"key", string(res.Key.Field))
		return result, nil
	}

	uc.recorder.WebhookEvent(event.EventType(), res.Outcome.String())
	slog.Info("webhook event reconciled",
		"event_id", event.EventID(),
		"event_type", event.EventType(),
		"outcome", res.Outcome.String(),
		"tickets", len(updated))

	switch res.Outcome {
	case payment.OutcomePaid:
		sendPaidNotifications(ctx, uc.notifier, updated)
	case payment.OutcomeCancelled:
		publishAvailability(ctx, uc.publisher, ticketDates(updated)...)
	}
	return result, nil
}
