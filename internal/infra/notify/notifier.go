package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"venue-booking/internal/domain/ticket"
	"venue-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	KindTicketConfirmation = "ticket_confirmation"
	KindDonationReceipt    = "donation_receipt"
)

// Message is consumed by the mailer, which owns templating and PDF rendering.
type Message struct {
	Kind              string       `json:"kind"`
	Email             string       `json:"email"`
	CheckoutReference string       `json:"checkout_reference,omitempty"`
	Tickets           []TicketLine `json:"tickets"`
	DonationTotal     int64        `json:"donation_total,omitempty"`
	SentAt            time.Time    `json:"sent_at"`
}

type TicketLine struct {
	Code            string `json:"code"`
	VisitorName     string `json:"visitor_name,omitempty"`
	ReservationDate string `json:"reservation_date"`
	SlotStart       string `json:"slot_start"`
	SlotEnd         string `json:"slot_end"`
	TicketPrice     int64  `json:"ticket_price"`
	DonationAmount  int64  `json:"donation_amount"`
	TotalAmount     int64  `json:"total_amount"`
}

type RabbitNotifier struct {
	channel Channel
	queue   string
	now     func() time.Time
}

func NewRabbitNotifier(channel Channel, queue string) *RabbitNotifier {
	return &RabbitNotifier{channel: channel, queue: queue, now: time.Now}
}

// SendTicketConfirmation publishes one message per recipient address.
func (n *RabbitNotifier) SendTicketConfirmation(ctx context.Context, tickets []*ticket.Ticket) error {
	return n.publishGrouped(ctx, KindTicketConfirmation, tickets)
}

// SendDonationReceipt covers only the tickets that carry a donation.
func (n *RabbitNotifier) SendDonationReceipt(ctx context.Context, tickets []*ticket.Ticket) error {
	donors := make([]*ticket.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.HasDonation() {
			donors = append(donors, t)
		}
	}
	return n.publishGrouped(ctx, KindDonationReceipt, donors)
}

func (n *RabbitNotifier) publishGrouped(ctx context.Context, kind string, tickets []*ticket.Ticket) error {
	var firstErr error
	for _, msg := range n.group(kind, tickets) {
		if err := n.publish(ctx, msg); err != nil {
			slog.Error("failed to publish notification",
				"kind", kind,
				"tickets", len(msg.Tickets),
				"error", err.Error())
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// group keeps the input order of recipients.
func (n *RabbitNotifier) group(kind string, tickets []*ticket.Ticket) []Message {
	var (
		order []string
		byTo  = map[string]*Message{}
	)
	for _, t := range tickets {
		m, ok := byTo[t.Email()]
		if !ok {
			m = &Message{Kind: kind, Email: t.Email(), SentAt: n.now()}
			if ref := t.CheckoutReference(); ref != nil {
				m.CheckoutReference = *ref
			}
			byTo[t.Email()] = m
			order = append(order, t.Email())
		}
		m.Tickets = append(m.Tickets, lineOf(t))
		m.DonationTotal += t.DonationAmount()
	}

	out := make([]Message, 0, len(order))
	for _, email := range order {
		out = append(out, *byTo[email])
	}
	return out
}

func (n *RabbitNotifier) publish(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errs.Wrap(err, "marshal notification")
	}
	err = n.channel.PublishWithContext(ctx, "", n.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    msg.SentAt,
		Type:         msg.Kind,
		Body:         body,
	})
	if err != nil {
		return errs.Wrapf(err, "publish %s", msg.Kind)
	}
	return nil
}

func lineOf(t *ticket.Ticket) TicketLine {
	line := TicketLine{
		Code:            t.Code(),
		ReservationDate: t.ReservationDate().Format(time.DateOnly),
		SlotStart:       t.SlotStart().String(),
		SlotEnd:         t.SlotEnd().String(),
		TicketPrice:     t.TicketPrice(),
		DonationAmount:  t.DonationAmount(),
		TotalAmount:     t.TotalAmount(),
	}
	if name := t.VisitorName(); name != nil {
		line.VisitorName = *name
	}
	return line
}
