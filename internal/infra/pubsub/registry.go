// Package pubsub fans refresh notifications out to in-process subscribers.
// Redis carries them between instances, so every replica's SSE clients see
// changes made by any other replica.
package pubsub

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"venue-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	channelPrefix     = "venue-booking:"
	subscriberBacklog = 8
)

type Subscription struct {
	topic string
	ch    chan string
}

func (s *Subscription) Topic() string { return s.topic }

// C is closed by Unsubscribe.
func (s *Subscription) C() <-chan string { return s.ch }

type Registry struct {
	client redis.UniversalClient

	mu     sync.RWMutex
	topics map[string]map[*Subscription]struct{}
	closed bool
}

func NewRegistry(client redis.UniversalClient) *Registry {
	return &Registry{
		client: client,
		topics: make(map[string]map[*Subscription]struct{}),
	}
}

func (r *Registry) Subscribe(topic string) *Subscription {
	sub := &Subscription{topic: topic, ch: make(chan string, subscriberBacklog)}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		close(sub.ch)
		return sub
	}
	subs, ok := r.topics[topic]
	if !ok {
		subs = make(map[*Subscription]struct{})
		r.topics[topic] = subs
	}
	subs[sub] = struct{}{}
	return sub
}

func (r *Registry) Unsubscribe(sub *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs, ok := r.topics[sub.topic]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	close(sub.ch)
	if len(subs) == 0 {
		delete(r.topics, sub.topic)
	}
}

func (r *Registry) Subscribers(topic string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.topics[topic])
}

// Publish hands the message to Redis; local delivery happens when it comes
// back through Run.
func (r *Registry) Publish(ctx context.Context, topic string, message string) error {
	if err := r.client.Publish(ctx, channelPrefix+topic, message).Err(); err != nil {
		return errs.Wrapf(err, "publish %s", topic)
	}
	return nil
}

// Run relays Redis messages to local subscribers until ctx is done.
func (r *Registry) Run(ctx context.Context) error {
	ps := r.client.PSubscribe(ctx, channelPrefix+"*")
	defer ps.Close()

	if _, err := ps.Receive(ctx); err != nil {
		return errs.Wrap(err, "subscribe to refresh channel")
	}
	slog.Info("refresh relay subscribed", "pattern", channelPrefix+"*")

	msgs := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			r.dispatch(strings.TrimPrefix(msg.Channel, channelPrefix), msg.Payload)
		}
	}
}

// dispatch never blocks: a subscriber whose backlog is full misses the
// message, which is harmless for refresh hints.
func (r *Registry) dispatch(topic, message string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for sub := range r.topics[topic] {
		select {
		case sub.ch <- message:
		default:
			slog.Debug("dropping refresh for slow subscriber", "topic", topic)
		}
	}
}

// Close ends every subscription.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for topic, subs := range r.topics {
		for sub := range subs {
			close(sub.ch)
		}
		delete(r.topics, topic)
	}
	r.closed = true
}
