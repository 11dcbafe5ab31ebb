//go:build unit

package pubsub

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_PublishGoesThroughRedis(t *testing.T) {
	db, mock := redismock.NewClientMock()
	r := NewRegistry(db)

	mock.ExpectPublish("venue-booking:availability:2030-06-03", "refresh").SetVal(1)

	require.NoError(t, r.Publish(context.Background(), "availability:2030-06-03", "refresh"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistry_PublishError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	r := NewRegistry(db)

	mock.ExpectPublish("venue-booking:availability:2030-06-03", "refresh").SetErr(errors.New("redis down"))

	err := r.Publish(context.Background(), "availability:2030-06-03", "refresh")
	assert.ErrorContains(t, err, "redis down")
}

func TestRegistry_DispatchFansOutPerTopic(t *testing.T) {
	db, _ := redismock.NewClientMock()
	r := NewRegistry(db)

	a1 := r.Subscribe("availability:2030-06-03")
	a2 := r.Subscribe("availability:2030-06-03")
	b := r.Subscribe("availability:2030-06-04")

	r.dispatch("availability:2030-06-03", "refresh")

	assert.Equal(t, "refresh", <-a1.C())
	assert.Equal(t, "refresh", <-a2.C())
	select {
	case msg := <-b.C():
		t.Fatalf("unexpected message on other topic: %s", msg)
	default:
	}
}

func TestRegistry_UnsubscribeClosesChannel(t *testing.T) {
	db, _ := redismock.NewClientMock()
	r := NewRegistry(db)

	sub := r.Subscribe("availability:2030-06-03")
	assert.Equal(t, 1, r.Subscribers("availability:2030-06-03"))

	r.Unsubscribe(sub)
	r.Unsubscribe(sub)

	_, open := <-sub.C()
	assert.False(t, open)
	assert.Equal(t, 0, r.Subscribers("availability:2030-06-03"))
}

func TestRegistry_SlowSubscriberDoesNotBlock(t *testing.T) {
	db, _ := redismock.NewClientMock()
	r := NewRegistry(db)
	sub := r.Subscribe("t")

	for i := 0; i < subscriberBacklog*3; i++ {
		r.dispatch("t", "refresh")
	}
	assert.Len(t, sub.ch, subscriberBacklog)
}

func TestRegistry_ConcurrentSubscribeAndDispatch(t *testing.T) {
	db, _ := redismock.NewClientMock()
	r := NewRegistry(db)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sub := r.Subscribe("t")
			r.Unsubscribe(sub)
		}()
		go func() {
			defer wg.Done()
			r.dispatch("t", "refresh")
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, r.Subscribers("t"))
}

func TestRegistry_CloseEndsSubscriptions(t *testing.T) {
	db, _ := redismock.NewClientMock()
	r := NewRegistry(db)
	sub := r.Subscribe("t")

	r.Close()

	_, open := <-sub.C()
	assert.False(t, open)

	late := r.Subscribe("t")
	_, open = <-late.C()
	assert.False(t, open)
}
