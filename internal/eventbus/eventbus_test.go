package eventbus

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	bus := New()
	defer bus.Close()

	got := make(chan ScrollRequestedEvent, 1)
	bus.Subscribe(EventScrollRequested, func(e DomainEvent) {
		if ev, ok := e.(ScrollRequestedEvent); ok {
			got <- ev
		}
	})

	bus.Publish(ScrollRequestedEvent{Seq: 3, Section: 2, Target: 10})

	select {
	case ev := <-got:
		assert.Equal(t, uint64(3), ev.Seq)
		assert.Equal(t, 10, ev.Target)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()
	defer bus.Close()

	var removed, kept atomic.Int32
	unsubscribe := bus.Subscribe(EventScrollSettled, func(DomainEvent) { removed.Add(1) })
	bus.Subscribe(EventScrollSettled, func(DomainEvent) { kept.Add(1) })

	unsubscribe()
	unsubscribe()
	bus.Publish(ScrollSettledEvent{Seq: 1})

	require.Eventually(t, func() bool { return kept.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(0), removed.Load())
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	bus := New()
	defer bus.Close()

	var delivered atomic.Int32
	bus.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	bus.Subscribe(EventError, func(DomainEvent) { delivered.Add(1) })

	bus.Publish(ErrorEvent{Message: "first", Err: errors.New("x")})
	bus.Publish(ErrorEvent{Message: "second"})

	require.Eventually(t, func() bool { return delivered.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestCloseIsIdempotent(t *testing.T) {
	bus := New()
	bus.Close()
	bus.Close()
	bus.Publish(SectionsChangedEvent{Sizes: []int{1}})
}
