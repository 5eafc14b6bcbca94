package bus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBus_PublishDeliversToAllSubscribers(t *testing.T) {
	b := New[string](4)

	streamA, cancelA := b.Subscribe()
	defer cancelA()
	streamB, cancelB := b.Subscribe()
	defer cancelB()

	delivered := b.Publish("hello")
	assert.Equal(t, 2, delivered)

	assert.Equal(t, "hello", <-streamA)
	assert.Equal(t, "hello", <-streamB)
}

func TestBus_SubscribeOnlySeesFutureEvents(t *testing.T) {
	b := New[int](4)
	b.Publish(1)

	stream, cancel := b.Subscribe()
	defer cancel()
	b.Publish(2)

	select {
	case v := <-stream:
		assert.Equal(t, 2, v)
	case <-time.After(time.Second):
		t.Fatal("expected to receive the post-subscribe event")
	}
}

func TestBus_FullSubscriberBufferDropsRatherThanBlocksPublish(t *testing.T) {
	b := New[int](1)
	stream, cancel := b.Subscribe()
	defer cancel()

	b.Publish(1)
	delivered := b.Publish(2)
	assert.Equal(t, 0, delivered, "second publish should be dropped for a full subscriber")

	assert.Equal(t, 1, <-stream)
}

func TestBus_ShutdownClosesSubscriberChannels(t *testing.T) {
	b := New[int](1)
	stream, _ := b.Subscribe()

	b.Shutdown()

	_, ok := <-stream
	assert.False(t, ok, "subscriber channel should be closed after Shutdown")

	delivered := b.Publish(1)
	assert.Equal(t, 0, delivered, "publish after Shutdown should be a no-op")
}

func TestBus_CancelStopsFurtherDelivery(t *testing.T) {
	b := New[int](4)
	stream, cancel := b.Subscribe()
	cancel()

	b.Publish(1)

	select {
	case v := <-stream:
		t.Fatalf("canceled subscriber should not receive anything, got %v", v)
	case <-time.After(50 * time.Millisecond):
	}
}
