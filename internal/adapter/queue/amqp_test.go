package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"resume-builder/internal/usecase"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	mu         sync.Mutex
	declared   []string
	published  []amqp.Publishing
	keys       []string
	prefetch   int
	deliveries chan amqp.Delivery
	closed     bool
}

func (c *fakeChannel) QueueDeclare(name string, durable, _, _, _ bool, _ amqp.Table) (amqp.Queue, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !durable {
		return amqp.Queue{}, errors.New("queue must be durable")
	}
	c.declared = append(c.declared, name)
	return amqp.Queue{Name: name}, nil
}

func (c *fakeChannel) Publish(_, key string, _, _ bool, msg amqp.Publishing) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys = append(c.keys, key)
	c.published = append(c.published, msg)
	return nil
}

func (c *fakeChannel) Qos(n, _ int, _ bool) error {
	c.prefetch = n
	return nil
}

func (c *fakeChannel) Consume(_, _ string, autoAck, _, _, _ bool, _ amqp.Table) (<-chan amqp.Delivery, error) {
	if autoAck {
		return nil, errors.New("expected manual acks")
	}
	return c.deliveries, nil
}

func (c *fakeChannel) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}

// acker records acknowledgements by delivery tag.
type acker struct {
	mu       sync.Mutex
	acked    []uint64
	nacked   []uint64
	requeued []uint64
}

func (a *acker) Ack(tag uint64, _ bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.acked = append(a.acked, tag)
	return nil
}

func (a *acker) Nack(tag uint64, _, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if requeue {
		a.requeued = append(a.requeued, tag)
		return nil
	}
	a.nacked = append(a.nacked, tag)
	return nil
}

func (a *acker) Reject(tag uint64, _ bool) error { return nil }

func TestAMQPQueue_Enqueue(t *testing.T) {
	ch := &fakeChannel{}
	q := newAMQPQueue(func() (Channel, error) { return ch, nil }, "", nil)

	id := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), id))

	assert.Equal(t, []string{DefaultQueueName}, ch.declared)
	assert.Equal(t, []string{DefaultQueueName}, ch.keys)
	require.Len(t, ch.published, 1)
	pub := ch.published[0]
	assert.Equal(t, amqp.Persistent, pub.DeliveryMode)
	assert.Equal(t, "application/json", pub.ContentType)
	assert.JSONEq(t, `{"jobId":"`+id.String()+`"}`, string(pub.Body))
	assert.True(t, ch.closed)
}

func TestAMQPQueue_EnqueueOpenError(t *testing.T) {
	q := newAMQPQueue(func() (Channel, error) { return nil, errors.New("connection closed") }, "q", nil)
	assert.ErrorContains(t, q.Enqueue(context.Background(), uuid.New()), "connection closed")
}

func TestAMQPQueue_Consume(t *testing.T) {
	ch := &fakeChannel{deliveries: make(chan amqp.Delivery, 4)}
	q := newAMQPQueue(func() (Channel, error) { return ch, nil }, "exports", nil)
	ack := &acker{}

	good, bad := uuid.New(), uuid.New()
	body := func(id uuid.UUID) []byte {
		b, _ := json.Marshal(message{JobID: id})
		return b
	}
	ch.deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body(good)}
	ch.deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 2, Body: body(bad)}
	ch.deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 3, Body: []byte("not json")}
	close(ch.deliveries)

	var (
		mu   sync.Mutex
		seen []uuid.UUID
	)
	handle := func(_ context.Context, id uuid.UUID) error {
		mu.Lock()
		seen = append(seen, id)
		mu.Unlock()
		if id == bad {
			return errors.New("render failed")
		}
		return nil
	}

	err := q.Consume(context.Background(), handle, 2)
	assert.ErrorContains(t, err, "closed")

	assert.Equal(t, 2, ch.prefetch)
	assert.ElementsMatch(t, []uuid.UUID{good, bad}, seen)
	assert.Equal(t, []uint64{1}, ack.acked)
	assert.ElementsMatch(t, []uint64{2, 3}, ack.nacked)
	assert.Empty(t, ack.requeued)
}

func TestAMQPQueue_ConsumeRequeuesInterruptedJobs(t *testing.T) {
	ch := &fakeChannel{deliveries: make(chan amqp.Delivery, 1)}
	q := newAMQPQueue(func() (Channel, error) { return ch, nil }, "exports", nil)
	ack := &acker{}

	id := uuid.New()
	b, err := json.Marshal(message{JobID: id})
	require.NoError(t, err)
	ch.deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 7, Body: b}
	close(ch.deliveries)

	handle := func(_ context.Context, _ uuid.UUID) error {
		return fmt.Errorf("%w: %w", usecase.ErrInterrupted, context.Canceled)
	}
	assert.ErrorContains(t, q.Consume(context.Background(), handle, 1), "closed")

	assert.Equal(t, []uint64{7}, ack.requeued)
	assert.Empty(t, ack.nacked)
	assert.Empty(t, ack.acked)
}

func TestAMQPQueue_ConsumeStopsOnCancel(t *testing.T) {
	ch := &fakeChannel{deliveries: make(chan amqp.Delivery)}
	q := newAMQPQueue(func() (Channel, error) { return ch, nil }, "exports", nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- q.Consume(ctx, func(context.Context, uuid.UUID) error { return nil }, 3)
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}
}
