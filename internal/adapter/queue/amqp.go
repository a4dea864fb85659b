package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"resume-builder/internal/usecase"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

const DefaultQueueName = "resume_exports"

// Channel is the subset of *amqp.Channel the queue uses.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

type message struct {
	JobID uuid.UUID `json:"jobId"`
}

// AMQPQueue publishes export job ids to a durable RabbitMQ queue and runs a
// pool of workers consuming it.
type AMQPQueue struct {
	open func() (Channel, error)
	name string
	log  *slog.Logger
}

func NewAMQPQueue(conn *amqp.Connection, name string, log *slog.Logger) *AMQPQueue {
	return newAMQPQueue(func() (Channel, error) { return conn.Channel() }, name, log)
}

func newAMQPQueue(open func() (Channel, error), name string, log *slog.Logger) *AMQPQueue {
	if name == "" {
		name = DefaultQueueName
	}
	if log == nil {
		log = slog.Default()
	}
	return &AMQPQueue{open: open, name: name, log: log}
}

func (q *AMQPQueue) declare(ch Channel) error {
	_, err := ch.QueueDeclare(
		q.name, // queue name
		true,   // durable
		false,  // auto-delete
		false,  // exclusive
		false,  // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", q.name, err)
	}
	return nil
}

func (q *AMQPQueue) Enqueue(ctx context.Context, jobID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ch, err := q.open()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()
	if err := q.declare(ch); err != nil {
		return err
	}

	body, err := json.Marshal(message{JobID: jobID})
	if err != nil {
		return err
	}
	err = ch.Publish("", q.name, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish job %s: %w", jobID, err)
	}
	return nil
}

// Consume runs workers goroutines that hand each delivered job id to handle.
// Successful jobs are acked; failed or malformed ones are nacked without
// requeue since the job row already records the failure. Jobs interrupted
// by cancellation are requeued. It returns when ctx is cancelled or the
// broker closes the delivery channel.
func (q *AMQPQueue) Consume(ctx context.Context, handle usecase.JobHandler, workers int) error {
	if workers < 1 {
		workers = 1
	}
	ch, err := q.open()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()
	if err := q.declare(ch); err != nil {
		return err
	}
	if err := ch.Qos(workers, 0, false); err != nil {
		return fmt.Errorf("set prefetch: %w", err)
	}
	msgs, err := ch.Consume(
		q.name, // queue name
		"",     // consumer tag
		false,  // auto-ack
		false,  // exclusive
		false,  // no-local
		false,  // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume %s: %w", q.name, err)
	}

	q.log.Info("export workers started", "queue", q.name, "workers", workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			q.work(ctx, id, msgs, handle)
		}(i + 1)
	}
	wg.Wait()

	if ctx.Err() != nil {
		return nil
	}
	return errors.New("delivery channel closed by broker")
}

func (q *AMQPQueue) work(ctx context.Context, id int, msgs <-chan amqp.Delivery, handle usecase.JobHandler) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-msgs:
			if !ok {
				return
			}
			q.deliver(ctx, id, d, handle)
		}
	}
}

func (q *AMQPQueue) deliver(ctx context.Context, id int, d amqp.Delivery, handle usecase.JobHandler) {
	var m message
	if err := json.Unmarshal(d.Body, &m); err != nil || m.JobID == uuid.Nil {
		q.log.Error("dropping malformed export message", "worker", id, "body", string(d.Body), "error", err)
		_ = d.Nack(false, false)
		return
	}

	q.log.Info("worker processing export", "worker", id, "job_id", m.JobID)
	if err := handle(ctx, m.JobID); err != nil {
		if errors.Is(err, usecase.ErrInterrupted) || ctx.Err() != nil {
			q.log.Warn("export interrupted, requeueing", "worker", id, "job_id", m.JobID, "error", err)
			_ = d.Nack(false, true)
			return
		}
		q.log.Error("export job failed", "worker", id, "job_id", m.JobID, "error", err)
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}
