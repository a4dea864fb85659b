package infrastructure

import (
	"fmt"

	"github.com/streadway/amqp"
)

// NewAMQPConnection dials the RabbitMQ broker at url.
func NewAMQPConnection(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error dialling rabbitmq: %w", err)
	}
	return conn, nil
}
