package commander

import (
	"context"
	"fmt"
)

//go:generate mockery --name RabbitMQPublisher --filename rabbitmqpublisher.go

// RabbitMQPublisher is RabbitMQ messages publisher.
type RabbitMQPublisher interface {
	Publish(context.Context, string, []byte) error
}

// RabbitMQSender sends RMQ messages to the commands routing key.
type RabbitMQSender struct {
	publisher     RabbitMQPublisher
	cmdRoutingKey string
}

// NewRabbitMQSender returns new RabbitMQSender publishing commands to cmdRoutingKey.
func NewRabbitMQSender(publisher RabbitMQPublisher, cmdRoutingKey string) RabbitMQSender {
	return RabbitMQSender{
		publisher:     publisher,
		cmdRoutingKey: cmdRoutingKey,
	}
}

// Send publishes command message.
func (s RabbitMQSender) Send(ctx context.Context, msg []byte) error {
	if err := s.publisher.Publish(ctx, s.cmdRoutingKey, msg); err != nil {
		return fmt.Errorf("can't publish command to %q: %w", s.cmdRoutingKey, err)
	}

	return nil
}
