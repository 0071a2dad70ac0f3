package events

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// eventPublisher pushes resource mutation events to the dashboard update
// queue. Events carry a deterministic EventID so consumers can drop
// duplicates instead of double-applying them.
type eventPublisher struct {
	connection *amqp091.Connection
	queueName  string
	log        *zap.Logger
}

func NewEventPublisher(connection *amqp091.Connection, queueName string, log *zap.Logger) contracts.EventPublisher {
	return &eventPublisher{
		connection: connection,
		queueName:  queueName,
		log:        log,
	}
}

func (p *eventPublisher) PublishResourceEvent(ctx context.Context, event *contracts.ResourceEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	channel, err := p.connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(p.queueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	err = channel.PublishWithContext(ctx, "", p.queueName, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.EventID,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	p.log.Debug("eventPublisher.PublishResourceEvent published",
		zap.String("event_id", event.EventID),
		zap.String("resource", event.Resource),
		zap.String("action", event.Action),
	)
	return nil
}
