package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// AuditQueue is the durable queue receiving entity change events.
const AuditQueue = "entity.audit"

// Publisher emits EntityEvents to RabbitMQ. A nil Publisher is a valid
// configured-off state: Publish becomes a no-op. Publication is best effort;
// any error is logged and returned so callers can ignore it without
// interrupting the request flow.
type Publisher struct {
	url string
	log *logrus.Entry
}

// NewPublisher builds a Publisher for the given AMQP URL. An empty URL
// yields nil, disabling publication.
func NewPublisher(url string, log *logrus.Entry) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{url: url, log: log}
}

// Publish sends one event to the audit queue. The queue is declared durable
// on every call (idempotent) and messages are marked persistent so they
// survive broker restarts.
func (p *Publisher) Publish(ctx context.Context, ev EntityEvent) error {
	if p == nil {
		return nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.WithError(err).Warn("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.WithError(err).Warn("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(AuditQueue, true, false, false, false, nil); err != nil {
		p.log.WithError(err).Warn("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", AuditQueue, false, false, pub); err != nil {
		p.log.WithError(err).Warn("rabbitmq: publish failed")
		return err
	}
	return nil
}
