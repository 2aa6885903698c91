package reminders

import (
	"context"
	"vaxtrack-service/internal/app/contracts"
	"vaxtrack-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type reminderPublisher struct {
	channel *amqp091.Channel
	queue   string
	log     *zap.Logger
}

// NewReminderPublisher declares the reminder queue and returns a publisher
// bound to it. The queue is durable so messages survive broker restarts.
func NewReminderPublisher(conn *amqp091.Connection, queue string, log *zap.Logger) (contracts.ReminderPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(
		queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &reminderPublisher{
		channel: channel,
		queue:   queue,
		log:     log,
	}, nil
}

func (p *reminderPublisher) PublishDueReminder(ctx context.Context, message contracts.ReminderMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.log.Info("ReminderPublisher.PublishDueReminder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("vaccine_code", message.VaccineCode),
	)

	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		"",
		p.queue,
		false,
		false,
		amqp091.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			Body:         body,
			DeliveryMode: amqp091.Persistent,
		},
	)
}
