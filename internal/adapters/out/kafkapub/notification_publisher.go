// Package kafkapub publishes order notifications to a kafka topic.
package kafkapub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"kitchen/internal/adapters/out/notify"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NotificationPublisher writes one message per notification, keyed by order id so
// that the notifications of an order keep their order within a partition.
type NotificationPublisher struct {
	writer messageWriter
	now    func() time.Time
}

var _ ports.Notifier = (*NotificationPublisher)(nil)

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// DefaultBatchTimeout bounds how long a notification waits for its batch to fill.
const DefaultBatchTimeout = 10 * time.Millisecond

// NewNotificationPublisher creates a publisher writing to topic on brokers.
// Writes are asynchronous: Notify returns once the message is queued and
// delivery failures are logged.
func NewNotificationPublisher(brokers []string, topic string, logger *slog.Logger) *NotificationPublisher {
	return newNotificationPublisher(newWriter(brokers, topic, logger))
}

func newWriter(brokers []string, topic string, logger *slog.Logger) *kafka.Writer {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "kafka_notification_publisher", "topic", topic)

	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           DefaultBatchTimeout,
		WriteTimeout:           5 * time.Second,
		Async:                  true,
		Completion:             logDeliveryFailure(logger),
	}
}

func logDeliveryFailure(logger *slog.Logger) func([]kafka.Message, error) {
	return func(messages []kafka.Message, err error) {
		if err == nil {
			return
		}
		for _, m := range messages {
			logger.Warn("failed to publish notification",
				"order_id", string(m.Key),
				"error", err,
			)
		}
	}
}

func newNotificationPublisher(writer messageWriter) *NotificationPublisher {
	return &NotificationPublisher{
		writer: writer,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Notify publishes the notification as JSON.
func (p *NotificationPublisher) Notify(ctx context.Context, notification order.Notification) error {
	data, err := json.Marshal(notify.NewMessage(notification))
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notification.OrderID().String()),
		Value: data,
		Time:  p.now(),
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(notification.Kind().String())},
		},
	})
}

// Close flushes pending messages and releases the writer.
func (p *NotificationPublisher) Close() error {
	return p.writer.Close()
}
