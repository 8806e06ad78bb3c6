package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

var (
	// ErrEncode возвращается при ошибке сериализации события
	ErrEncode = errors.New("events: failed to encode event")

	// ErrPublish возвращается, когда брокер не принял сообщение
	ErrPublish = errors.New("events: failed to publish event")
)

// messageWriter часть *kafka.Writer, используемая издателем
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher издатель событий в Kafka. Ключ сообщения - ID объекта,
// поэтому события одного объекта попадают в одну партицию по порядку
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher создает издателя для указанных брокеров и топика
func NewKafkaPublisher(brokers []string, topic string, writeTimeout time.Duration) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: writeTimeout,
		},
	}
}

// Publish отправляет событие
func (p *KafkaPublisher) Publish(ctx context.Context, event BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.FacilityID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s booking_id=%d: %v", ErrPublish, event.Type, event.BookingID, err)
	}
	return nil
}

// Close закрывает соединения с брокерами
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher издатель, который ничего не отправляет (events.enabled = false)
type NoopPublisher struct{}

// Publish ничего не делает
func (NoopPublisher) Publish(context.Context, BookingEvent) error { return nil }

// Close ничего не делает
func (NoopPublisher) Close() error { return nil }
