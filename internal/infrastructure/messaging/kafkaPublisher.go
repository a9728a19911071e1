package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"

	"ev-storefront/pkg/logger"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkaGo.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer messageWriter
	log    logger.Logger
}

// NewKafkaPublisher returns a Publisher backed by one long-lived kafka-go writer.
// The topic is chosen per message.
func NewKafkaPublisher(brokers []string, log logger.Logger) Publisher {
	w := &kafkaGo.Writer{
		Addr:         kafkaGo.TCP(brokers...),
		Balancer:     &kafkaGo.Hash{},
		RequiredAcks: kafkaGo.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
	log.Info("kafka publisher created", logger.Any("brokers", brokers))
	return &kafkaPublisher{writer: w, log: log}
}

func (k *kafkaPublisher) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	if topic == "" {
		return fmt.Errorf("topic is empty")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafkaGo.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
		Time:  time.Now().UTC(),
	}
	if typed, ok := event.(interface{ EventType() string }); ok {
		msg.Headers = append(msg.Headers, kafkaGo.Header{Key: "event_type", Value: []byte(typed.EventType())})
	}

	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish to kafka topic %s: %w", topic, err)
	}
	return nil
}

func (k *kafkaPublisher) Close() error {
	k.log.Info("closing kafka publisher")
	return k.writer.Close()
}
