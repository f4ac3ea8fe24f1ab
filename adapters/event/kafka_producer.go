package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/careerpilot/careerpilot/internal/application/service"
	"github.com/careerpilot/careerpilot/internal/config"
)

const TopicCareerEvents = "career.events"

type KafkaProducerClient struct {
	CareerEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicCareerEvents,
		Balancer: &kafka.LeastBytes{},
	}

	fmt.Println("Initialize Kafka Producer successfully.")

	return &KafkaProducerClient{CareerEventsWriter: writer}, nil
}

func (c *KafkaProducerClient) Publish(ctx context.Context, payload service.EventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	return c.CareerEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.UserID),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.CareerEventsWriter != nil {
		c.CareerEventsWriter.Close()
	}
	fmt.Println("Closed Kafka Producer")
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, service.EventPayload) error { return nil }
