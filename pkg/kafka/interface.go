package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// ProducerInterface defines the interface for Kafka producer operations.
type ProducerInterface interface {
	EnsureTopic(ctx context.Context, topic string) error
	WriteMessages(ctx context.Context, topic string, messages ...kafka.Message) error
	Close() error
}
