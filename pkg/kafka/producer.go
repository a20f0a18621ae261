package kafka

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// Config is the Kafka producer configuration.
type Config struct {
	Brokers           []string      `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Partitions        int           `env:"PARTITIONS" envDefault:"1"`
	ReplicationFactor int           `env:"REPLICATION_FACTOR" envDefault:"1"`
	BatchSize         int           `env:"BATCH_SIZE" envDefault:"5000"`
	BatchTimeout      time.Duration `env:"BATCH_TIMEOUT" envDefault:"10ms"`
	DialTimeout       time.Duration `env:"DIAL_TIMEOUT" envDefault:"10s"`
}

// Producer writes messages to any topic on the configured brokers.
type Producer struct {
	writer *kafka.Writer
	dialer *kafka.Dialer
	config Config
}

// Ensure Producer implements ProducerInterface interface
var _ ProducerInterface = (*Producer)(nil)

// NewProducer creates a producer after checking the first broker is reachable.
func NewProducer(ctx context.Context, config Config) (ProducerInterface, error) {
	if len(config.Brokers) == 0 {
		return nil, errors.NewConfigurationFault("KAFKA_BROKERS is not set", nil)
	}

	dialer := &kafka.Dialer{Timeout: config.DialTimeout}

	conn, err := dialer.DialContext(ctx, "tcp", config.Brokers[0])
	if err != nil {
		return nil, errors.NewConnectivityFault("failed to dial kafka broker", err)
	}
	_ = conn.Close()

	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchSize:    config.BatchSize,
		BatchTimeout: config.BatchTimeout,
	}

	return &Producer{
		writer: writer,
		dialer: dialer,
		config: config,
	}, nil
}

// EnsureTopic creates topic on the cluster controller.
// It returns errors.ErrCollectionExists when the topic is already present.
func (p *Producer) EnsureTopic(ctx context.Context, topic string) error {
	conn, err := p.dialer.DialContext(ctx, "tcp", p.config.Brokers[0])
	if err != nil {
		return err
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}

	controllerConn, err := p.dialer.DialContext(ctx, "tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return err
	}
	defer controllerConn.Close()

	err = controllerConn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     p.config.Partitions,
		ReplicationFactor: p.config.ReplicationFactor,
	})
	if errors.Is(err, kafka.TopicAlreadyExists) {
		return errors.ErrCollectionExists
	}
	return err
}

// WriteMessages writes messages to topic in one request.
func (p *Producer) WriteMessages(ctx context.Context, topic string, messages ...kafka.Message) error {
	for i := range messages {
		messages[i].Topic = topic
	}
	return p.writer.WriteMessages(ctx, messages...)
}

// Close flushes pending messages and closes the writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
