package price

import (
	"context"
	"net"

	"github.com/bytedance/sonic"
	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	pkgkafka "github.com/muhammadchandra19/mock-market-data/pkg/kafka"
	"github.com/muhammadchandra19/mock-market-data/pkg/util"
	"github.com/segmentio/kafka-go"
)

const runIDHeader = "x-run-id"

// Repository publishes price records to Kafka. One topic per collection.
// Kafka is a write-only sink here: window reads and drops are rejected.
type Repository struct {
	producer pkgkafka.ProducerInterface
}

// Ensure Repository implements v1.PriceRepository interface
var _ v1.PriceRepository = (*Repository)(nil)

// NewRepository creates a new price repository.
func NewRepository(producer pkgkafka.ProducerInterface) *Repository {
	return &Repository{
		producer: producer,
	}
}

// EnsureCollection creates the topic named after the collection.
func (r *Repository) EnsureCollection(ctx context.Context, spec v1.CollectionSpec) error {
	err := r.producer.EnsureTopic(ctx, spec.Name)
	if errors.Is(err, errors.ErrCollectionExists) {
		return err
	}
	if err != nil {
		return wrapError("failed to create topic "+spec.Name, err)
	}
	return nil
}

// InsertBatch publishes records keyed by symbol in a single write.
func (r *Repository) InsertBatch(ctx context.Context, collection string, records []*v1.Record) error {
	if len(records) == 0 {
		return nil
	}

	messages, err := encode(ctx, records)
	if err != nil {
		return errors.NewUnclassifiedFault("failed to encode price batch", err)
	}

	if err := r.producer.WriteMessages(ctx, collection, messages...); err != nil {
		return wrapError("failed to publish price batch", err)
	}
	return nil
}

// GetCloseWindow is not supported by the kafka driver.
func (r *Repository) GetCloseWindow(ctx context.Context, filter v1.WindowFilter) ([]*v1.ClosePoint, error) {
	return nil, errors.NewConfigurationFault("kafka driver cannot read price windows", errors.ErrUnsupportedOperation)
}

// DropCollection is not supported by the kafka driver.
func (r *Repository) DropCollection(ctx context.Context, collection string) error {
	return errors.NewConfigurationFault("kafka driver cannot drop topic "+collection, errors.ErrUnsupportedOperation)
}

func encode(ctx context.Context, records []*v1.Record) ([]kafka.Message, error) {
	var headers []kafka.Header
	if runID := util.GetRunID(ctx); runID != "" {
		headers = []kafka.Header{{Key: runIDHeader, Value: []byte(runID)}}
	}

	messages := make([]kafka.Message, len(records))
	for i, record := range records {
		value, err := sonic.Marshal(record)
		if err != nil {
			return nil, err
		}
		messages[i] = kafka.Message{
			Key:     []byte(record.Symbol),
			Value:   value,
			Time:    record.Timestamp,
			Headers: headers,
		}
	}
	return messages, nil
}

func wrapError(message string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return errors.NewConnectivityFault(message, err)
	}
	return errors.NewUnclassifiedFault(message, err)
}
