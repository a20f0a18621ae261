package price

import (
	"context"

	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	"github.com/muhammadchandra19/mock-market-data/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository represents the MongoDB repository for price records.
type Repository struct {
	client mongodb.MongoDBClient
}

// Ensure Repository implements v1.PriceRepository interface
var _ v1.PriceRepository = (*Repository)(nil)

// NewRepository creates a new price repository.
func NewRepository(client mongodb.MongoDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// EnsureCollection creates a time-series collection.
func (r *Repository) EnsureCollection(ctx context.Context, spec v1.CollectionSpec) error {
	err := r.client.CreateTimeSeriesCollection(ctx, spec.Name, mongodb.TimeSeriesSpec{
		TimeField:   spec.TimeField,
		MetaField:   spec.MetaField,
		Granularity: spec.Granularity,
	})
	if errors.Is(err, errors.ErrCollectionExists) {
		return err
	}
	if err != nil {
		return wrapError("failed to create collection "+spec.Name, err)
	}
	return nil
}

// InsertBatch inserts records with a single InsertMany.
func (r *Repository) InsertBatch(ctx context.Context, collection string, records []*v1.Record) error {
	if len(records) == 0 {
		return nil
	}

	documents := make([]any, len(records))
	for i, record := range records {
		documents[i] = NewDocument(record)
	}

	if _, err := r.client.InsertMany(ctx, collection, documents); err != nil {
		return wrapError("failed to insert batch", err)
	}
	return nil
}

// GetCloseWindow returns {timestamp, close} for records in the window, oldest first.
func (r *Repository) GetCloseWindow(ctx context.Context, filter v1.WindowFilter) ([]*v1.ClosePoint, error) {
	cursor, err := r.client.Aggregate(ctx, filter.Collection, closeWindowPipeline(filter))
	if err != nil {
		return nil, wrapError("failed to query close window", err)
	}
	defer cursor.Close(ctx)

	points := []*v1.ClosePoint{}
	for cursor.Next(ctx) {
		var doc closeDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, wrapError("failed to decode close point", err)
		}
		points = append(points, &v1.ClosePoint{Timestamp: doc.Timestamp.UTC(), Close: doc.Close})
	}

	if err := cursor.Err(); err != nil {
		return nil, wrapError("failed to iterate close window", err)
	}
	return points, nil
}

// DropCollection drops the collection.
func (r *Repository) DropCollection(ctx context.Context, collection string) error {
	if err := r.client.DropCollection(ctx, collection); err != nil {
		return wrapError("failed to drop collection "+collection, err)
	}
	return nil
}

func closeWindowPipeline(filter v1.WindowFilter) mongo.Pipeline {
	match := bson.D{}

	timestamp := bson.D{}
	if filter.From != nil {
		timestamp = append(timestamp, bson.E{Key: "$gte", Value: filter.From.UTC()})
	}
	if filter.To != nil {
		timestamp = append(timestamp, bson.E{Key: "$lte", Value: filter.To.UTC()})
	}
	if len(timestamp) > 0 {
		match = append(match, bson.E{Key: v1.FieldTimestamp, Value: timestamp})
	}
	if filter.Symbol != "" {
		match = append(match, bson.E{Key: v1.FieldSymbol, Value: filter.Symbol})
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: v1.FieldTimestamp, Value: 1}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: v1.FieldTimestamp, Value: 1},
			{Key: v1.FieldClose, Value: 1},
		}}},
	}
}

func wrapError(message string, err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return errors.NewConnectivityFault(message, err)
	}
	return errors.NewUnclassifiedFault(message, err)
}
