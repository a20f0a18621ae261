package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// CursorInterface wraps mongo.Cursor for mocking
type CursorInterface interface {
	Next(ctx context.Context) bool
	Decode(val any) error
	Close(ctx context.Context) error
	Err() error
}

// CursorWrapper wraps mongo.Cursor to implement CursorInterface
type CursorWrapper struct {
	cursor *mongo.Cursor
}

// NewCursorWrapper creates a new CursorWrapper.
func NewCursorWrapper(cursor *mongo.Cursor) CursorInterface {
	return &CursorWrapper{cursor: cursor}
}

// Next advances the cursor to the next document.
func (c *CursorWrapper) Next(ctx context.Context) bool {
	return c.cursor.Next(ctx)
}

// Decode decodes the current document into val.
func (c *CursorWrapper) Decode(val any) error {
	return c.cursor.Decode(val)
}

// Close closes the cursor.
func (c *CursorWrapper) Close(ctx context.Context) error {
	return c.cursor.Close(ctx)
}

// Err returns the last error seen by the cursor.
func (c *CursorWrapper) Err() error {
	return c.cursor.Err()
}

// MongoDBClient defines the interface for MongoDB operations.
type MongoDBClient interface {
	CreateTimeSeriesCollection(ctx context.Context, name string, spec TimeSeriesSpec) error
	InsertMany(ctx context.Context, collection string, documents []any) (int, error)
	Aggregate(ctx context.Context, collection string, pipeline any) (CursorInterface, error)
	DropCollection(ctx context.Context, collection string) error

	// Connection management
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
