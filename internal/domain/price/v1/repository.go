package v1

import (
	"context"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

// PriceRepository represents the store adapter for price records.
type PriceRepository interface {
	// EnsureCollection creates the collection. It returns errors.ErrCollectionExists
	// when the collection is already present.
	EnsureCollection(ctx context.Context, spec CollectionSpec) error
	// InsertBatch writes records in a single bulk request.
	InsertBatch(ctx context.Context, collection string, records []*Record) error
	// GetCloseWindow returns close prices inside the filter window, oldest first.
	GetCloseWindow(ctx context.Context, filter WindowFilter) ([]*ClosePoint, error)
	DropCollection(ctx context.Context, collection string) error
}
