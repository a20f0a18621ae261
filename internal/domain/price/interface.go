package price

import (
	"context"
	"iter"
	"time"

	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/usecase_mock.go -package=mock

// IngestUsecase is the interface for writing synthesized records to a store.
type IngestUsecase interface {
	// EnsureCollection creates the collection if absent. An existing collection is not an error.
	EnsureCollection(ctx context.Context, spec v1.CollectionSpec) error
	// Prepare applies the write mode and ensures the collection exists.
	Prepare(ctx context.Context, spec v1.CollectionSpec, mode v1.WriteMode) error
	// Ingest drains records into the collection in fixed-size batches.
	Ingest(ctx context.Context, collection string, records iter.Seq[*v1.Record]) (v1.IngestSummary, error)
}

// ChartUsecase is the interface for rendering the recent close-price chart.
type ChartUsecase interface {
	RenderRecent(ctx context.Context, profile v1.AssetProfile, lookback time.Duration) (v1.ChartResult, error)
}

// QueryUsecase is the interface for reading recent close prices.
type QueryUsecase interface {
	GetRecentPrices(ctx context.Context, profile v1.AssetProfile, lookback time.Duration, withAverage bool) ([]*v1.AveragedPoint, error)
}
