package ingest

import (
	"context"
	"iter"
	"time"

	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	"github.com/muhammadchandra19/mock-market-data/pkg/logger"
)

// DefaultBatchSize is the number of records written per bulk request.
const DefaultBatchSize = 5000

// Config holds the ingest tuning knobs.
type Config struct {
	BatchSize int
	// OperationTimeout bounds every store call. Zero disables it.
	OperationTimeout time.Duration
}

// Usecase is the usecase for writing price records.
type Usecase struct {
	priceRepository v1.PriceRepository
	logger          logger.Interface
	config          Config
}

// NewUsecase creates a new ingest usecase.
func NewUsecase(priceRepository v1.PriceRepository, logger logger.Interface, config Config) *Usecase {
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}
	return &Usecase{priceRepository: priceRepository, logger: logger, config: config}
}

// EnsureCollection creates the collection if absent.
func (u *Usecase) EnsureCollection(ctx context.Context, spec v1.CollectionSpec) error {
	opCtx, cancel := u.operationContext(ctx)
	defer cancel()

	err := u.priceRepository.EnsureCollection(opCtx, spec)
	if errors.Is(err, errors.ErrCollectionExists) {
		u.logger.InfoContext(ctx, "collection already exists", logger.NewField("collection", spec.Name))
		return nil
	}
	if err != nil {
		return errors.TracerFromError(err)
	}

	u.logger.InfoContext(ctx, "collection created",
		logger.NewField("collection", spec.Name),
		logger.NewField("granularity", spec.Granularity),
	)
	return nil
}

// Prepare drops the collection in replace mode, then ensures it exists.
func (u *Usecase) Prepare(ctx context.Context, spec v1.CollectionSpec, mode v1.WriteMode) error {
	switch mode {
	case v1.WriteModeAppend, "":
	case v1.WriteModeReplace:
		opCtx, cancel := u.operationContext(ctx)
		defer cancel()

		if err := u.priceRepository.DropCollection(opCtx, spec.Name); err != nil {
			return errors.TracerFromError(err)
		}
		u.logger.WarnContext(ctx, "collection dropped before write", logger.NewField("collection", spec.Name))
	default:
		return errors.NewConfigurationFault("unknown write mode "+string(mode), nil)
	}

	return u.EnsureCollection(ctx, spec)
}

// Ingest drains records into collection. A batch is flushed every BatchSize
// records and once more at the end for any remainder; an empty batch is never written.
func (u *Usecase) Ingest(ctx context.Context, collection string, records iter.Seq[*v1.Record]) (v1.IngestSummary, error) {
	summary := v1.IngestSummary{Collection: collection}
	batch := make([]*v1.Record, 0, u.config.BatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}

		opCtx, cancel := u.operationContext(ctx)
		defer cancel()

		if err := u.priceRepository.InsertBatch(opCtx, collection, batch); err != nil {
			return errors.TracerFromError(err)
		}

		summary.Batches++
		summary.Records += len(batch)
		summary.LastBatchSize = len(batch)

		u.logger.InfoContext(ctx, "inserted batch",
			logger.NewField("collection", collection),
			logger.NewField("size", len(batch)),
			logger.NewField("total", summary.Records),
		)

		batch = make([]*v1.Record, 0, u.config.BatchSize)
		return nil
	}

	for record := range records {
		if err := ctx.Err(); err != nil {
			return summary, errors.TracerFromError(err)
		}

		batch = append(batch, record)
		if len(batch) >= u.config.BatchSize {
			if err := flush(); err != nil {
				return summary, err
			}
		}
	}

	if err := flush(); err != nil {
		return summary, err
	}

	u.logger.InfoContext(ctx, "ingest complete",
		logger.NewField("collection", collection),
		logger.NewField("records", summary.Records),
		logger.NewField("batches", summary.Batches),
	)
	return summary, nil
}

func (u *Usecase) operationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.config.OperationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, u.config.OperationTimeout)
}
