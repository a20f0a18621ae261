package price

import (
	"context"
	"time"

	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	"github.com/muhammadchandra19/mock-market-data/pkg/logger"
	"github.com/muhammadchandra19/mock-market-data/pkg/util"
)

// DefaultRollingRange is the trailing range averaged for each point: the current day and the nine before it.
const DefaultRollingRange = 9 * 24 * time.Hour

// Config holds the query settings.
type Config struct {
	RollingRange     time.Duration
	OperationTimeout time.Duration
}

// Usecase is the usecase for reading recent close prices.
type Usecase struct {
	priceRepository v1.PriceRepository
	logger          logger.Interface
	config          Config
	now             func() time.Time
}

// NewUsecase creates a new price query usecase.
func NewUsecase(priceRepository v1.PriceRepository, logger logger.Interface, config Config) *Usecase {
	if config.RollingRange <= 0 {
		config.RollingRange = DefaultRollingRange
	}
	return &Usecase{
		priceRepository: priceRepository,
		logger:          logger,
		config:          config,
		now:             util.NowUTC,
	}
}

// GetRecentPrices returns close prices from the last lookback, oldest first.
// With withAverage set every point carries the mean close over its trailing rolling range.
func (u *Usecase) GetRecentPrices(ctx context.Context, profile v1.AssetProfile, lookback time.Duration, withAverage bool) ([]*v1.AveragedPoint, error) {
	from := u.now().Add(-lookback)

	opCtx, cancel := u.operationContext(ctx)
	defer cancel()

	points, err := u.priceRepository.GetCloseWindow(opCtx, v1.WindowFilter{
		Collection: profile.Collection,
		From:       &from,
	})
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	result := make([]*v1.AveragedPoint, len(points))
	for i, p := range points {
		result[i] = &v1.AveragedPoint{Timestamp: p.Timestamp, Close: p.Close}
	}

	if withAverage {
		for i, avg := range RollingAverage(points, u.config.RollingRange) {
			result[i].RollingAverage = util.Float64Pointer(avg)
		}
	}

	u.logger.DebugContext(ctx, "prices fetched",
		logger.NewField("collection", profile.Collection),
		logger.NewField("documents", len(result)),
	)
	return result, nil
}

// RollingAverage returns, for each point, the mean close of all points whose
// timestamp lies in [t-rng, t]. Points must be sorted by timestamp ascending.
func RollingAverage(points []*v1.ClosePoint, rng time.Duration) []float64 {
	averages := make([]float64, len(points))

	var sum float64
	left := 0
	for i, p := range points {
		sum += p.Close
		lower := p.Timestamp.Add(-rng)
		for points[left].Timestamp.Before(lower) {
			sum -= points[left].Close
			left++
		}
		averages[i] = sum / float64(i-left+1)
	}

	return averages
}

func (u *Usecase) operationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.config.OperationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, u.config.OperationTimeout)
}
