package chart

import (
	"context"
	"fmt"
	"strings"
	"time"

	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	"github.com/muhammadchandra19/mock-market-data/pkg/logger"
	"github.com/muhammadchandra19/mock-market-data/pkg/util"
)

// Config holds the chart output settings.
type Config struct {
	// OutputPath overrides the default "<asset>_price_chart.png".
	OutputPath string
	Width      float64
	Height     float64
	// OperationTimeout bounds the window query. Zero disables it.
	OperationTimeout time.Duration
}

// Usecase is the usecase for rendering the recent close-price chart.
type Usecase struct {
	priceRepository v1.PriceRepository
	renderer        v1.ChartRenderer
	logger          logger.Interface
	config          Config
	now             func() time.Time
}

// NewUsecase creates a new chart usecase.
func NewUsecase(priceRepository v1.PriceRepository, renderer v1.ChartRenderer, logger logger.Interface, config Config) *Usecase {
	if config.Width <= 0 {
		config.Width = 14
	}
	if config.Height <= 0 {
		config.Height = 7
	}
	return &Usecase{
		priceRepository: priceRepository,
		renderer:        renderer,
		logger:          logger,
		config:          config,
		now:             util.NowUTC,
	}
}

// RenderRecent reads close prices in [now-lookback, now] and renders them.
// An empty window is reported as "no data": nothing is written and any
// previous chart at the output path is left as it was.
func (u *Usecase) RenderRecent(ctx context.Context, profile v1.AssetProfile, lookback time.Duration) (v1.ChartResult, error) {
	to := u.now()
	from := to.Add(-lookback)

	opCtx, cancel := u.operationContext(ctx)
	defer cancel()

	points, err := u.priceRepository.GetCloseWindow(opCtx, v1.WindowFilter{
		Collection: profile.Collection,
		From:       &from,
		To:         &to,
	})
	if err != nil {
		return v1.ChartResult{}, errors.TracerFromError(err)
	}

	if len(points) == 0 {
		u.logger.InfoContext(ctx, "no data",
			logger.NewField("collection", profile.Collection),
			logger.NewField("from", from),
			logger.NewField("to", to),
		)
		return v1.ChartResult{}, nil
	}

	spec := u.chartSpec(profile, lookback)
	if err := u.renderer.Render(points, spec); err != nil {
		return v1.ChartResult{}, errors.NewUnclassifiedFault("failed to render chart", err)
	}

	u.logger.InfoContext(ctx, "chart saved",
		logger.NewField("path", spec.Path),
		logger.NewField("points", len(points)),
	)
	return v1.ChartResult{Rendered: true, Path: spec.Path, Points: len(points)}, nil
}

func (u *Usecase) chartSpec(profile v1.AssetProfile, lookback time.Duration) v1.ChartSpec {
	path := u.config.OutputPath
	if path == "" {
		path = strings.ToLower(profile.Name) + "_price_chart.png"
	}

	return v1.ChartSpec{
		Title:  fmt.Sprintf("%s Price Over the Last %s (Mock Data)", profile.Symbol, describeLookback(lookback)),
		XLabel: "Date",
		YLabel: fmt.Sprintf("Closing Price (%s)", profile.QuoteAsset),
		Width:  u.config.Width,
		Height: u.config.Height,
		Path:   path,
	}
}

func describeLookback(lookback time.Duration) string {
	const day = 24 * time.Hour
	switch {
	case lookback >= day && lookback%day == 0:
		return plural(int(lookback/day), "Day")
	case lookback >= time.Hour && lookback%time.Hour == 0:
		return plural(int(lookback/time.Hour), "Hour")
	case lookback >= time.Minute && lookback%time.Minute == 0:
		return plural(int(lookback/time.Minute), "Minute")
	default:
		return lookback.String()
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func (u *Usecase) operationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.config.OperationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, u.config.OperationTimeout)
}
