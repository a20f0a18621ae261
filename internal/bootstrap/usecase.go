package bootstrap

import (
	priceDomain "github.com/muhammadchandra19/mock-market-data/internal/domain/price"
	chartUc "github.com/muhammadchandra19/mock-market-data/internal/usecase/chart"
	ingestUc "github.com/muhammadchandra19/mock-market-data/internal/usecase/ingest"
	priceUc "github.com/muhammadchandra19/mock-market-data/internal/usecase/price"
)

// Usecase is the usecase layer.
type Usecase struct {
	IngestUsecase         priceDomain.IngestUsecase
	ChartUsecase          priceDomain.ChartUsecase
	QueryUsecase          priceDomain.QueryUsecase
	// SecondaryQueryUsecase is nil unless a second cluster is configured.
	SecondaryQueryUsecase priceDomain.QueryUsecase
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() {
	timeout := b.Config.Store.OperationTimeout

	b.Usecase.IngestUsecase = ingestUc.NewUsecase(b.Repository.PriceRepository, b.Logger, ingestUc.Config{
		BatchSize:        b.Config.Store.BatchSize,
		OperationTimeout: timeout,
	})
	b.Usecase.ChartUsecase = chartUc.NewUsecase(b.Repository.PriceRepository, b.Repository.ChartRenderer, b.Logger, chartUc.Config{
		OutputPath:       b.Config.Chart.OutputPath,
		Width:            b.Config.Chart.Width,
		Height:           b.Config.Chart.Height,
		OperationTimeout: timeout,
	})
	queryConfig := priceUc.Config{
		RollingRange:     b.Config.HTTP.RollingRange,
		OperationTimeout: timeout,
	}
	b.Usecase.QueryUsecase = priceUc.NewUsecase(b.Repository.PriceRepository, b.Logger, queryConfig)
	if b.Repository.SecondaryPriceRepository != nil {
		b.Usecase.SecondaryQueryUsecase = priceUc.NewUsecase(b.Repository.SecondaryPriceRepository, b.Logger, queryConfig)
	}
}
