package main

import (
	"context"
	"flag"

	"github.com/muhammadchandra19/mock-market-data/internal/app"
	"github.com/muhammadchandra19/mock-market-data/pkg/config"
	"github.com/muhammadchandra19/mock-market-data/pkg/util"
)

func main() {
	var (
		asset    = flag.String("asset", "", "Asset profile to plot (overrides CHART_ASSET)")
		lookback = flag.Duration("lookback", 0, "Window ending now (overrides CHART_LOOKBACK)")
		output   = flag.String("output", "", "Output image path (overrides CHART_OUTPUT_PATH)")
		driver   = flag.String("driver", "", "Store driver: mongodb or questdb (overrides STORE_DRIVER)")
	)
	flag.Parse()

	configure := func(cfg *config.Config) error {
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "asset":
				cfg.Chart.Asset = *asset
			case "lookback":
				cfg.Chart.Lookback = *lookback
			case "output":
				cfg.Chart.OutputPath = *output
			case "driver":
				cfg.Store.Driver = *driver
			}
		})
		return nil
	}

	app.Main("plot", configure, plot)
}

func plot(ctx context.Context, a *app.App) error {
	profile, err := a.Profiles.Get(a.Config.Chart.Asset)
	if err != nil {
		return err
	}
	ctx = util.WithAsset(ctx, profile.Name)

	// An empty window logs "no data" and exits 0.
	_, err = a.Bootstrap.Usecase.ChartUsecase.RenderRecent(ctx, profile, a.Config.Chart.Lookback)
	return err
}
