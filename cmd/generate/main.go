package main

import (
	"context"
	"flag"
	"time"

	"github.com/muhammadchandra19/mock-market-data/internal/app"
	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
	"github.com/muhammadchandra19/mock-market-data/internal/usecase/synthesizer"
	"github.com/muhammadchandra19/mock-market-data/pkg/config"
	"github.com/muhammadchandra19/mock-market-data/pkg/logger"
	"github.com/muhammadchandra19/mock-market-data/pkg/util"
)

func main() {
	var (
		asset     = flag.String("asset", "", "Asset profile to generate (overrides GENERATOR_ASSET)")
		start     = flag.String("start", "", "RFC3339 start of the range (overrides GENERATOR_START)")
		end       = flag.String("end", "", "RFC3339 end of the range (overrides GENERATOR_END)")
		lookback  = flag.Duration("lookback", 0, "Range length ending at -end or now (overrides GENERATOR_LOOKBACK)")
		step      = flag.String("interval", "", "Record interval: 1s, 1m or 1h (overrides GENERATOR_INTERVAL)")
		seed      = flag.Uint64("seed", 0, "Random seed, 0 picks one (overrides GENERATOR_SEED)")
		mode      = flag.String("mode", "", "Write mode: append or replace (overrides GENERATOR_WRITE_MODE)")
		driver    = flag.String("driver", "", "Store driver: mongodb, questdb or kafka (overrides STORE_DRIVER)")
		batchSize = flag.Int("batch-size", 0, "Records per write (overrides STORE_BATCH_SIZE)")
	)
	flag.Parse()

	configure := func(cfg *config.Config) error {
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "asset":
				cfg.Generator.Asset = *asset
			case "start":
				cfg.Generator.Start = *start
			case "end":
				cfg.Generator.End = *end
			case "lookback":
				cfg.Generator.Lookback = *lookback
			case "interval":
				cfg.Generator.Interval = *step
			case "seed":
				cfg.Generator.Seed = *seed
			case "mode":
				cfg.Generator.WriteMode = *mode
			case "driver":
				cfg.Store.Driver = *driver
			case "batch-size":
				cfg.Store.BatchSize = *batchSize
			}
		})
		return nil
	}

	app.Main("generate", configure, generate)
}

func generate(ctx context.Context, a *app.App) error {
	cfg := a.Config.Generator

	profile, err := a.Profiles.Get(cfg.Asset)
	if err != nil {
		return err
	}
	ctx = util.WithAsset(ctx, profile.Name)

	start, end, err := cfg.Range(util.NowUTC())
	if err != nil {
		return err
	}

	step, err := cfg.Step()
	if err != nil {
		return err
	}

	synth, err := synthesizer.New(profile, synthesizer.NewSource(cfg.Seed), synthesizer.WithInterval(step))
	if err != nil {
		return err
	}

	ingest := a.Bootstrap.Usecase.IngestUsecase
	spec := v1.NewCollectionSpec(profile.Collection).ForInterval(step)
	if err := ingest.Prepare(ctx, spec, v1.WriteMode(cfg.WriteMode)); err != nil {
		return err
	}

	a.Logger.InfoContext(ctx, "generating records",
		logger.NewField("collection", spec.Name),
		logger.NewField("start", start.Format(time.RFC3339)),
		logger.NewField("end", end.Format(time.RFC3339)),
		logger.NewField("records", synth.Count(start, end)),
		logger.NewField("interval", step.Name),
		logger.NewField("mode", cfg.WriteMode),
	)

	began := time.Now()
	summary, err := ingest.Ingest(ctx, spec.Name, synth.Records(start, end))
	if err != nil {
		return err
	}

	a.Logger.InfoContext(ctx, "generation complete",
		logger.NewField("collection", summary.Collection),
		logger.NewField("records", summary.Records),
		logger.NewField("batches", summary.Batches),
		logger.NewField("elapsed", time.Since(began).String()),
	)
	return nil
}
