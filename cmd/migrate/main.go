package main

import (
	"context"
	"flag"

	"github.com/muhammadchandra19/mock-market-data/internal/app"
	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
	"github.com/muhammadchandra19/mock-market-data/pkg/config"
	"github.com/muhammadchandra19/mock-market-data/pkg/logger"
	"github.com/muhammadchandra19/mock-market-data/pkg/util"
)

func main() {
	driver := flag.String("driver", "", "Store driver: mongodb, questdb or kafka (overrides STORE_DRIVER)")
	flag.Parse()

	configure := func(cfg *config.Config) error {
		if *driver != "" {
			cfg.Store.Driver = *driver
		}
		return nil
	}

	app.Main("migrate", configure, migrate)
}

// migrate ensures the collection of every profile exists.
func migrate(ctx context.Context, a *app.App) error {
	for _, name := range a.Profiles.Names() {
		profile, err := a.Profiles.Get(name)
		if err != nil {
			return err
		}

		if err := a.Bootstrap.Usecase.IngestUsecase.EnsureCollection(util.WithAsset(ctx, name), v1.NewCollectionSpec(profile.Collection)); err != nil {
			return err
		}
	}

	a.Logger.InfoContext(ctx, "migrations completed", logger.NewField("profiles", a.Profiles.Names()))
	return nil
}
