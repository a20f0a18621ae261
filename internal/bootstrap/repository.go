package bootstrap

import (
	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
	kafkaInfra "github.com/muhammadchandra19/mock-market-data/internal/infrastructure/kafka/price"
	mongoInfra "github.com/muhammadchandra19/mock-market-data/internal/infrastructure/mongodb/price"
	plotInfra "github.com/muhammadchandra19/mock-market-data/internal/infrastructure/plot"
	questdbInfra "github.com/muhammadchandra19/mock-market-data/internal/infrastructure/questdb/price"
	"github.com/muhammadchandra19/mock-market-data/pkg/config"
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
)

// Repository is the repository layer.
type Repository struct {
	PriceRepository          v1.PriceRepository
	// SecondaryPriceRepository reads the second mongodb cluster. Nil when none is configured.
	SecondaryPriceRepository v1.PriceRepository
	ChartRenderer            v1.ChartRenderer
}

// registerRepository picks the price repository of the configured driver.
func (b *Bootstrap) registerRepository() error {
	driver := b.Config.Store.Driver

	switch {
	case driver == config.DriverMongoDB && b.Clients.MongoDB != nil:
		b.Repository.PriceRepository = mongoInfra.NewRepository(b.Clients.MongoDB)
		if b.Clients.MongoDBSecondary != nil {
			b.Repository.SecondaryPriceRepository = mongoInfra.NewRepository(b.Clients.MongoDBSecondary)
		}
	case driver == config.DriverQuestDB && b.Clients.QuestDB != nil:
		b.Repository.PriceRepository = questdbInfra.NewRepository(b.Clients.QuestDB)
	case driver == config.DriverKafka && b.Clients.Kafka != nil:
		b.Repository.PriceRepository = kafkaInfra.NewRepository(b.Clients.Kafka)
	default:
		return errors.NewConfigurationFault("no connection for store driver "+driver, nil)
	}

	b.Repository.ChartRenderer = plotInfra.NewRenderer()
	return nil
}
