package bootstrap

import (
	"context"

	"github.com/muhammadchandra19/mock-market-data/pkg/config"
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	"github.com/muhammadchandra19/mock-market-data/pkg/httplib/healthcheck"
	"github.com/muhammadchandra19/mock-market-data/pkg/kafka"
	"github.com/muhammadchandra19/mock-market-data/pkg/mongodb"
	"github.com/muhammadchandra19/mock-market-data/pkg/questdb"
)

// Clients holds the store connection of the configured driver. Only one driver
// is set; the mongodb driver may carry a second cluster.
type Clients struct {
	MongoDB          mongodb.MongoDBClient
	MongoDBSecondary mongodb.MongoDBClient
	QuestDB          questdb.QuestDBClient
	Kafka            kafka.ProducerInterface
}

// Connect opens the connection for cfg.Store.Driver. The caller owns the
// returned Clients and must Close them on every exit path.
func Connect(ctx context.Context, cfg *config.Config) (Clients, error) {
	var (
		clients Clients
		err     error
	)

	switch cfg.Store.Driver {
	case config.DriverMongoDB:
		clients.MongoDB, err = mongodb.NewClient(ctx, cfg.MongoDB)
		if err == nil && cfg.MongoDBSecondary.URI != "" {
			clients.MongoDBSecondary, err = mongodb.NewClient(ctx, cfg.MongoDBSecondary)
			if err != nil {
				_ = clients.MongoDB.Close(ctx)
			}
		}
	case config.DriverQuestDB:
		clients.QuestDB, err = questdb.NewClient(ctx, cfg.QuestDB)
	case config.DriverKafka:
		clients.Kafka, err = kafka.NewProducer(ctx, cfg.Kafka)
	default:
		err = errors.NewConfigurationFault("unknown store driver "+cfg.Store.Driver, nil)
	}
	if err != nil {
		return Clients{}, err
	}

	return clients, nil
}

// Close releases whichever connections are open.
func (c Clients) Close(ctx context.Context) error {
	switch {
	case c.MongoDB != nil:
		err := c.MongoDB.Close(ctx)
		if c.MongoDBSecondary != nil {
			if secondaryErr := c.MongoDBSecondary.Close(ctx); err == nil {
				err = secondaryErr
			}
		}
		return err
	case c.QuestDB != nil:
		c.QuestDB.Close()
	case c.Kafka != nil:
		return c.Kafka.Close()
	}
	return nil
}

// Pingers returns the connections the health check probes.
func (c Clients) Pingers() []healthcheck.Pinger {
	var pingers []healthcheck.Pinger
	if c.MongoDB != nil {
		pingers = append(pingers, c.MongoDB)
	}
	if c.MongoDBSecondary != nil {
		pingers = append(pingers, c.MongoDBSecondary)
	}
	if c.QuestDB != nil {
		pingers = append(pingers, c.QuestDB)
	}
	return pingers
}
