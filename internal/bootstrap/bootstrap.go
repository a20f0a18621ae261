package bootstrap

import (
	"github.com/muhammadchandra19/mock-market-data/pkg/config"
	"github.com/muhammadchandra19/mock-market-data/pkg/logger"
)

// Bootstrap wires the store clients into repositories, usecases and the REST API.
type Bootstrap struct {
	Config     *config.Config
	Profiles   config.Profiles
	Logger     logger.Interface
	Clients    Clients
	Repository Repository
	Usecase    Usecase
	REST       REST
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Config   *config.Config
	Profiles config.Profiles
	Logger   logger.Interface
	Clients  Clients
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) (Bootstrap, error) {
	b.Config = config.Config
	b.Profiles = config.Profiles
	b.Logger = config.Logger
	b.Clients = config.Clients

	if err := b.registerRepository(); err != nil {
		return Bootstrap{}, err
	}
	b.registerUsecase()
	b.registerREST()

	return *b, nil
}
