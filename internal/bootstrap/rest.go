package bootstrap

import (
	"github.com/gin-gonic/gin"
	"github.com/muhammadchandra19/mock-market-data/internal/rest"
	"github.com/muhammadchandra19/mock-market-data/pkg/httplib/healthcheck"
)

// REST is the HTTP API.
type REST struct {
	PriceHandler *rest.PriceHandler
	HealthCheck  *healthcheck.HealthCheck
	Router       *gin.Engine
}

// registerREST registers the HTTP API.
func (b *Bootstrap) registerREST() {
	b.REST.PriceHandler = rest.NewPriceHandler(b.Usecase.QueryUsecase, b.Profiles, b.Logger, rest.PriceConfig{
		Range:        b.Config.HTTP.Range,
		DefaultAsset: b.Config.HTTP.DefaultAsset,
	})
	if b.Usecase.SecondaryQueryUsecase != nil {
		b.REST.PriceHandler.WithCluster(rest.SecondaryCluster, b.Usecase.SecondaryQueryUsecase)
	}
	b.REST.HealthCheck = healthcheck.New(b.Config.Store.OperationTimeout, b.Clients.Pingers()...)
	b.REST.Router = rest.NewRouter(b.REST.PriceHandler, b.REST.HealthCheck, b.Logger)
}
