package rest

import (
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/muhammadchandra19/mock-market-data/internal/domain/price"
	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
	"github.com/muhammadchandra19/mock-market-data/pkg/logger"
	"github.com/shopspring/decimal"
)

// ProfileResolver maps a trading symbol to its asset profile.
type ProfileResolver interface {
	BySymbol(symbol, fallback string) (v1.AssetProfile, error)
}

// PriceConfig holds the price API settings.
type PriceConfig struct {
	Range        time.Duration
	DefaultAsset string
}

// Cluster names accepted by the cluster query parameter.
const (
	PrimaryCluster   = "1"
	SecondaryCluster = "0"
)

// PriceHandler serves the recent price API.
type PriceHandler struct {
	clusters map[string]price.QueryUsecase
	profiles ProfileResolver
	logger   logger.Interface
	config   PriceConfig
}

// PriceResponse is the body of GET /api/prices.
type PriceResponse struct {
	Data []*v1.AveragedPoint `json:"data"`
	Meta PriceMeta           `json:"meta"`
}

// PriceMeta describes the query that produced a PriceResponse.
type PriceMeta struct {
	WallTimeMs        int64   `json:"wallTimeMs"`
	DocumentsReturned int     `json:"documentsReturned"`
	ResponseSizeKB    float64 `json:"responseSizeKB"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(usecase price.QueryUsecase, profiles ProfileResolver, logger logger.Interface, config PriceConfig) *PriceHandler {
	return &PriceHandler{
		clusters: map[string]price.QueryUsecase{PrimaryCluster: usecase},
		profiles: profiles,
		logger:   logger,
		config:   config,
	}
}

// WithCluster serves the cluster query value name from usecase.
func (h *PriceHandler) WithCluster(name string, usecase price.QueryUsecase) *PriceHandler {
	h.clusters[name] = usecase
	return h
}

// usecaseFor returns the usecase of cluster, falling back to the primary one.
func (h *PriceHandler) usecaseFor(cluster string) price.QueryUsecase {
	if usecase, ok := h.clusters[cluster]; ok {
		return usecase
	}
	return h.clusters[PrimaryCluster]
}

// GetPrices handles GET /api/prices?symbol=BTC/USD&window=1&cluster=0.
// Unknown symbols fall back to the default asset, unknown clusters to the primary.
func (h *PriceHandler) GetPrices(c *gin.Context) {
	ctx := c.Request.Context()
	symbol := c.Query("symbol")

	profile, err := h.profiles.BySymbol(symbol, h.config.DefaultAsset)
	if err != nil {
		h.fail(c, err, symbol)
		return
	}

	start := time.Now()
	data, err := h.usecaseFor(c.Query("cluster")).GetRecentPrices(ctx, profile, h.config.Range, c.Query("window") == "1")
	if err != nil {
		h.fail(c, err, symbol)
		return
	}
	wallTime := time.Since(start)

	if data == nil {
		data = []*v1.AveragedPoint{}
	}

	encoded, err := sonic.Marshal(data)
	if err != nil {
		h.fail(c, err, symbol)
		return
	}

	body, err := sonic.Marshal(PriceResponse{
		Data: data,
		Meta: PriceMeta{
			WallTimeMs:        wallTime.Milliseconds(),
			DocumentsReturned: len(data),
			ResponseSizeKB:    sizeKB(len(encoded)),
		},
	})
	if err != nil {
		h.fail(c, err, symbol)
		return
	}

	h.logger.InfoContext(ctx, "prices served",
		logger.NewField("collection", profile.Collection),
		logger.NewField("documents", len(data)),
		logger.NewField("wall_time_ms", wallTime.Milliseconds()),
	)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// Test handles GET /test.
func (h *PriceHandler) Test(c *gin.Context) {
	c.String(http.StatusOK, "Test route working")
}

func (h *PriceHandler) fail(c *gin.Context, err error, symbol string) {
	h.logger.ErrorContext(c.Request.Context(), err, logger.NewField("symbol", symbol))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

func sizeKB(n int) float64 {
	return decimal.NewFromInt(int64(n)).Div(decimal.NewFromInt(1024)).Round(2).InexactFloat64()
}
