package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	"github.com/muhammadchandra19/mock-market-data/pkg/interval"
	"github.com/muhammadchandra19/mock-market-data/pkg/kafka"
	"github.com/muhammadchandra19/mock-market-data/pkg/mongodb"
	"github.com/muhammadchandra19/mock-market-data/pkg/questdb"
)

// Store drivers.
const (
	DriverMongoDB = "mongodb"
	DriverQuestDB = "questdb"
	DriverKafka   = "kafka"
)

var drivers = []string{DriverMongoDB, DriverQuestDB, DriverKafka}

// Config represents the application configuration.
type Config struct {
	App              AppConfig       `envPrefix:"APP_"`
	Store            StoreConfig     `envPrefix:"STORE_"`
	MongoDB          mongodb.Config  `envPrefix:"MONGODB_"`
	// MongoDBSecondary is the optional second cluster the price API serves for cluster=0.
	MongoDBSecondary mongodb.Config  `envPrefix:"MONGODB_SECONDARY_"`
	QuestDB          questdb.Config  `envPrefix:"QUESTDB_"`
	Kafka            kafka.Config    `envPrefix:"KAFKA_"`
	Generator        GeneratorConfig `envPrefix:"GENERATOR_"`
	Chart            ChartConfig     `envPrefix:"CHART_"`
	HTTP             HTTPConfig      `envPrefix:"HTTP_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"mock-market-data"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// StoreConfig selects and tunes the store driver.
type StoreConfig struct {
	Driver           string        `env:"DRIVER" envDefault:"mongodb"`
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT" envDefault:"30s"`
	BatchSize        int           `env:"BATCH_SIZE" envDefault:"5000"`
}

// GeneratorConfig represents the generate command configuration.
type GeneratorConfig struct {
	Asset string `env:"ASSET" envDefault:"btc"`
	// Lookback is used when Start is empty: the run covers [End-Lookback, End].
	Lookback time.Duration `env:"LOOKBACK" envDefault:"17520h"`
	// Start and End are RFC3339. Empty End means now.
	Start        string `env:"START"`
	End          string `env:"END"`
	// Interval is the spacing between records: 1s, 1m or 1h.
	Interval     string `env:"INTERVAL" envDefault:"1m"`
	Seed         uint64 `env:"SEED" envDefault:"0"`
	WriteMode    string `env:"WRITE_MODE" envDefault:"append"`
	ProfilesFile string `env:"PROFILES_FILE"`
}

// ChartConfig represents the plot command configuration.
type ChartConfig struct {
	Asset      string        `env:"ASSET" envDefault:"eth"`
	Lookback   time.Duration `env:"LOOKBACK" envDefault:"720h"`
	OutputPath string        `env:"OUTPUT_PATH"`
	Width      float64       `env:"WIDTH" envDefault:"14"`
	Height     float64       `env:"HEIGHT" envDefault:"7"`
}

// HTTPConfig represents the price API configuration.
type HTTPConfig struct {
	Port            int           `env:"PORT" envDefault:"3000"`
	Range           time.Duration `env:"RANGE" envDefault:"240h"`
	RollingRange    time.Duration `env:"ROLLING_RANGE" envDefault:"216h"`
	DefaultAsset    string        `env:"DEFAULT_ASSET" envDefault:"btc"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.NewConfigurationFault("failed to parse config", err)
	}

	return cfg, nil
}

// Validate checks the settings every command shares. It runs before any I/O.
func (c *Config) Validate() error {
	if !slices.Contains(drivers, c.Store.Driver) {
		return errors.NewConfigurationFault(fmt.Sprintf("unknown STORE_DRIVER %q, supported: %v", c.Store.Driver, drivers), nil)
	}

	if c.Store.Driver == DriverMongoDB && c.MongoDB.URI == "" {
		return errors.NewConfigurationFault("MONGODB_URI is not set", nil)
	}

	if c.Store.Driver == DriverKafka && len(c.Kafka.Brokers) == 0 {
		return errors.NewConfigurationFault("KAFKA_BROKERS is not set", nil)
	}

	if c.Store.BatchSize <= 0 {
		return errors.NewConfigurationFault("STORE_BATCH_SIZE must be positive", nil)
	}

	if !interval.IsValidInterval(c.Generator.Interval) {
		return errors.NewConfigurationFault(fmt.Sprintf("unknown GENERATOR_INTERVAL %q, supported: %v", c.Generator.Interval, interval.GetAllIntervalNames()), nil)
	}

	if !v1.WriteMode(c.Generator.WriteMode).IsValid() {
		return errors.NewConfigurationFault(fmt.Sprintf("unknown GENERATOR_WRITE_MODE %q", c.Generator.WriteMode), nil)
	}

	return nil
}

// Step returns the configured record interval.
func (g GeneratorConfig) Step() (interval.Interval, error) {
	step, err := interval.GetInterval(g.Interval)
	if err != nil {
		return interval.Interval{}, errors.NewConfigurationFault("invalid GENERATOR_INTERVAL", err)
	}
	return step, nil
}

// Range resolves the generation interval against now.
func (g GeneratorConfig) Range(now time.Time) (start, end time.Time, err error) {
	end = now.UTC()
	if g.End != "" {
		if end, err = time.Parse(time.RFC3339, g.End); err != nil {
			return time.Time{}, time.Time{}, errors.NewConfigurationFault("invalid GENERATOR_END", err)
		}
	}

	start = end.Add(-g.Lookback)
	if g.Start != "" {
		if start, err = time.Parse(time.RFC3339, g.Start); err != nil {
			return time.Time{}, time.Time{}, errors.NewConfigurationFault("invalid GENERATOR_START", err)
		}
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.NewConfigurationFault("generation range ends before it starts", nil)
	}
	return start.UTC(), end.UTC(), nil
}
