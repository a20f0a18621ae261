package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadchandra19/mock-market-data/internal/bootstrap"
	"github.com/muhammadchandra19/mock-market-data/pkg/config"
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	"github.com/muhammadchandra19/mock-market-data/pkg/logger"
	"github.com/muhammadchandra19/mock-market-data/pkg/util"
)

// App is a command's runtime: validated config, profiles, logger and one open store connection.
type App struct {
	Config    *config.Config
	Profiles  config.Profiles
	Logger    logger.Interface
	Bootstrap bootstrap.Bootstrap
}

// ConfigureFunc adjusts the loaded config before it is validated, e.g. with command flags.
type ConfigureFunc func(cfg *config.Config) error

// RunFunc is a command body.
type RunFunc func(ctx context.Context, a *App) error

// Main runs a command and exits with the code of the fault it returned.
// SIGINT and SIGTERM cancel the run context. The store connection is
// released before the process exits, on every path.
func Main(name string, configure ConfigureFunc, run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = util.WithRunID(ctx, "")

	log, err := Execute(ctx, name, configure, run)
	stop()

	if err != nil {
		if log != nil {
			log.ErrorContext(ctx, err, logger.NewField("exit_code", errors.ExitCode(err)))
		} else {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		}
	}
	if log != nil {
		_ = log.Sync()
	}

	os.Exit(errors.ExitCode(err))
}

// Execute loads the config, connects to the store, calls run and closes the
// connection again. The returned logger is nil when the failure happened
// before it could be built.
func Execute(ctx context.Context, name string, configure ConfigureFunc, run RunFunc) (logger.Interface, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if configure != nil {
		if err := configure(cfg); err != nil {
			return nil, err
		}
	}

	log, err := logger.NewLogger(
		logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)),
		logger.WithService(name),
	)
	if err != nil {
		return nil, errors.NewConfigurationFault("failed to build logger", err)
	}

	a, err := New(ctx, cfg, log)
	if err != nil {
		return log, err
	}
	defer a.Close(ctx)

	return log, run(ctx, a)
}

// New validates cfg and opens the configured store. Validation runs before any I/O.
func New(ctx context.Context, cfg *config.Config, log logger.Interface) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	profiles, err := config.LoadProfiles(cfg.Generator.ProfilesFile)
	if err != nil {
		return nil, err
	}

	clients, err := bootstrap.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	b, err := (&bootstrap.Bootstrap{}).Init(bootstrap.BootstrapConfig{
		Config:   cfg,
		Profiles: profiles,
		Logger:   log,
		Clients:  clients,
	})
	if err != nil {
		_ = clients.Close(ctx)
		return nil, err
	}

	log.InfoContext(ctx, "store connected", logger.NewField("driver", cfg.Store.Driver))

	return &App{
		Config:    cfg,
		Profiles:  profiles,
		Logger:    log,
		Bootstrap: b,
	}, nil
}

// Close releases the store connection. It still runs after ctx is cancelled.
func (a *App) Close(ctx context.Context) {
	if err := a.Bootstrap.Clients.Close(context.WithoutCancel(ctx)); err != nil {
		a.Logger.WarnContext(ctx, "failed to close store connection", logger.NewField("error", err.Error()))
	}
}
