package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// TestContainer wraps a MongoDB testcontainer with a connected client.
type TestContainer struct {
	Container testcontainers.Container
	Client    MongoDBClient
	URI       string
	ctx       context.Context
}

// TestContainerConfig holds configuration for the test container
type TestContainerConfig struct {
	// Image must be MongoDB 5.0 or newer for time-series collections.
	Image          string
	Database       string
	StartupTimeout time.Duration
	ContainerName  string
}

// DefaultTestContainerConfig returns a default configuration
func DefaultTestContainerConfig() *TestContainerConfig {
	return &TestContainerConfig{
		Image:          "mongo:7",
		Database:       "crypto_test_db",
		StartupTimeout: 3 * time.Minute,
	}
}

// NewTestContainer creates and starts a new MongoDB test container
func NewTestContainer(ctx context.Context, config *TestContainerConfig) (*TestContainer, error) {
	if config == nil {
		config = DefaultTestContainerConfig()
	}

	var opts []testcontainers.ContainerCustomizer
	if config.ContainerName != "" {
		opts = append(opts, testcontainers.WithName(config.ContainerName))
	}

	container, err := tcmongodb.Run(ctx, config.Image, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to start mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	client, err := NewClient(ctx, Config{
		URI:            uri,
		Database:       config.Database,
		AppName:        "testcontainer",
		ConnectTimeout: config.StartupTimeout,
	})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &TestContainer{
		Container: container,
		Client:    client,
		URI:       uri,
		ctx:       ctx,
	}, nil
}

// Close disconnects the client and terminates the container
func (tc *TestContainer) Close() error {
	if tc.Client != nil {
		_ = tc.Client.Close(tc.ctx)
	}

	if tc.Container != nil {
		if err := tc.Container.Terminate(tc.ctx); err != nil {
			return fmt.Errorf("failed to terminate container: %w", err)
		}
	}

	return nil
}
