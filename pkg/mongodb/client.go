package mongodb

import (
	"context"
	"time"

	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// namespaceExistsCode is the server error returned when creating a collection that already exists.
const namespaceExistsCode = 48

// Client is the MongoDB client bound to a single database.
type Client struct {
	client   *mongo.Client
	database *mongo.Database
	config   Config
}

// Config is the MongoDB client configuration.
type Config struct {
	URI            string        `env:"URI"`
	Database       string        `env:"DATABASE" envDefault:"crypto_db"`
	AppName        string        `env:"APP_NAME" envDefault:"mock-market-data"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
}

// TimeSeriesSpec describes the layout of a time-series collection.
type TimeSeriesSpec struct {
	TimeField   string
	MetaField   string
	Granularity string
}

// Ensure Client implements MongoDBClient interface
var _ MongoDBClient = (*Client)(nil)

// NewClient connects to MongoDB and verifies the deployment is reachable.
func NewClient(ctx context.Context, config Config) (MongoDBClient, error) {
	if config.URI == "" {
		return nil, errors.NewConfigurationFault("MONGODB_URI is not set", nil)
	}

	opts := options.Client().
		ApplyURI(config.URI).
		SetAppName(config.AppName).
		SetConnectTimeout(config.ConnectTimeout).
		SetServerSelectionTimeout(config.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.NewConfigurationFault("invalid mongodb connection options", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, config.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.NewConnectivityFault("failed to ping mongodb", err)
	}

	return &Client{
		client:   client,
		database: client.Database(config.Database),
		config:   config,
	}, nil
}

// Close disconnects the client.
func (c *Client) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

// Ping pings the primary.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// CreateTimeSeriesCollection creates a time-series collection.
// It returns errors.ErrCollectionExists when the collection is already present.
func (c *Client) CreateTimeSeriesCollection(ctx context.Context, name string, spec TimeSeriesSpec) error {
	tsOpts := options.TimeSeries().SetTimeField(spec.TimeField)
	if spec.MetaField != "" {
		tsOpts.SetMetaField(spec.MetaField)
	}
	if spec.Granularity != "" {
		tsOpts.SetGranularity(spec.Granularity)
	}

	err := c.database.CreateCollection(ctx, name, options.CreateCollection().SetTimeSeriesOptions(tsOpts))
	if IsNamespaceExists(err) {
		return errors.ErrCollectionExists
	}
	return err
}

// InsertMany inserts documents in a single bulk request and returns the number inserted.
func (c *Client) InsertMany(ctx context.Context, collection string, documents []any) (int, error) {
	res, err := c.database.Collection(collection).InsertMany(ctx, documents)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

// Aggregate runs an aggregation pipeline on a collection.
func (c *Client) Aggregate(ctx context.Context, collection string, pipeline any) (CursorInterface, error) {
	cursor, err := c.database.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	return NewCursorWrapper(cursor), nil
}

// DropCollection drops a collection. Dropping a missing collection is not an error.
func (c *Client) DropCollection(ctx context.Context, collection string) error {
	return c.database.Collection(collection).Drop(ctx)
}

// IsNamespaceExists reports whether err is the server's NamespaceExists error.
func IsNamespaceExists(err error) bool {
	if err == nil {
		return false
	}
	var se mongo.ServerError
	if errors.As(err, &se) {
		return se.HasErrorCode(namespaceExistsCode)
	}
	return false
}
