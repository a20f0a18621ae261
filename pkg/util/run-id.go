package util

import (
	"context"

	"github.com/google/uuid"
)

type key string

const (
	runIDKey = key("x-run-id")
	assetKey = key("asset")
)

// WithRunID returns a context carrying the run id.
// It will generate a new run id if the provided id is empty.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = NewRunID()
	}

	return context.WithValue(ctx, runIDKey, id)
}

// GetRunID returns the run id from ctx, or an empty string if not present.
func GetRunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// WithAsset returns a context carrying the asset profile name being processed.
func WithAsset(ctx context.Context, asset string) context.Context {
	return context.WithValue(ctx, assetKey, asset)
}

// GetAsset returns the asset profile name from ctx.
// will return empty string if not present
func GetAsset(ctx context.Context) string {
	asset, _ := ctx.Value(assetKey).(string)
	return asset
}

// NewRunID returns a uuid-v4 string to use as run id
func NewRunID() string {
	return uuid.NewString()
}
