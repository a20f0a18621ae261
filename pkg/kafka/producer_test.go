package kafka

import (
	"context"
	"testing"

	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewProducer_NoBrokers(t *testing.T) {
	producer, err := NewProducer(context.Background(), Config{})

	assert.Nil(t, producer)
	assert.Equal(t, errors.ExitConfiguration, errors.ExitCode(err))
}
