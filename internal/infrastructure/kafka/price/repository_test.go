package price

import (
	"context"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	mockKafka "github.com/muhammadchandra19/mock-market-data/pkg/kafka/mock"
	"github.com/muhammadchandra19/mock-market-data/pkg/util"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_EnsureCollection(t *testing.T) {
	spec := v1.NewCollectionSpec("mock_btc_minutes")

	testCases := []struct {
		name     string
		mockFn   func(mock *mockKafka.MockProducerInterface)
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(mock *mockKafka.MockProducerInterface) {
				mock.EXPECT().EnsureTopic(gomock.Any(), "mock_btc_minutes").Return(nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "topic exists",
			mockFn: func(mock *mockKafka.MockProducerInterface) {
				mock.EXPECT().EnsureTopic(gomock.Any(), "mock_btc_minutes").Return(errors.ErrCollectionExists)
			},
			assertFn: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, errors.ErrCollectionExists)
			},
		},
		{
			name: "error - controller unreachable",
			mockFn: func(mock *mockKafka.MockProducerInterface) {
				mock.EXPECT().EnsureTopic(gomock.Any(), "mock_btc_minutes").Return(context.DeadlineExceeded)
			},
			assertFn: func(t *testing.T, err error) {
				assert.Equal(t, errors.ExitConnectivity, errors.ExitCode(err))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProducer := mockKafka.NewMockProducerInterface(ctrl)
			tc.mockFn(mockProducer)

			repo := NewRepository(mockProducer)
			tc.assertFn(t, repo.EnsureCollection(context.Background(), spec))
		})
	}
}

func TestPrice_InsertBatch(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []*v1.Record{
		{Timestamp: now, Symbol: "ETH/USD", BaseAsset: "ETH", QuoteAsset: "USD", Close: 2800.12, VolumeQuote: 1e8, VolumeBase: 35713.47, TradeCount: 90000},
		{Timestamp: now.Add(time.Minute), Symbol: "ETH/USD", BaseAsset: "ETH", QuoteAsset: "USD", Close: 2801},
	}

	t.Run("publishes one message per record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockProducer := mockKafka.NewMockProducerInterface(ctrl)
		mockProducer.EXPECT().
			WriteMessages(gomock.Any(), "mock_eth_minutes", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				require.Len(t, messages, 2)
				assert.Equal(t, []byte("ETH/USD"), messages[0].Key)
				assert.Equal(t, now, messages[0].Time)
				require.Len(t, messages[0].Headers, 1)
				assert.Equal(t, "run-1", string(messages[0].Headers[0].Value))

				var decoded map[string]any
				require.NoError(t, sonic.Unmarshal(messages[0].Value, &decoded))
				assert.Equal(t, "ETH", decoded["base_asset"])
				assert.Equal(t, 2800.12, decoded["close"])
				assert.Equal(t, "2025-01-01T00:00:00Z", decoded["timestamp"])
				return nil
			})

		repo := NewRepository(mockProducer)
		ctx := util.WithRunID(context.Background(), "run-1")
		assert.NoError(t, repo.InsertBatch(ctx, "mock_eth_minutes", records))
	})

	t.Run("empty batch is not written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockProducer := mockKafka.NewMockProducerInterface(ctrl)
		repo := NewRepository(mockProducer)
		assert.NoError(t, repo.InsertBatch(context.Background(), "mock_eth_minutes", nil))
	})

	t.Run("write failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockProducer := mockKafka.NewMockProducerInterface(ctrl)
		mockProducer.EXPECT().WriteMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

		repo := NewRepository(mockProducer)
		err := repo.InsertBatch(context.Background(), "mock_eth_minutes", records)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, errors.UnclassifiedFault, errors.Classify(err))
	})
}

func TestPrice_UnsupportedOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewRepository(mockKafka.NewMockProducerInterface(ctrl))

	points, err := repo.GetCloseWindow(context.Background(), v1.WindowFilter{Collection: "mock_btc_minutes"})
	assert.Nil(t, points)
	assert.ErrorIs(t, err, errors.ErrUnsupportedOperation)
	assert.Equal(t, errors.ExitConfiguration, errors.ExitCode(err))

	err = repo.DropCollection(context.Background(), "mock_btc_minutes")
	assert.ErrorIs(t, err, errors.ErrUnsupportedOperation)
}
