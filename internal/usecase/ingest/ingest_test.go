package ingest

import (
	"context"
	"iter"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
	"github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1/mock"
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	logger_mock "github.com/muhammadchandra19/mock-market-data/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(n int) iter.Seq[*v1.Record] {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func(yield func(*v1.Record) bool) {
		for i := 0; i < n; i++ {
			r := &v1.Record{Timestamp: start.Add(time.Duration(i) * time.Minute), Symbol: "BTC/USD", Close: 45000}
			if !yield(r) {
				return
			}
		}
	}
}

func newLogger(ctrl *gomock.Controller) *logger_mock.MockInterface {
	log := logger_mock.NewMockInterface(ctrl)
	log.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().WarnContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	return log
}

func TestUsecase_Ingest(t *testing.T) {
	testCases := []struct {
		name      string
		n         int
		batchSize int
		insertErr func(call int) error
		wantSizes []int
		assertFn  func(t *testing.T, summary v1.IngestSummary, err error)
	}{
		{
			name:      "twelve thousand records in three writes",
			n:         12000,
			wantSizes: []int{5000, 5000, 2000},
			assertFn: func(t *testing.T, summary v1.IngestSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, v1.IngestSummary{Collection: "mock_btc_minutes", Records: 12000, Batches: 3, LastBatchSize: 2000}, summary)
			},
		},
		{
			name:      "exact multiple has no empty trailing write",
			n:         10000,
			wantSizes: []int{5000, 5000},
			assertFn: func(t *testing.T, summary v1.IngestSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 5000, summary.LastBatchSize)
			},
		},
		{
			name:      "fewer records than one batch",
			n:         4999,
			wantSizes: []int{4999},
			assertFn: func(t *testing.T, summary v1.IngestSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, summary.Batches)
			},
		},
		{
			name:      "no records means no writes",
			n:         0,
			wantSizes: nil,
			assertFn: func(t *testing.T, summary v1.IngestSummary, err error) {
				assert.NoError(t, err)
				assert.Zero(t, summary.Batches)
				assert.Zero(t, summary.Records)
			},
		},
		{
			name:      "configured batch size",
			n:         7,
			batchSize: 3,
			wantSizes: []int{3, 3, 1},
			assertFn: func(t *testing.T, summary v1.IngestSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 3, summary.Batches)
			},
		},
		{
			name: "write failure stops the run",
			n:    12000,
			insertErr: func(call int) error {
				if call == 2 {
					return errors.NewConnectivityFault("insert failed", assert.AnError)
				}
				return nil
			},
			wantSizes: []int{5000, 5000},
			assertFn: func(t *testing.T, summary v1.IngestSummary, err error) {
				assert.Error(t, err)
				assert.Equal(t, errors.ExitConnectivity, errors.ExitCode(err))
				assert.Equal(t, 1, summary.Batches)
				assert.Equal(t, 5000, summary.Records)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock.NewMockPriceRepository(ctrl)
			var sizes []int

			repo.EXPECT().
				InsertBatch(gomock.Any(), "mock_btc_minutes", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, batch []*v1.Record) error {
					sizes = append(sizes, len(batch))
					if tc.insertErr != nil {
						return tc.insertErr(len(sizes))
					}
					return nil
				}).
				Times(len(tc.wantSizes))

			uc := NewUsecase(repo, newLogger(ctrl), Config{BatchSize: tc.batchSize, OperationTimeout: time.Second})
			summary, err := uc.Ingest(context.Background(), "mock_btc_minutes", records(tc.n))

			assert.Equal(t, tc.wantSizes, sizes)
			tc.assertFn(t, summary, err)
		})
	}
}

func TestUsecase_Ingest_BatchesAreOrdered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockPriceRepository(ctrl)
	var firsts []time.Time

	repo.EXPECT().
		InsertBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, batch []*v1.Record) error {
			firsts = append(firsts, batch[0].Timestamp)
			return nil
		}).
		Times(3)

	uc := NewUsecase(repo, newLogger(ctrl), Config{BatchSize: 2})
	_, err := uc.Ingest(context.Background(), "c", records(5))
	require.NoError(t, err)

	require.Len(t, firsts, 3)
	assert.True(t, firsts[0].Before(firsts[1]))
	assert.True(t, firsts[1].Before(firsts[2]))
}

func TestUsecase_Ingest_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockPriceRepository(ctrl)
	repo.EXPECT().InsertBatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewUsecase(repo, newLogger(ctrl), Config{})
	_, err := uc.Ingest(ctx, "c", records(10))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestUsecase_EnsureCollection(t *testing.T) {
	spec := v1.NewCollectionSpec("mock_btc_minutes")

	testCases := []struct {
		name     string
		mockFn   func(repo *mock.MockPriceRepository)
		calls    int
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "created",
			mockFn: func(repo *mock.MockPriceRepository) {
				repo.EXPECT().EnsureCollection(gomock.Any(), spec).Return(nil)
			},
			calls: 1,
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "second call on existing collection is a no-op",
			mockFn: func(repo *mock.MockPriceRepository) {
				gomock.InOrder(
					repo.EXPECT().EnsureCollection(gomock.Any(), spec).Return(nil),
					repo.EXPECT().EnsureCollection(gomock.Any(), spec).Return(errors.ErrCollectionExists),
				)
			},
			calls: 2,
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "other failure is fatal",
			mockFn: func(repo *mock.MockPriceRepository) {
				repo.EXPECT().EnsureCollection(gomock.Any(), spec).
					Return(errors.NewConnectivityFault("create failed", assert.AnError))
			},
			calls: 1,
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Equal(t, errors.ConnectivityFault, errors.Classify(err))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock.NewMockPriceRepository(ctrl)
			tc.mockFn(repo)

			uc := NewUsecase(repo, newLogger(ctrl), Config{})

			var err error
			for i := 0; i < tc.calls; i++ {
				err = uc.EnsureCollection(context.Background(), spec)
			}
			tc.assertFn(t, err)
		})
	}
}

func TestUsecase_Prepare(t *testing.T) {
	spec := v1.NewCollectionSpec("mock_eth_minutes")

	testCases := []struct {
		name     string
		mode     v1.WriteMode
		mockFn   func(repo *mock.MockPriceRepository)
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "append only ensures",
			mode: v1.WriteModeAppend,
			mockFn: func(repo *mock.MockPriceRepository) {
				repo.EXPECT().EnsureCollection(gomock.Any(), spec).Return(errors.ErrCollectionExists)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "replace drops first",
			mode: v1.WriteModeReplace,
			mockFn: func(repo *mock.MockPriceRepository) {
				gomock.InOrder(
					repo.EXPECT().DropCollection(gomock.Any(), "mock_eth_minutes").Return(nil),
					repo.EXPECT().EnsureCollection(gomock.Any(), spec).Return(nil),
				)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "drop failure",
			mode: v1.WriteModeReplace,
			mockFn: func(repo *mock.MockPriceRepository) {
				repo.EXPECT().DropCollection(gomock.Any(), "mock_eth_minutes").
					Return(errors.NewConfigurationFault("kafka cannot drop", errors.ErrUnsupportedOperation))
			},
			assertFn: func(t *testing.T, err error) {
				assert.Equal(t, errors.ExitConfiguration, errors.ExitCode(err))
			},
		},
		{
			name:   "unknown mode",
			mode:   v1.WriteMode("upsert"),
			mockFn: func(repo *mock.MockPriceRepository) {},
			assertFn: func(t *testing.T, err error) {
				assert.Equal(t, errors.ConfigurationFault, errors.Classify(err))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock.NewMockPriceRepository(ctrl)
			tc.mockFn(repo)

			uc := NewUsecase(repo, newLogger(ctrl), Config{})
			tc.assertFn(t, uc.Prepare(context.Background(), spec, tc.mode))
		})
	}
}
