package price

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	"github.com/muhammadchandra19/mock-market-data/pkg/interval"
	mockQuestDB "github.com/muhammadchandra19/mock-market-data/pkg/questdb/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_EnsureCollection(t *testing.T) {
	spec := v1.NewCollectionSpec("mock_btc_minutes")

	testCases := []struct {
		name     string
		mockFn   func(mock *mockQuestDB.MockQuestDBClient)
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(mock *mockQuestDB.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), createTableQuery(spec)).Return(nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "already exists",
			mockFn: func(mock *mockQuestDB.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), gomock.Any()).
					Return(errors.NewTracer("table already exists [table=mock_btc_minutes]"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, errors.ErrCollectionExists)
			},
		},
		{
			name: "error - network",
			mockFn: func(mock *mockQuestDB.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), gomock.Any()).
					Return(&net.OpError{Op: "dial", Net: "tcp", Err: assert.AnError})
			},
			assertFn: func(t *testing.T, err error) {
				assert.Equal(t, errors.ConnectivityFault, errors.Classify(err))
			},
		},
		{
			name: "error - syntax",
			mockFn: func(mock *mockQuestDB.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			assertFn: func(t *testing.T, err error) {
				assert.Equal(t, errors.UnclassifiedFault, errors.Classify(err))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mockQuestDB.NewMockQuestDBClient(ctrl)
			tc.mockFn(mockClient)

			repo := NewRepository(mockClient)
			tc.assertFn(t, repo.EnsureCollection(context.Background(), spec))
		})
	}
}

func TestCreateTableQuery(t *testing.T) {
	query := createTableQuery(v1.NewCollectionSpec("mock_eth_minutes"))

	assert.Contains(t, query, `CREATE TABLE "mock_eth_minutes"`)
	assert.Contains(t, query, "symbol SYMBOL")
	assert.Contains(t, query, "TIMESTAMP(timestamp) PARTITION BY DAY")

	hourly := v1.NewCollectionSpec("hourly").ForInterval(interval.Interval1h)
	assert.Contains(t, createTableQuery(hourly), "PARTITION BY MONTH")

	perSecond := v1.NewCollectionSpec("per_second").ForInterval(interval.Interval1s)
	assert.Contains(t, createTableQuery(perSecond), "PARTITION BY HOUR")
}

func TestPrice_InsertBatch(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		testData []*v1.Record
		mockFn   func(testData []*v1.Record, mock *mockQuestDB.MockQuestDBClient)
		assertFn func(t *testing.T, err error)
	}{
		{
			name:     "success",
			testData: []*v1.Record{{Timestamp: now, Symbol: "BTC/USD"}, {Timestamp: now.Add(time.Minute), Symbol: "BTC/USD"}},
			mockFn: func(testData []*v1.Record, mock *mockQuestDB.MockQuestDBClient) {
				mock.EXPECT().
					CopyFrom(gomock.Any(), pgx.Identifier{"mock_btc_minutes"}, v1.Columns, gomock.Any()).
					Return(int64(len(testData)), nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:     "empty batch is not written",
			testData: []*v1.Record{},
			mockFn: func(testData []*v1.Record, mock *mockQuestDB.MockQuestDBClient) {
				mock.EXPECT().CopyFrom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:     "error - copy from fails",
			testData: []*v1.Record{{Timestamp: now, Symbol: "BTC/USD"}},
			mockFn: func(testData []*v1.Record, mock *mockQuestDB.MockQuestDBClient) {
				mock.EXPECT().CopyFrom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), assert.AnError)
			},
			assertFn: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, assert.AnError)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mockQuestDB.NewMockQuestDBClient(ctrl)
			tc.mockFn(tc.testData, mockClient)

			repo := NewRepository(mockClient)
			tc.assertFn(t, repo.InsertBatch(context.Background(), "mock_btc_minutes", tc.testData))
		})
	}
}

func TestPrice_GetCloseWindow(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	testCases := []struct {
		name     string
		filter   v1.WindowFilter
		mockFn   func(client *mockQuestDB.MockQuestDBClient, rows *mockQuestDB.MockRowsInterface)
		assertFn func(t *testing.T, points []*v1.ClosePoint, err error)
	}{
		{
			name:   "success",
			filter: v1.WindowFilter{Collection: "mock_btc_minutes", From: &from, To: &to},
			mockFn: func(client *mockQuestDB.MockQuestDBClient, rows *mockQuestDB.MockRowsInterface) {
				client.EXPECT().Query(
					gomock.Any(),
					`SELECT timestamp, close FROM "mock_btc_minutes" WHERE 1=1 AND timestamp >= $1 AND timestamp <= $2 ORDER BY timestamp ASC`,
					from,
					to,
				).Return(rows, nil)
				gomock.InOrder(
					rows.EXPECT().Next().Return(true),
					rows.EXPECT().Scan(gomock.Any(), gomock.Any()).DoAndReturn(func(dest ...any) error {
						*(dest[0].(*time.Time)) = from
						*(dest[1].(*float64)) = 45000.5
						return nil
					}),
					rows.EXPECT().Next().Return(false),
				)
				rows.EXPECT().Err().Return(nil)
				rows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, points []*v1.ClosePoint, err error) {
				require.NoError(t, err)
				assert.Equal(t, []*v1.ClosePoint{{Timestamp: from, Close: 45000.5}}, points)
			},
		},
		{
			name:   "symbol and open end",
			filter: v1.WindowFilter{Collection: "mock_btc_minutes", Symbol: "BTC/USD", From: &from},
			mockFn: func(client *mockQuestDB.MockQuestDBClient, rows *mockQuestDB.MockRowsInterface) {
				client.EXPECT().Query(
					gomock.Any(),
					`SELECT timestamp, close FROM "mock_btc_minutes" WHERE 1=1 AND symbol = $1 AND timestamp >= $2 ORDER BY timestamp ASC`,
					"BTC/USD",
					from,
				).Return(rows, nil)
				rows.EXPECT().Next().Return(false)
				rows.EXPECT().Err().Return(nil)
				rows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, points []*v1.ClosePoint, err error) {
				require.NoError(t, err)
				assert.Empty(t, points)
			},
		},
		{
			name:   "error - query fails",
			filter: v1.WindowFilter{Collection: "mock_btc_minutes"},
			mockFn: func(client *mockQuestDB.MockQuestDBClient, rows *mockQuestDB.MockRowsInterface) {
				client.EXPECT().Query(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)
			},
			assertFn: func(t *testing.T, points []*v1.ClosePoint, err error) {
				assert.Nil(t, points)
				assert.Equal(t, errors.ConnectivityFault, errors.Classify(err))
			},
		},
		{
			name:   "error - scan fails",
			filter: v1.WindowFilter{Collection: "mock_btc_minutes"},
			mockFn: func(client *mockQuestDB.MockQuestDBClient, rows *mockQuestDB.MockRowsInterface) {
				client.EXPECT().Query(gomock.Any(), gomock.Any()).Return(rows, nil)
				rows.EXPECT().Next().Return(true)
				rows.EXPECT().Scan(gomock.Any(), gomock.Any()).Return(assert.AnError)
				rows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, points []*v1.ClosePoint, err error) {
				assert.Nil(t, points)
				assert.ErrorIs(t, err, assert.AnError)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mockQuestDB.NewMockQuestDBClient(ctrl)
			mockRows := mockQuestDB.NewMockRowsInterface(ctrl)
			tc.mockFn(mockClient, mockRows)

			repo := NewRepository(mockClient)
			points, err := repo.GetCloseWindow(context.Background(), tc.filter)
			tc.assertFn(t, points, err)
		})
	}
}

func TestPrice_DropCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mockQuestDB.NewMockQuestDBClient(ctrl)
	mockClient.EXPECT().Exec(gomock.Any(), `DROP TABLE IF EXISTS "mock_btc_minutes"`).Return(nil)

	repo := NewRepository(mockClient)
	assert.NoError(t, repo.DropCollection(context.Background(), "mock_btc_minutes"))
}
