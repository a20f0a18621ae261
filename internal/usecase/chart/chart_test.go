package chart

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	v1 "github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1"
	"github.com/muhammadchandra19/mock-market-data/internal/domain/price/v1/mock"
	"github.com/muhammadchandra19/mock-market-data/internal/infrastructure/plot"
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	logger_mock "github.com/muhammadchandra19/mock-market-data/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

func ethProfile() v1.AssetProfile {
	return v1.AssetProfile{
		Name:       "eth",
		Symbol:     "ETH/USD",
		BaseAsset:  "ETH",
		QuoteAsset: "USD",
		Collection: "mock_eth_minutes",
	}
}

func TestUsecase_RenderRecent(t *testing.T) {
	lookback := 30 * 24 * time.Hour
	from := now.Add(-lookback)
	wantFilter := v1.WindowFilter{Collection: "mock_eth_minutes", From: &from, To: &now}

	points := []*v1.ClosePoint{
		{Timestamp: now.Add(-2 * time.Minute), Close: 2800.5},
		{Timestamp: now.Add(-time.Minute), Close: 2801.25},
	}

	testCases := []struct {
		name     string
		config   Config
		mockFn   func(repo *mock.MockPriceRepository, renderer *mock.MockChartRenderer)
		assertFn func(t *testing.T, result v1.ChartResult, err error)
	}{
		{
			name: "renders window",
			mockFn: func(repo *mock.MockPriceRepository, renderer *mock.MockChartRenderer) {
				repo.EXPECT().GetCloseWindow(gomock.Any(), wantFilter).Return(points, nil)
				renderer.EXPECT().Render(points, v1.ChartSpec{
					Title:  "ETH/USD Price Over the Last 30 Days (Mock Data)",
					XLabel: "Date",
					YLabel: "Closing Price (USD)",
					Width:  14,
					Height: 7,
					Path:   "eth_price_chart.png",
				}).Return(nil)
			},
			assertFn: func(t *testing.T, result v1.ChartResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, v1.ChartResult{Rendered: true, Path: "eth_price_chart.png", Points: 2}, result)
			},
		},
		{
			name:   "configured output path",
			config: Config{OutputPath: "out/chart.png"},
			mockFn: func(repo *mock.MockPriceRepository, renderer *mock.MockChartRenderer) {
				repo.EXPECT().GetCloseWindow(gomock.Any(), wantFilter).Return(points, nil)
				renderer.EXPECT().Render(points, gomock.Any()).
					DoAndReturn(func(_ []*v1.ClosePoint, spec v1.ChartSpec) error {
						assert.Equal(t, "out/chart.png", spec.Path)
						return nil
					})
			},
			assertFn: func(t *testing.T, result v1.ChartResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "out/chart.png", result.Path)
			},
		},
		{
			name: "empty window renders nothing",
			mockFn: func(repo *mock.MockPriceRepository, renderer *mock.MockChartRenderer) {
				repo.EXPECT().GetCloseWindow(gomock.Any(), wantFilter).Return(nil, nil)
				renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Times(0)
			},
			assertFn: func(t *testing.T, result v1.ChartResult, err error) {
				assert.NoError(t, err)
				assert.False(t, result.Rendered)
				assert.Equal(t, errors.ExitOK, errors.ExitCode(err))
			},
		},
		{
			name: "query failure",
			mockFn: func(repo *mock.MockPriceRepository, renderer *mock.MockChartRenderer) {
				repo.EXPECT().GetCloseWindow(gomock.Any(), wantFilter).
					Return(nil, errors.NewConnectivityFault("query failed", assert.AnError))
			},
			assertFn: func(t *testing.T, result v1.ChartResult, err error) {
				assert.Equal(t, errors.ExitConnectivity, errors.ExitCode(err))
				assert.False(t, result.Rendered)
			},
		},
		{
			name: "render failure is unclassified",
			mockFn: func(repo *mock.MockPriceRepository, renderer *mock.MockChartRenderer) {
				repo.EXPECT().GetCloseWindow(gomock.Any(), wantFilter).Return(points, nil)
				renderer.EXPECT().Render(points, gomock.Any()).Return(assert.AnError)
			},
			assertFn: func(t *testing.T, result v1.ChartResult, err error) {
				assert.Equal(t, errors.ExitUnclassified, errors.ExitCode(err))
				assert.ErrorIs(t, err, assert.AnError)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock.NewMockPriceRepository(ctrl)
			renderer := mock.NewMockChartRenderer(ctrl)
			log := logger_mock.NewMockInterface(ctrl)
			log.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

			tc.mockFn(repo, renderer)

			uc := NewUsecase(repo, renderer, log, tc.config)
			uc.now = func() time.Time { return now }

			result, err := uc.RenderRecent(context.Background(), ethProfile(), lookback)
			tc.assertFn(t, result, err)
		})
	}
}

func TestDescribeLookback(t *testing.T) {
	testCases := []struct {
		lookback time.Duration
		want     string
	}{
		{30 * 24 * time.Hour, "30 Days"},
		{24 * time.Hour, "1 Day"},
		{36 * time.Hour, "36 Hours"},
		{time.Hour, "1 Hour"},
		{90 * time.Minute, "90 Minutes"},
		{30 * time.Minute, "30 Minutes"},
		{time.Minute, "1 Minute"},
		{45 * time.Second, "45s"},
		{time.Hour + 30*time.Second, "1h0m30s"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, describeLookback(tc.lookback))
		})
	}
}

func TestUsecase_RenderRecent_EmptyWindowKeepsPreviousChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "eth_price_chart.png")
	require.NoError(t, os.WriteFile(path, []byte("previous run"), 0o644))

	repo := mock.NewMockPriceRepository(ctrl)
	repo.EXPECT().GetCloseWindow(gomock.Any(), gomock.Any()).Return([]*v1.ClosePoint{}, nil)

	log := logger_mock.NewMockInterface(ctrl)
	log.EXPECT().InfoContext(gomock.Any(), "no data", gomock.Any()).Times(1)

	uc := NewUsecase(repo, plot.NewRenderer(), log, Config{OutputPath: path})
	result, err := uc.RenderRecent(context.Background(), ethProfile(), 30*24*time.Hour)

	require.NoError(t, err)
	assert.False(t, result.Rendered)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous run", string(data))
}

func TestUsecase_RenderRecent_EmptyWindowCreatesNoFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "btc_price_chart.png")

	repo := mock.NewMockPriceRepository(ctrl)
	repo.EXPECT().GetCloseWindow(gomock.Any(), gomock.Any()).Return(nil, nil)

	log := logger_mock.NewMockInterface(ctrl)
	log.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	uc := NewUsecase(repo, plot.NewRenderer(), log, Config{OutputPath: path})
	_, err := uc.RenderRecent(context.Background(), ethProfile(), time.Hour)

	require.NoError(t, err)
	assert.NoFileExists(t, path)
}
