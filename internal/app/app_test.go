package app

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/muhammadchandra19/mock-market-data/pkg/config"
	"github.com/muhammadchandra19/mock-market-data/pkg/errors"
	loggerMock "github.com/muhammadchandra19/mock-market-data/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
)

func TestExecute_FaultsBeforeIO(t *testing.T) {
	testCases := []struct {
		name      string
		env       map[string]string
		configure ConfigureFunc
		wantCode  int
	}{
		{
			name:     "missing mongodb uri",
			env:      map[string]string{"STORE_DRIVER": "mongodb", "MONGODB_URI": ""},
			wantCode: errors.ExitConfiguration,
		},
		{
			name:     "unknown driver",
			env:      map[string]string{"STORE_DRIVER": "sqlite"},
			wantCode: errors.ExitConfiguration,
		},
		{
			name:     "unparsable env",
			env:      map[string]string{"STORE_OPERATION_TIMEOUT": "soon"},
			wantCode: errors.ExitConfiguration,
		},
		{
			name: "flag override rejected",
			env:  map[string]string{"STORE_DRIVER": "mongodb", "MONGODB_URI": "mongodb://localhost:27017"},
			configure: func(cfg *config.Config) error {
				return errors.NewConfigurationFault("invalid -seed", nil)
			},
			wantCode: errors.ExitConfiguration,
		},
		{
			name: "flag override invalid write mode",
			env:  map[string]string{"STORE_DRIVER": "mongodb", "MONGODB_URI": "mongodb://localhost:27017"},
			configure: func(cfg *config.Config) error {
				cfg.Generator.WriteMode = "merge"
				return nil
			},
			wantCode: errors.ExitConfiguration,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			called := false
			_, err := Execute(context.Background(), "test", tc.configure, func(ctx context.Context, a *App) error {
				called = true
				return nil
			})

			assert.False(t, called)
			assert.Equal(t, tc.wantCode, errors.ExitCode(err))
		})
	}
}

func TestNew_ProfilesFileMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	cfg.Store.Driver = config.DriverQuestDB
	cfg.Store.BatchSize = 5000
	cfg.Generator.WriteMode = "append"
	cfg.Generator.Interval = "1m"
	cfg.Generator.ProfilesFile = "/nonexistent/profiles.yaml"

	a, err := New(context.Background(), cfg, loggerMock.NewMockInterface(ctrl))

	assert.Nil(t, a)
	assert.Equal(t, errors.ExitConfiguration, errors.ExitCode(err))
}
