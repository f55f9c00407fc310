package config

import (
	"errors"
	"testing"
	"time"

	"github.com/kasuboski/mediastat/config/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	t.Run("fail to read in config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("fake-config.yaml")
		cu.EXPECT().ReadInConfig().Times(1).Return(wantErr)

		c, err := New(cu)
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, Config{}, c)
	})

	t.Run("fail to unmarshal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("bad yaml")
		cu.EXPECT().ConfigFileUsed().Return("")
		cu.EXPECT().Unmarshal(gomock.Any()).Return(wantErr)

		_, err := New(cu)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("success with file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("./testing/config.yaml")

		c, err := New(cu)
		require.NoError(t, err)

		want := Config{
			Server:  Server{Port: 8080},
			Storage: Storage{FilePath: "mediastat.sqlite"},
			Stats: Stats{
				SamplingThreshold: 3000,
				SampleSize:        1500,
				MaxItems:          50000,
				PageSize:          2000,
				PageTimeout:       time.Minute,
				HistoryDays:       90,
			},
			Manager: Manager{Jobs: Jobs{
				StatsCollect:        6 * time.Hour,
				StatsSnapshot:       24 * time.Hour,
				JobScheduleInterval: time.Minute,
				CleanupPeriod:       7 * 24 * time.Hour,
				MinJobsToKeep:       10,
			}},
			HTTP: HTTP{
				MaxRetries:        3,
				BaseBackoff:       500 * time.Millisecond,
				RequestsPerSecond: 10,
				Burst:             5,
				Timeout:           30 * time.Second,
			},
		}
		assert.Equal(t, want, c)
	})

	t.Run("success without file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("server.port", 8080)
		cu.SetDefault("manager.jobs.statsCollect", "6h")

		c, err := New(cu)
		require.NoError(t, err)
		assert.Equal(t, Config{
			Server:  Server{Port: 8080},
			Manager: Manager{Jobs: Jobs{StatsCollect: 6 * time.Hour}},
		}, c)
	})

	t.Run("fails validation", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("./testing/invalid.yaml")

		_, err := New(cu)
		require.Error(t, err)
		assert.ErrorContains(t, err, "Config.Server.Port")
		assert.ErrorContains(t, err, "Config.Manager.Jobs.CleanupPeriod")
	})
}
