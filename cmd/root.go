package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mediastat",
	Short: "mediastat cli",
	Long:  `mediastat collects and tracks library statistics of Plex, Jellyfin and Emby servers`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

const (
	defaultStatsCollectInterval  = time.Hour * 6
	defaultStatsSnapshotInterval = time.Hour * 24
)

func initConfig() {
	if _, err := os.Stat(cfgFile); err == nil {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("MEDIASTAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("storage.filePath", "mediastat.sqlite")

	viper.SetDefault("stats.samplingThreshold", 3000)
	viper.SetDefault("stats.sampleSize", 1500)
	viper.SetDefault("stats.maxItems", 50000)
	viper.SetDefault("stats.pageSize", 2000)
	viper.SetDefault("stats.pageTimeout", time.Minute)
	viper.SetDefault("stats.historyDays", 90)

	viper.SetDefault("manager.jobs.statsCollect", defaultStatsCollectInterval)
	viper.SetDefault("manager.jobs.statsSnapshot", defaultStatsSnapshotInterval)
	viper.SetDefault("manager.jobs.jobScheduleInterval", time.Minute)
	viper.SetDefault("manager.jobs.cleanupPeriod", time.Hour*24*7)
	viper.SetDefault("manager.jobs.minJobsToKeep", 10)

	viper.SetDefault("http.maxRetries", 3)
	viper.SetDefault("http.baseBackoff", time.Millisecond*500)
	viper.SetDefault("http.requestsPerSecond", 10)
	viper.SetDefault("http.burst", 5)
	viper.SetDefault("http.timeout", time.Second*30)
}
