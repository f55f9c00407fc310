package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Stats   Stats   `json:"stats" yaml:"stats" mapstructure:"stats"`
	Manager Manager `json:"manager" yaml:"manager" mapstructure:"manager"`
	HTTP    HTTP    `json:"http" yaml:"http" mapstructure:"http"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Stats bounds the cost of collecting library statistics. Zero values fall back to the collector defaults.
type Stats struct {
	SamplingThreshold int           `json:"samplingThreshold" yaml:"samplingThreshold" mapstructure:"samplingThreshold" validate:"gte=0"`
	SampleSize        int           `json:"sampleSize" yaml:"sampleSize" mapstructure:"sampleSize" validate:"gte=0"`
	MaxItems          int           `json:"maxItems" yaml:"maxItems" mapstructure:"maxItems" validate:"gte=0"`
	PageSize          int           `json:"pageSize" yaml:"pageSize" mapstructure:"pageSize" validate:"gte=0"`
	PageTimeout       time.Duration `json:"pageTimeout" yaml:"pageTimeout" mapstructure:"pageTimeout" validate:"gte=0"`
	HistoryDays       int           `json:"historyDays" yaml:"historyDays" mapstructure:"historyDays" validate:"gte=0"`
}

// Manager houses configuration related to the manager and its scheduled jobs
type Manager struct {
	Jobs Jobs `json:"jobs" yaml:"jobs" mapstructure:"jobs"`
}

type Jobs struct {
	StatsCollect        time.Duration `json:"statsCollect" yaml:"statsCollect" mapstructure:"statsCollect" validate:"gte=0"`
	StatsSnapshot       time.Duration `json:"statsSnapshot" yaml:"statsSnapshot" mapstructure:"statsSnapshot" validate:"gte=0"`
	JobScheduleInterval time.Duration `json:"jobScheduleInterval" yaml:"jobScheduleInterval" mapstructure:"jobScheduleInterval" validate:"gte=0"`
	// CleanupPeriod is how long finished jobs are kept. 0 or -1 disables pruning.
	CleanupPeriod time.Duration `json:"cleanupPeriod" yaml:"cleanupPeriod" mapstructure:"cleanupPeriod" validate:"gte=-1ns"`
	MinJobsToKeep int           `json:"minJobsToKeep" yaml:"minJobsToKeep" mapstructure:"minJobsToKeep" validate:"gte=0"`
}

// HTTP configures the client used to talk to media servers
type HTTP struct {
	MaxRetries        int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries" validate:"gte=0"`
	BaseBackoff       time.Duration `json:"baseBackoff" yaml:"baseBackoff" mapstructure:"baseBackoff" validate:"gte=0"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond" mapstructure:"requestsPerSecond" validate:"gte=0"`
	Burst             int           `json:"burst" yaml:"burst" mapstructure:"burst" validate:"gte=0"`
	Timeout           time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

var validate = validator.New()

// New reads a new configuration and validates it
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	if err := cu.Unmarshal(&c); err != nil {
		return c, err
	}

	if err := validate.Struct(c); err != nil {
		return c, fmt.Errorf("invalid configuration: %w", err)
	}

	return c, nil
}
