package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"schedsim/internal/schedulers"
)

type SchedulerConfig struct {
	Port                             int
	LogLevel                         string
	RoundRobinTimeQuantum            int
	MultilevelQueueHighTimeQuantum   int
	MultilevelQueueLowTimeQuantum    int
	MultilevelQueuePriorityThreshold int
}

// Load reads config.yaml from path (or from the working directory when path
// is empty). A missing file is not an error: defaults and SCHEDSIM_*
// environment variables still apply.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.round_robin.time_quantum", schedulers.DefaultTimeQuantum)
	v.SetDefault("scheduler.multilevel_queue.high_quantum", schedulers.DefaultHighQuantum)
	v.SetDefault("scheduler.multilevel_queue.low_quantum", schedulers.DefaultLowQuantum)
	v.SetDefault("scheduler.multilevel_queue.priority_threshold", schedulers.DefaultPriorityThreshold)

	v.SetEnvPrefix("schedsim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                             v.GetInt("port"),
		LogLevel:                         v.GetString("log_level"),
		RoundRobinTimeQuantum:            v.GetInt("scheduler.round_robin.time_quantum"),
		MultilevelQueueHighTimeQuantum:   v.GetInt("scheduler.multilevel_queue.high_quantum"),
		MultilevelQueueLowTimeQuantum:    v.GetInt("scheduler.multilevel_queue.low_quantum"),
		MultilevelQueuePriorityThreshold: v.GetInt("scheduler.multilevel_queue.priority_threshold"),
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Options returns the configured policy defaults.
func (c *SchedulerConfig) Options() schedulers.Options {
	return schedulers.Options{
		TimeQuantum:       c.RoundRobinTimeQuantum,
		HighQuantum:       c.MultilevelQueueHighTimeQuantum,
		LowQuantum:        c.MultilevelQueueLowTimeQuantum,
		PriorityThreshold: c.MultilevelQueuePriorityThreshold,
	}
}

func (c *SchedulerConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("invalid scheduler.round_robin.time_quantum %d: must be > 0", c.RoundRobinTimeQuantum)
	}
	if c.MultilevelQueueHighTimeQuantum <= 0 || c.MultilevelQueueLowTimeQuantum <= 0 {
		return fmt.Errorf("invalid scheduler.multilevel_queue quanta %d/%d: must be > 0",
			c.MultilevelQueueHighTimeQuantum, c.MultilevelQueueLowTimeQuantum)
	}
	return nil
}
