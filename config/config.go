package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

const DefaultPath = "./config.yaml"

type SchedulerConfig struct {
	Port          int
	LogLevel      string
	Environment   string
	RealisticMode bool
}

func (c *SchedulerConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads the yaml file at path. A missing file is not an error, defaults
// and FCFS_* environment variables apply instead.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("fcfs")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("environment", "development")
	v.SetDefault("scheduler.realistic_mode", true)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	cfg := &SchedulerConfig{
		Port:          v.GetInt("port"),
		LogLevel:      v.GetString("log.level"),
		Environment:   v.GetString("environment"),
		RealisticMode: v.GetBool("scheduler.realistic_mode"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SchedulerConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}
