package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

// LoadConfig loads configuration from config.yaml and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.warungo/")
	v.AddConfigPath("/etc/warungo/")

	// Enable environment variable override with WARUNGO_ prefix
	v.SetEnvPrefix("WARUNGO")
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":2022")
	v.SetDefault("db.maxOpenConns", 10)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
