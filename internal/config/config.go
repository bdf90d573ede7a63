package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// APIConfig configures the console's outbound transport.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url" envconfig:"API_BASE_URL"`
	Token   string `mapstructure:"token" envconfig:"API_TOKEN"`
}

// ServerConfig configures the local development API server.
type ServerConfig struct {
	Addr         string  `mapstructure:"addr" envconfig:"SERVER_ADDR"`
	DatabasePath string  `mapstructure:"database_path" envconfig:"SERVER_DATABASE_PATH"`
	JWTSecret    string  `mapstructure:"jwt_secret" envconfig:"SERVER_JWT_SECRET"`
	RateLimit    float64 `mapstructure:"rate_limit" envconfig:"SERVER_RATE_LIMIT"`
	RateBurst    int     `mapstructure:"rate_burst" envconfig:"SERVER_RATE_BURST"`
}

type LogConfig struct {
	Level string `mapstructure:"level" envconfig:"LOG_LEVEL"`
}

// LoadConfig reads config.yaml and applies CLINIC_* environment overrides.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("api.base_url", "http://localhost:8080")
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.database_path", "clinic.db")
	viper.SetDefault("server.jwt_secret", "dev-secret")
	viper.SetDefault("server.rate_limit", 50)
	viper.SetDefault("server.rate_burst", 100)
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("clinic", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment overrides: %w", err)
	}

	return &config, nil
}
