package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds process-level settings. Everything has a default so the app
// starts with no config file at all; a .env file or GRCA_* environment
// variables override.
type Config struct {
	BridgeAddr string `mapstructure:"bridge_addr"`
	FigmaToken string `mapstructure:"figma_token"`
	FigmaURL   string `mapstructure:"figma_url"`
	LogLevel   string `mapstructure:"log_level"`
}

func Load() (*Config, error) {
	// Best effort; a missing .env is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("GRCA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("bridge_addr", "127.0.0.1:8787")
	v.SetDefault("figma_token", "")
	v.SetDefault("figma_url", "")
	v.SetDefault("log_level", "info")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
