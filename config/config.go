package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/angas/greenplanet-go/logging"
	"github.com/spf13/viper"
)

type AppConfigApi struct {
	Address string
	Port    int16
}

type AppConfigGreenPlanet struct {
	// Portal endpoint, only needs to be set when testing against a stub
	Url *string `mapstructure:"url"`
	// Request timeout in seconds, default: 30
	TimeoutSeconds *int `mapstructure:"timeout_seconds"`
	// Cron spec for refreshing prices, default: five past every hour
	RunAt *string `mapstructure:"run_at"`
}

func (g AppConfigGreenPlanet) GetUrl() string {
	if g.Url == nil {
		return ""
	}
	return *g.Url
}

func (g AppConfigGreenPlanet) GetTimeout() time.Duration {
	if g.TimeoutSeconds == nil {
		return 30 * time.Second
	}
	return time.Duration(*g.TimeoutSeconds) * time.Second
}

func (g AppConfigGreenPlanet) GetRunAt() string {
	if g.RunAt == nil {
		return "5 * * * *"
	}
	return *g.RunAt
}

type AppConfigLogging struct {
	// Min log level for console: "DEBUG", "INFO", "WARN", "ERROR", default: "INFO"
	ConsoleLevel *string `mapstructure:"console_level"`
}

func (l AppConfigLogging) GetConsoleLevel() slog.Level {
	return logging.LevelFromString(l.ConsoleLevel)
}

type AppConfig struct {
	Api         AppConfigApi
	GreenPlanet AppConfigGreenPlanet `mapstructure:"green_planet"`
	Logging     AppConfigLogging
}

func Load(path string) (*AppConfig, error) {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.AddConfigPath("config")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var c AppConfig

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	if err := viper.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
	}

	return &c, nil
}
