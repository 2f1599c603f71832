package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// App is the runtime configuration for the server and CLI processes.
// It is distinct from Rules: App says how the process runs, Rules say
// how prices are computed.
type App struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Data      DataConfig      `mapstructure:"data"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DataConfig struct {
	HotelsFile string `mapstructure:"hotels_file"`
	EventsFile string `mapstructure:"events_file"`
	RulesFile  string `mapstructure:"rules_file"`
	FeedURL    string `mapstructure:"feed_url"`
	CacheTTL   time.Duration `mapstructure:"cache_ttl"`
}

type SchedulerConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	RecomputeInterval time.Duration `mapstructure:"recompute_interval"`
	RefreshInterval   time.Duration `mapstructure:"refresh_interval"`
	HorizonDays       int           `mapstructure:"horizon_days"`
}

// LoadApp reads configs/config.yaml (if present) with environment
// overrides, e.g. SERVER_PORT=9090.
func LoadApp() (*App, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var app App
	if err := v.Unmarshal(&app); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &app, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("data.hotels_file", "./examples/data/hotels.json")
	v.SetDefault("data.events_file", "./examples/data/events.json")
	v.SetDefault("data.rules_file", "")
	v.SetDefault("data.cache_ttl", time.Hour)

	// The refresh cadence mirrors how the pricing desk runs the system:
	// events re-fetched every six hours, prices recomputed hourly.
	v.SetDefault("scheduler.enabled", false)
	v.SetDefault("scheduler.recompute_interval", time.Hour)
	v.SetDefault("scheduler.refresh_interval", 6*time.Hour)
	v.SetDefault("scheduler.horizon_days", 30)
}
