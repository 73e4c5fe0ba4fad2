package configs

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type WeatherConfig struct {
	PrimaryURL      string `mapstructure:"primary_url"`
	ReserveURL      string `mapstructure:"reserve_url"`
	TimeoutMs       int    `mapstructure:"timeout_ms"`
	CacheTTLMs      int    `mapstructure:"cache_ttl_ms"`
	CacheMaxEntries int    `mapstructure:"cache_max_entries"`
}

func (w WeatherConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutMs) * time.Millisecond
}

func (w WeatherConfig) CacheTTL() time.Duration {
	return time.Duration(w.CacheTTLMs) * time.Millisecond
}

type RegistryConfig struct {
	Root string `mapstructure:"root"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

type Config struct {
	Debug            bool     `mapstructure:"debug"`
	ListenAddr       string   `mapstructure:"listen_addr"`
	CORSAllowOrigins []string `mapstructure:"cors_allow_origins"`
	Weather          WeatherConfig
	Registry         RegistryConfig
	Redis            RedisConfig
}

func InitConfigs(filename, configPath string) {
	viper.SetConfigName(filename)
	viper.AddConfigPath(configPath)

	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("weather.timeout_ms", 5_000)
	viper.SetDefault("weather.cache_ttl_ms", 60_000)
	viper.SetDefault("weather.cache_max_entries", 128)
	viper.SetDefault("registry.root", "./files")

	err := viper.ReadInConfig()
	if err != nil {
		log.Fatalf("fatal error config file: %v", err)
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("Config file changed: %s", e.Name)
	})
	viper.WatchConfig()

	viper.SetEnvPrefix("kinhub") // will be uppercased automatically
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)
	viper.BindEnv("redis.url")     // read from KINHUB_REDIS_URL
	viper.BindEnv("registry.root") // read from KINHUB_REGISTRY_ROOT
}

func LoadConfig() (*Config, error) {
	var config Config

	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Set default values
	if len(config.CORSAllowOrigins) == 0 {
		config.CORSAllowOrigins = []string{"*"}
	}

	if config.Weather.PrimaryURL == "" {
		return nil, errors.New("weather.primary_url must be set")
	}
	if config.Weather.ReserveURL == "" {
		return nil, errors.New("weather.reserve_url must be set")
	}

	return &config, nil
}
