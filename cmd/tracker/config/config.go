package config

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string        `env:"DATABASE_URL"`
	BatchSize    uint          `env:"BATCH_SIZE" envDefault:"50"`
	HTTPTimeout  time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	MetricsAddr  string        `env:"METRICS_ADDR" envDefault:":9090"`
	SellerAPIURL string        `env:"SELLER_API_URL,notEmpty"`
	Timezone     string        `env:"TIMEZONE" envDefault:"Europe/Moscow"`

	Marketplace Marketplace
	Position    Position
	Prepared    Prepared
	RabbitMQ    RabbitMQ
}

// Marketplace holds marketplace endpoints configuration.
type Marketplace struct {
	DetailURL        string `env:"MARKETPLACE_DETAIL_URL,notEmpty"`
	SearchURL        string `env:"MARKETPLACE_SEARCH_URL,notEmpty"`
	BasketURLPattern string `env:"MARKETPLACE_BASKET_URL_PATTERN,notEmpty"`
	Dest             string `env:"MARKETPLACE_DEST" envDefault:"-1257786"`
	ChunkSize        int    `env:"MARKETPLACE_CHUNK_SIZE" envDefault:"100"`
	ShardCount       int    `env:"MARKETPLACE_SHARD_COUNT" envDefault:"98"`
}

// Position holds search position scanning configuration.
type Position struct {
	// Cities maps city name to marketplace destination.
	Cities      map[string]string `env:"POSITION_CITIES" envKeyValSeparator:":" envDefault:"Moscow:-1257786"`
	MaxAttempts int               `env:"POSITION_MAX_ATTEMPTS" envDefault:"5"`
	RetryDelay  time.Duration     `env:"POSITION_RETRY_DELAY" envDefault:"1s"`
	MaxPages    int               `env:"POSITION_MAX_PAGES" envDefault:"60"`
}

// Prepared holds prepared views configuration.
type Prepared struct {
	Days int `env:"PREPARED_DAYS" envDefault:"30"`
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL               string `env:"RABBITMQ_URL"`
	Exchange          string `env:"RABBITMQ_EXCHANGE" envDefault:"tracker-ex"`
	Queue             string `env:"RABBITMQ_QUEUE" envDefault:"marketplace-tracker.commands"`
	CommandRoutingKey string `env:"RABBITMQ_COMMAND_ROUTING_KEY" envDefault:"tracker.commands"`
	NotifyRoutingKey  string `env:"NOTIFY_ROUTING_KEY" envDefault:"tracker.notifications"`
}

// Load loads optional .env file and parses configuration from environment.
func Load(envFiles ...string) (Config, error) {
	// missing .env is fine, environment is used as is
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("can't parse env variables: %w", err)
	}

	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}

	if cfg.BatchSize == 0 {
		return Config{}, errors.New("can't use BATCH_SIZE 0: it must be positive")
	}

	if cfg.Prepared.Days <= 0 {
		return Config{}, fmt.Errorf("can't use PREPARED_DAYS %d: it must be positive", cfg.Prepared.Days)
	}

	return cfg, nil
}

// Location returns location of prepared views days.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("can't load timezone %q: %w", c.Timezone, err)
	}

	return loc, nil
}

// CityNames returns sorted names of position cities.
func (p Position) CityNames() []string {
	names := make([]string, 0, len(p.Cities))
	for name := range p.Cities {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
