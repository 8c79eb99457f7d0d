package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/MichalMitros/marketplace-tracker/cmd/tracker/config"
	"github.com/MichalMitros/marketplace-tracker/cmd/tracker/runners"
	"github.com/MichalMitros/marketplace-tracker/cmd/trackerctl/cmd"
	"github.com/MichalMitros/marketplace-tracker/internal/metrics"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/rabbitmq"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/storage"
	"github.com/MichalMitros/marketplace-tracker/pkg/v1/commander"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	root := cmd.NewRootCommand(func(ctx context.Context) (*cmd.Env, func(), error) {
		return connect(ctx, &logger)
	})

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func connect(_ context.Context, logger *zerolog.Logger) (*cmd.Env, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("can't load configuration: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("can't parse log level: %w", err)
	}
	*logger = logger.Level(level)

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("can't open Postgres connection: %w", err)
	}

	mq := &lazyRabbitMQ{url: cfg.RabbitMQ.URL, exchange: cfg.RabbitMQ.Exchange}

	runs, err := runners.New(cfg, pgDB, mq, metrics.New(prometheus.NewRegistry()), logger)
	if err != nil {
		pgDB.Close()
		return nil, nil, err
	}

	env := &cmd.Env{
		Storage:   storage.NewPostgres(pgDB),
		Runners:   runs,
		Commander: commander.NewRunCommander(commander.NewRabbitMQSender(mq, cfg.RabbitMQ.CommandRoutingKey)),
	}

	release := func() {
		if err := mq.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
		if err := pgDB.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}

	return env, release, nil
}

// lazyRabbitMQ dials RabbitMQ on first publish so commands working only
// with Postgres don't need broker.
type lazyRabbitMQ struct {
	url      string
	exchange string

	once       sync.Once
	connection *amqp.Connection
	mq         *rabbitmq.RabbitMQ
	err        error
}

func (l *lazyRabbitMQ) Publish(ctx context.Context, routingKey string, message []byte) error {
	l.once.Do(func() {
		l.connection, l.err = amqp.Dial(l.url)
		if l.err != nil {
			l.err = fmt.Errorf("can't open RabbitMQ connection: %w", l.err)
			return
		}
		l.mq, l.err = rabbitmq.NewRabbitMQ(l.connection, l.exchange)
	})
	if l.err != nil {
		return l.err
	}

	return l.mq.Publish(ctx, routingKey, message)
}

func (l *lazyRabbitMQ) Close() error {
	if l.connection == nil {
		return nil
	}
	return l.connection.Close()
}
