package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MichalMitros/marketplace-tracker/cmd/tracker/config"
	"github.com/MichalMitros/marketplace-tracker/cmd/tracker/runners"
	"github.com/MichalMitros/marketplace-tracker/internal/handler"
	"github.com/MichalMitros/marketplace-tracker/internal/metrics"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/rabbitmq"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse log level")
	}
	logger = logger.Level(level)

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	if err := conn.Declare(cfg.RabbitMQ.Queue, cfg.RabbitMQ.CommandRoutingKey); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't declare RabbitMQ topology")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	runs, err := runners.New(cfg, pgDB, conn, m, &logger)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't create runners")
	}

	han := handler.NewHandler(conn, runs, &logger)

	// start consuming and handling messages
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	server := metrics.NewServer(registry, pgDB)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := server.Start(cfg.MetricsAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		return server.Shutdown(shutdownCtx)
	})

	logger.Info().Msg("marketplace tracker up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
	case <-groupCtx.Done():
	}
	cancel()

	logger.Info().Msg("graceful shutdown start")

	if err := group.Wait(); err != nil {
		logger.Error().
			Err(err).
			Msg("metrics server failed")
	}

	// wait for consumer to finish current run
	<-conn.Done()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
