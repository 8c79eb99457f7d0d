// Package runners wires tracker runs from configuration.
package runners

import (
	"database/sql"
	"net/http"

	"github.com/MichalMitros/marketplace-tracker/cmd/tracker/config"
	"github.com/MichalMitros/marketplace-tracker/internal/differ"
	"github.com/MichalMitros/marketplace-tracker/internal/fetcher"
	"github.com/MichalMitros/marketplace-tracker/internal/handler"
	"github.com/MichalMitros/marketplace-tracker/internal/marketplace"
	"github.com/MichalMitros/marketplace-tracker/internal/metrics"
	"github.com/MichalMitros/marketplace-tracker/internal/notifier"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/storage"
	"github.com/MichalMitros/marketplace-tracker/internal/position"
	"github.com/MichalMitros/marketplace-tracker/internal/seller"
	"github.com/MichalMitros/marketplace-tracker/internal/tracker"
	"github.com/MichalMitros/marketplace-tracker/pkg/v1/commander"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// UserAgent is user agent header value used when fetching marketplace.
const UserAgent = "marketplace-tracker/0.1.0"

// New returns runs of every run type.
func New(
	cfg config.Config,
	db *sql.DB,
	publisher notifier.Publisher,
	m *metrics.Metrics,
	logger *zerolog.Logger,
) (map[commander.RunType]handler.RunFunc, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	fetch := fetcher.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, UserAgent).Observe(m)
	market := marketplace.NewClient(
		fetch,
		marketplace.Endpoints{
			DetailURL:        cfg.Marketplace.DetailURL,
			SearchURL:        cfg.Marketplace.SearchURL,
			BasketURLPattern: cfg.Marketplace.BasketURLPattern,
		},
		marketplace.WithChunkSize(cfg.Marketplace.ChunkSize),
		marketplace.WithShardCount(cfg.Marketplace.ShardCount),
	)
	store := storage.NewPostgres(db)
	ops := []tracker.Option{
		tracker.WithLogger(logger),
		tracker.WithObserver(m),
	}

	priceParser := tracker.NewPriceParser(
		market,
		store,
		differ.NewDispatcher(notifier.NewRabbitMQNotifier(publisher, cfg.RabbitMQ.NotifyRoutingKey)),
		cfg.Marketplace.Dest,
		cfg.BatchSize,
		ops...,
	)

	finder := position.NewFinder(
		market,
		position.WithMaxAttempts(cfg.Position.MaxAttempts),
		position.WithRetryDelay(cfg.Position.RetryDelay),
		position.WithMaxPages(cfg.Position.MaxPages),
		position.WithRetryHook(m.SearchRetry),
	)
	cities := lo.Map(cfg.Position.CityNames(), func(name string, _ int) tracker.City {
		return tracker.City{Name: name, Dest: cfg.Position.Cities[name]}
	})
	positionParser := tracker.NewPositionParser(finder, store, cities, cfg.BatchSize, ops...)

	sellerSync := tracker.NewSellerSync(seller.NewClient(fetch, cfg.SellerAPIURL), store, ops...)

	preparer := tracker.NewPreparer(store, cfg.Position.CityNames(), cfg.Prepared.Days, loc, ops...)

	return map[commander.RunType]handler.RunFunc{
		commander.RunTypePrice:     priceParser.Parse,
		commander.RunTypePosition:  positionParser.Parse,
		commander.RunTypeSellerAPI: sellerSync.Sync,
		commander.RunTypePrepare:   preparer.Prepare,
	}, nil
}
