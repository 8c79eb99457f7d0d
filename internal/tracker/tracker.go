// Package tracker runs parsings: price snapshots, search positions, seller-api sync and prepared views.
package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/MichalMitros/marketplace-tracker/internal/position"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name PriceFetcher --filename price_fetcher.go
//go:generate mockery --name Dispatcher --filename dispatcher.go
//go:generate mockery --name PositionFinder --filename position_finder.go
//go:generate mockery --name SellerClient --filename seller_client.go

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() *time.Time
}

// PriceFetcher fetches products and their categories from marketplace.
type PriceFetcher interface {
	FetchPrices(ctx context.Context, codes []int, dest string) (map[int]models.ProductInfo, map[int]error)
	ResolveCategory(ctx context.Context, code int) string
}

// Dispatcher sends price change notifications and returns failures by item id.
type Dispatcher interface {
	Dispatch(ctx context.Context, changes []models.PriceChange) map[int]error
}

// PositionFinder finds product position in search results.
type PositionFinder interface {
	Find(ctx context.Context, code int, query, dest string) (position.Result, error)
}

// SellerClient fetches seller-api items of user.
type SellerClient interface {
	FetchItems(ctx context.Context, userID int, token string) ([]models.SellerItem, error)
}

// Observer is notified about finished parsings and sent notifications.
type Observer interface {
	ObserveParsing(parsingType models.ParsingType, success bool, failedItems int)
	ObserveNotifications(sent, failed int)
}

// Storage is users, items, snapshots and parsings storage.
type Storage interface {
	// StartParsing creates new parsing if there is no parsing of provided type running.
	StartParsing(ctx context.Context, parsingType models.ParsingType) (*models.Parsing, error)
	// FinishParsing finishes provided parsing and updates its statistics.
	FinishParsing(ctx context.Context, parsing *models.Parsing) error
	GetUsers(ctx context.Context) ([]models.User, error)
	// GetItems returns all items with their categories.
	GetItems(ctx context.Context) ([]models.Item, error)
	// UpdateItems updates site names and categories of items.
	UpdateItems(ctx context.Context, items []models.Item) error
	GetOrCreateCategory(ctx context.Context, name string) (*models.Category, error)
	GetSellerItems(ctx context.Context) ([]models.SellerItem, error)
	// ReplaceSellerItems replaces all seller items of user.
	ReplaceSellerItems(ctx context.Context, userID int, items []models.SellerItem) error
	ClearSellerTokens(ctx context.Context, userIDs []int) error
	InsertPrices(ctx context.Context, prices []models.Price) error
	// GetPreviousPrices returns the latest snapshot of items taken by parsing created before provided one.
	GetPreviousPrices(ctx context.Context, parsing *models.Parsing, itemIDs []int) (map[int]models.Price, error)
	// GetLatestPrices returns the latest snapshot of items.
	GetLatestPrices(ctx context.Context, itemIDs []int) (map[int]models.Price, error)
	GetPricesSince(ctx context.Context, since time.Time) ([]models.Price, error)
	GetKeywords(ctx context.Context) ([]models.TrackedKeyword, error)
	InsertPositions(ctx context.Context, positions []models.Position) error
	GetPositionsSince(ctx context.Context, since time.Time) ([]models.Position, error)
	ReplacePreparedPrices(ctx context.Context, prices []models.PreparedPrice) error
	ReplacePreparedPositions(ctx context.Context, positions []models.PreparedPosition) error
}

// Option is custom configuration of runners.
type Option func(s *settings)

type settings struct {
	clock    Clock
	logger   *zerolog.Logger
	observer Observer
}

func newSettings(ops []Option) settings {
	nop := zerolog.Nop()
	s := settings{
		clock:    systemClock{},
		logger:   &nop,
		observer: nopObserver{},
	}

	for _, op := range ops {
		op(&s)
	}

	return s
}

// WithClock sets custom Clock.
func WithClock(c Clock) Option {
	return func(s *settings) {
		s.clock = c
	}
}

// WithLogger sets logger of per-item failures.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithObserver sets Observer notified about finished parsings.
func WithObserver(observer Observer) Option {
	return func(s *settings) {
		s.observer = observer
	}
}

func (s settings) finishParsing(
	ctx context.Context,
	storage Storage,
	parsing *models.Parsing,
	parsed, failed int,
	status error,
) error {
	if status != nil {
		parsing.StatusMessage = lo.ToPtr(status.Error())
	}
	parsing.IsSuccess = lo.ToPtr(status == nil)
	parsing.FinishedAt = s.clock.Now()
	parsing.ParsedItems = lo.ToPtr(int32(parsed))
	parsing.FailedItems = lo.ToPtr(int32(failed))

	s.observer.ObserveParsing(parsing.Type, status == nil, failed)

	// run context may already be cancelled by shutdown, parsing must be finished anyway
	err := storage.FinishParsing(context.WithoutCancel(ctx), parsing)
	if err != nil && status == nil {
		return fmt.Errorf("can't finish parsing: %w", err)
	}

	if err != nil && status != nil {
		return fmt.Errorf("can't finish failed parsing: %w (fail reason: %w)", err, status)
	}

	return status
}

type nopObserver struct{}

func (nopObserver) ObserveParsing(models.ParsingType, bool, int) {}

func (nopObserver) ObserveNotifications(int, int) {}
