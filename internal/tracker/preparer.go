package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/MichalMitros/marketplace-tracker/internal/prepared"
)

// Preparer rebuilds prepared price and position views.
type Preparer struct {
	settings
	storage  Storage
	cities   []string
	days     int
	location *time.Location
}

// NewPreparer returns new Preparer building views of last days in location.
func NewPreparer(storage Storage, cities []string, days int, location *time.Location, ops ...Option) *Preparer {
	return &Preparer{
		settings: newSettings(ops),
		storage:  storage,
		cities:   cities,
		days:     days,
		location: location,
	}
}

// Prepare replaces prepared views with ones built from snapshots of the window.
func (p *Preparer) Prepare(ctx context.Context) error {
	window := prepared.NewWindow(*p.clock.Now(), p.days, p.location)

	if err := p.preparePrices(ctx, window); err != nil {
		return err
	}

	return p.preparePositions(ctx, window)
}

func (p *Preparer) preparePrices(ctx context.Context, window prepared.Window) error {
	items, err := p.storage.GetItems(ctx)
	if err != nil {
		return fmt.Errorf("can't get items: %w", err)
	}

	prices, err := p.storage.GetPricesSince(ctx, window.Start())
	if err != nil {
		return fmt.Errorf("can't get prices: %w", err)
	}

	if err := p.storage.ReplacePreparedPrices(ctx, prepared.BuildPrices(items, prices, window)); err != nil {
		return fmt.Errorf("can't replace prepared prices: %w", err)
	}

	return nil
}

func (p *Preparer) preparePositions(ctx context.Context, window prepared.Window) error {
	keywords, err := p.storage.GetKeywords(ctx)
	if err != nil {
		return fmt.Errorf("can't get keywords: %w", err)
	}

	positions, err := p.storage.GetPositionsSince(ctx, window.Start())
	if err != nil {
		return fmt.Errorf("can't get positions: %w", err)
	}

	views := prepared.BuildPositions(keywords, p.cities, positions, window)
	if err := p.storage.ReplacePreparedPositions(ctx, views); err != nil {
		return fmt.Errorf("can't replace prepared positions: %w", err)
	}

	return nil
}
