// Package differ detects price changes between consecutive snapshots and dispatches notifications.
package differ

import (
	"context"

	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
)

//go:generate mockery --name Notifier --filename notifier.go

// Notifier delivers single price change notification.
type Notifier interface {
	Notify(ctx context.Context, change models.PriceChange) error
}

// Diff reports whether next snapshot differs from previous one in final price or personal sale.
// First snapshot of item has nothing to compare with, so it's never a change.
func Diff(prev *models.Price, next models.Price) bool {
	if prev == nil {
		return false
	}

	return !equal(prev.FinalPrice, next.FinalPrice) || !equal(prev.PersonalSale, next.PersonalSale)
}

func equal(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Dispatcher sends price change notifications.
type Dispatcher struct {
	notifier Notifier
}

// NewDispatcher returns new Dispatcher.
func NewDispatcher(notifier Notifier) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
	}
}

// Dispatch notifies about every change. Failed notifications are returned by item id
// and don't stop the remaining ones.
func (d *Dispatcher) Dispatch(ctx context.Context, changes []models.PriceChange) map[int]error {
	failures := make(map[int]error)

	for _, change := range changes {
		if err := d.notifier.Notify(ctx, change); err != nil {
			failures[change.Item.ID] = err
		}
	}

	return failures
}
