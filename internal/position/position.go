// Package position finds product rank in paginated marketplace search results.
package position

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/marketplace-tracker/internal/marketplace"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/samber/lo"
)

// State is final state of search scan.
type State string

const (
	// StateFound means product was found in organic results.
	StateFound State = "found"
	// StateExhausted means search results ended without product.
	StateExhausted State = "exhausted"
	// StateError means page couldn't be decoded within attempts limit.
	StateError State = "error"
)

var errAttemptsExceeded = errors.New("search page attempts exceeded")

//go:generate mockery --name Searcher --filename searcher.go

// Searcher fetches search result pages.
type Searcher interface {
	SearchPage(ctx context.Context, query, dest string, page int) (*models.SearchPage, error)
}

// Result is outcome of search scan.
// Page and Rank are set only in StateFound, promo fields only if product has ad placement.
type Result struct {
	State          State
	PageCapacities []int
	Page           *int
	Rank           *int
	PromoPage      *int
	PromoRank      *int
}

// Option is custom configuration of Finder.
type Option func(f *Finder)

// Finder scans search pages looking for vendor code.
type Finder struct {
	searcher    Searcher
	maxAttempts int
	retryDelay  time.Duration
	maxPages    int
	sleep       func(ctx context.Context, d time.Duration) error
	onRetry     func()
}

// NewFinder returns new Finder.
func NewFinder(searcher Searcher, ops ...Option) *Finder {
	finder := &Finder{
		searcher:    searcher,
		maxAttempts: 5,
		retryDelay:  time.Second,
		maxPages:    60,
		sleep:       sleep,
		onRetry:     func() {},
	}

	for _, op := range ops {
		op(finder)
	}

	return finder
}

// Find scans search results page by page until vendor code is found or results end.
// Pages which can't be decoded are retried. When attempts limit is reached the scan ends in StateError.
// Missing data in response ends the scan in StateExhausted, other malformed responses are returned as error.
func (f *Finder) Find(ctx context.Context, code int, query, dest string) (Result, error) {
	result := Result{
		State:          StateExhausted,
		PageCapacities: []int{},
	}

	for pageNumber := 1; pageNumber <= f.maxPages; pageNumber++ {
		page, err := f.fetchPage(ctx, query, dest, pageNumber)
		switch {
		case errors.Is(err, errAttemptsExceeded):
			result.State = StateError
			return result, nil
		case errors.Is(err, marketplace.ErrNoData):
			return result, nil
		case err != nil:
			return result, fmt.Errorf("can't search page %d: %w", pageNumber, err)
		}

		if len(page.VendorCodes) == 0 {
			return result, nil
		}

		result.PageCapacities = append(result.PageCapacities, len(page.VendorCodes))

		if ix := lo.IndexOf(page.VendorCodes, code); ix >= 0 {
			result.State = StateFound
			result.Page = lo.ToPtr(pageNumber)
			result.Rank = lo.ToPtr(ix + 1)

			if absolute, ok := page.Promoted[code]; ok {
				if promoPage, promoRank, ok := PromoPosition(absolute, result.PageCapacities[0]); ok {
					result.PromoPage = lo.ToPtr(promoPage)
					result.PromoRank = lo.ToPtr(promoRank)
				}
			}

			return result, nil
		}

		// query was replaced by marketplace, next pages show different products.
		if page.Original {
			return result, nil
		}
	}

	return result, nil
}

func (f *Finder) fetchPage(ctx context.Context, query, dest string, pageNumber int) (*models.SearchPage, error) {
	for attempt := 1; ; attempt++ {
		page, err := f.searcher.SearchPage(ctx, query, dest, pageNumber)
		if err == nil || !errors.Is(err, marketplace.ErrDecode) {
			return page, err
		}

		if attempt >= f.maxAttempts {
			return nil, fmt.Errorf("%w: %w", errAttemptsExceeded, err)
		}

		f.onRetry()
		if err := f.sleep(ctx, f.retryDelay); err != nil {
			return nil, err
		}
	}
}

// RealPosition returns absolute position of product counting products from previous pages.
func RealPosition(capacities []int, page, rank int) int {
	previous := lo.Clamp(page-1, 0, len(capacities))
	return lo.Sum(capacities[:previous]) + rank
}

// PromoPosition converts absolute ad position into page and rank assuming all pages have first page capacity.
func PromoPosition(absolute, firstCapacity int) (page int, rank int, ok bool) {
	if firstCapacity <= 0 {
		return 0, 0, false
	}
	return absolute/firstCapacity + 1, absolute % firstCapacity, true
}

// WithMaxAttempts sets number of attempts of fetching single page.
func WithMaxAttempts(attempts int) Option {
	return func(f *Finder) {
		if attempts > 0 {
			f.maxAttempts = attempts
		}
	}
}

// WithRetryDelay sets delay between attempts of fetching single page.
func WithRetryDelay(delay time.Duration) Option {
	return func(f *Finder) {
		f.retryDelay = delay
	}
}

// WithMaxPages sets max number of scanned pages.
func WithMaxPages(pages int) Option {
	return func(f *Finder) {
		if pages > 0 {
			f.maxPages = pages
		}
	}
}

// WithSleeper sets custom function waiting between attempts.
func WithSleeper(sleeper func(ctx context.Context, d time.Duration) error) Option {
	return func(f *Finder) {
		f.sleep = sleeper
	}
}

// WithRetryHook sets function called before every retry.
func WithRetryHook(hook func()) Option {
	return func(f *Finder) {
		f.onRetry = hook
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
