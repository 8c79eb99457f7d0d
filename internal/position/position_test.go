package position_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MichalMitros/marketplace-tracker/internal/marketplace"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/MichalMitros/marketplace-tracker/internal/position"
	"github.com/MichalMitros/marketplace-tracker/internal/position/mocks"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	code  = 146972802
	query = "sweatshirt"
	dest  = "-1257786"
)

func TestUnitFind(t *testing.T) {
	t.Run("found on third page", func(t *testing.T) {
		searcher := mocks.NewSearcher(t)
		mockSearchPage(searcher, 1, fakePage(1, 100, -1), nil)
		mockSearchPage(searcher, 2, fakePage(2, 100, -1), nil)
		mockSearchPage(searcher, 3, fakePage(3, 100, 29), nil)

		result, err := newFinder(searcher).Find(context.TODO(), code, query, dest)

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, position.Result{
			State:          position.StateFound,
			PageCapacities: []int{100, 100, 100},
			Page:           lo.ToPtr(3),
			Rank:           lo.ToPtr(30),
		}, result, "should return found position")
		assert.Equal(t, 230, position.RealPosition(result.PageCapacities, *result.Page, *result.Rank),
			"should count products from previous pages")
	})

	t.Run("found with ad placement", func(t *testing.T) {
		page := fakePage(1, 100, 4)
		page.Promoted = map[int]int{code: 150}

		searcher := mocks.NewSearcher(t)
		mockSearchPage(searcher, 1, page, nil)

		result, err := newFinder(searcher).Find(context.TODO(), code, query, dest)

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, position.StateFound, result.State, "should find product")
		assert.Equal(t, lo.ToPtr(2), result.PromoPage, "should compute promo page from first page capacity")
		assert.Equal(t, lo.ToPtr(50), result.PromoRank, "should compute promo rank from first page capacity")
	})

	t.Run("exhausted on empty page", func(t *testing.T) {
		searcher := mocks.NewSearcher(t)
		mockSearchPage(searcher, 1, fakePage(1, 100, -1), nil)
		mockSearchPage(searcher, 2, fakePage(2, 0, -1), nil)

		result, err := newFinder(searcher).Find(context.TODO(), code, query, dest)

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, position.Result{
			State:          position.StateExhausted,
			PageCapacities: []int{100},
		}, result, "should end scan without position")
	})

	t.Run("exhausted on missing data", func(t *testing.T) {
		searcher := mocks.NewSearcher(t)
		mockSearchPage(searcher, 1, nil, fmt.Errorf("%w: no products", marketplace.ErrNoData))

		result, err := newFinder(searcher).Find(context.TODO(), code, query, dest)

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, position.StateExhausted, result.State, "should treat missing data as end of results")
		assert.Empty(t, result.PageCapacities, "shouldn't record any capacity")
	})

	t.Run("exhausted on replaced query", func(t *testing.T) {
		page := fakePage(1, 100, -1)
		page.Original = true

		searcher := mocks.NewSearcher(t)
		mockSearchPage(searcher, 1, page, nil)

		result, err := newFinder(searcher).Find(context.TODO(), code, query, dest)

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, position.StateExhausted, result.State, "should stop after replaced query page")
		assert.Equal(t, []int{100}, result.PageCapacities, "should record scanned page")
	})

	t.Run("exhausted on pages limit", func(t *testing.T) {
		searcher := mocks.NewSearcher(t)
		mockSearchPage(searcher, 1, fakePage(1, 10, -1), nil)
		mockSearchPage(searcher, 2, fakePage(2, 10, -1), nil)

		result, err := newFinder(searcher, position.WithMaxPages(2)).Find(context.TODO(), code, query, dest)

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, position.StateExhausted, result.State, "should stop on pages limit")
		assert.Equal(t, []int{10, 10}, result.PageCapacities, "should record scanned pages")
	})

	t.Run("malformed response", func(t *testing.T) {
		searcher := mocks.NewSearcher(t)
		mockSearchPage(searcher, 1, nil, marketplace.ErrMalformed)

		_, err := newFinder(searcher).Find(context.TODO(), code, query, dest)

		require.ErrorIs(t, err, marketplace.ErrMalformed, "should return malformed response error")
	})
}

func TestUnitFindRetries(t *testing.T) {
	t.Run("attempts limit", func(t *testing.T) {
		sleeps := 0
		searcher := mocks.NewSearcher(t)
		mockSearchPage(searcher, 1, fakePage(1, 100, -1), nil)
		searcher.On("SearchPage", mock.Anything, query, dest, 2).
			Return(nil, marketplace.ErrDecode).
			Times(3)

		result, err := newFinder(
			searcher,
			position.WithMaxAttempts(3),
			position.WithSleeper(func(context.Context, time.Duration) error {
				sleeps++
				return nil
			}),
		).Find(context.TODO(), code, query, dest)

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, position.StateError, result.State, "should mark scan failed")
		assert.Nil(t, result.Page, "shouldn't return page")
		assert.Equal(t, 2, sleeps, "should sleep only between attempts")
	})

	t.Run("recovered", func(t *testing.T) {
		retries := 0
		searcher := mocks.NewSearcher(t)
		searcher.On("SearchPage", mock.Anything, query, dest, 1).
			Return(nil, marketplace.ErrDecode).
			Once()
		mockSearchPage(searcher, 1, fakePage(1, 100, 0), nil)

		result, err := newFinder(
			searcher,
			position.WithRetryHook(func() { retries++ }),
		).Find(context.TODO(), code, query, dest)

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, position.StateFound, result.State, "should find product after retry")
		assert.Equal(t, lo.ToPtr(1), result.Rank, "should return rank")
		assert.Equal(t, 1, retries, "should report retry")
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		searcher := mocks.NewSearcher(t)
		searcher.On("SearchPage", mock.Anything, query, dest, 1).
			Return(nil, marketplace.ErrDecode).
			Once()

		_, err := position.NewFinder(searcher, position.WithRetryDelay(time.Hour)).
			Find(ctx, code, query, dest)

		require.ErrorIs(t, err, context.Canceled, "should return context error")
	})
}

func TestUnitRealPosition(t *testing.T) {
	tests := map[string]struct {
		capacities []int
		page       int
		rank       int
		want       int
	}{
		"first page":         {capacities: []int{100}, page: 1, rank: 7, want: 7},
		"third page":         {capacities: []int{100, 100, 100}, page: 3, rank: 30, want: 230},
		"uneven pages":       {capacities: []int{100, 87, 12}, page: 3, rank: 5, want: 192},
		"missing capacities": {capacities: []int{100}, page: 3, rank: 5, want: 105},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, position.RealPosition(tt.capacities, tt.page, tt.rank),
				"should return real position")
		})
	}
}

func TestUnitPromoPosition(t *testing.T) {
	page, rank, ok := position.PromoPosition(150, 100)
	assert.True(t, ok, "should compute promo position")
	assert.Equal(t, 2, page, "should return promo page")
	assert.Equal(t, 50, rank, "should return promo rank")

	_, _, ok = position.PromoPosition(150, 0)
	assert.False(t, ok, "shouldn't compute promo position without capacity")
}

func newFinder(searcher position.Searcher, ops ...position.Option) *position.Finder {
	ops = append([]position.Option{
		position.WithSleeper(func(context.Context, time.Duration) error { return nil }),
	}, ops...)
	return position.NewFinder(searcher, ops...)
}

func mockSearchPage(searcher *mocks.Searcher, page int, result *models.SearchPage, err error) {
	searcher.On("SearchPage", mock.Anything, query, dest, page).Return(result, err).Once()
}

// fakePage returns page with capacity products, tracked product is placed at index target if not negative.
func fakePage(page, capacity, target int) *models.SearchPage {
	codes := lo.Times(capacity, func(ix int) int { return page*1000 + ix })
	if target >= 0 {
		codes[target] = code
	}
	return &models.SearchPage{VendorCodes: codes}
}
