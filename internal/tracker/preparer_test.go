package tracker_test

import (
	"context"
	"testing"
	"time"

	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/models/modelstesting"
	"github.com/MichalMitros/marketplace-tracker/internal/tracker"
	"github.com/MichalMitros/marketplace-tracker/internal/tracker/mocks"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitPrepare(t *testing.T) {
	windowStart := time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC)
	item := modelstesting.FakeItem(func(i *models.Item) { i.ID = 1 })
	keyword := modelstesting.FakeTrackedKeyword(func(k *models.TrackedKeyword) { k.ID, k.ItemID = 2, 1 })

	prices := []models.Price{
		{ItemID: 1, ParsedAt: now.Add(-time.Hour), FinalPrice: lo.ToPtr(100)},
		{ItemID: 1, ParsedAt: now.Add(-30 * time.Minute), FinalPrice: lo.ToPtr(90)},
		{ItemID: 1, ParsedAt: now.AddDate(0, 0, -2), SoldOut: true},
	}
	positions := []models.Position{
		{KeywordID: 2, City: "Moscow", ParsedAt: now.AddDate(0, 0, -1), PageCapacities: []int{100, 100}, Page: lo.ToPtr(2), Rank: lo.ToPtr(5)},
		{KeywordID: 2, City: "Kazan", ParsedAt: now, PageCapacities: []int{100}, Page: lo.ToPtr(1), Rank: lo.ToPtr(1)},
	}

	wantPrices := []models.PreparedPrice{{
		ItemID: 1,
		Prices: map[string]*models.PricePoint{
			"2024-02-28": {SoldOut: true},
			"2024-02-29": nil,
			"2024-03-01": {FinalPrice: lo.ToPtr(90)},
		},
	}}
	wantPositions := []models.PreparedPosition{{
		KeywordID: 2,
		City:      "Moscow",
		Positions: map[string]*models.PositionPoint{
			"2024-02-28": nil,
			"2024-02-29": {Page: lo.ToPtr(2), Rank: lo.ToPtr(5), RealPosition: lo.ToPtr(105)},
			"2024-03-01": nil,
		},
	}}

	storage := mocks.NewStorage(t)
	storage.On("GetItems", mock.Anything).Return([]models.Item{item}, nil).Once()
	storage.On("GetPricesSince", mock.Anything, windowStart).Return(prices, nil).Once()
	storage.On("ReplacePreparedPrices", mock.Anything, wantPrices).Return(nil).Once()
	storage.On("GetKeywords", mock.Anything).Return([]models.TrackedKeyword{keyword}, nil).Once()
	storage.On("GetPositionsSince", mock.Anything, windowStart).Return(positions, nil).Once()
	storage.On("ReplacePreparedPositions", mock.Anything, wantPositions).Return(nil).Once()

	err := tracker.NewPreparer(
		storage,
		[]string{"Moscow"},
		3,
		time.UTC,
		tracker.WithClock(fakeClock{now: &now}),
	).Prepare(context.TODO())

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitPrepareStorageError(t *testing.T) {
	tests := map[string]struct {
		mock    func(storage *mocks.Storage)
		wantMsg string
	}{
		"get items error": {
			mock: func(storage *mocks.Storage) {
				storage.On("GetItems", mock.Anything).Return(nil, assert.AnError).Once()
			},
			wantMsg: "can't get items",
		},
		"replace prices error": {
			mock: func(storage *mocks.Storage) {
				storage.On("GetItems", mock.Anything).Return([]models.Item{}, nil).Once()
				storage.On("GetPricesSince", mock.Anything, mock.AnythingOfType("time.Time")).Return([]models.Price{}, nil).Once()
				storage.On("ReplacePreparedPrices", mock.Anything, mock.Anything).Return(assert.AnError).Once()
			},
			wantMsg: "can't replace prepared prices",
		},
		"get positions error": {
			mock: func(storage *mocks.Storage) {
				storage.On("GetItems", mock.Anything).Return([]models.Item{}, nil).Once()
				storage.On("GetPricesSince", mock.Anything, mock.AnythingOfType("time.Time")).Return([]models.Price{}, nil).Once()
				storage.On("ReplacePreparedPrices", mock.Anything, mock.Anything).Return(nil).Once()
				storage.On("GetKeywords", mock.Anything).Return([]models.TrackedKeyword{}, nil).Once()
				storage.On("GetPositionsSince", mock.Anything, mock.AnythingOfType("time.Time")).Return(nil, assert.AnError).Once()
			},
			wantMsg: "can't get positions",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			storage := mocks.NewStorage(t)
			tt.mock(storage)

			err := tracker.NewPreparer(storage, []string{"Moscow"}, 3, time.UTC,
				tracker.WithClock(fakeClock{now: &now})).Prepare(context.TODO())

			require.ErrorContains(t, err, tt.wantMsg, "should return error about failed step")
			require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
		})
	}
}
