package differ_test

import (
	"context"
	"testing"

	"github.com/MichalMitros/marketplace-tracker/internal/differ"
	"github.com/MichalMitros/marketplace-tracker/internal/differ/mocks"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/models/modelstesting"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUnitDiff(t *testing.T) {
	base := modelstesting.FakePrice(func(p *models.Price) {
		p.FinalPrice = lo.ToPtr(1000)
		p.PersonalSale = lo.ToPtr(10)
	})

	tests := map[string]struct {
		prev *models.Price
		next models.Price
		want bool
	}{
		"first snapshot": {
			next: base,
		},
		"same values": {
			prev: lo.ToPtr(base),
			next: modelstesting.FakePrice(func(p *models.Price) {
				p.FinalPrice = lo.ToPtr(1000)
				p.PersonalSale = lo.ToPtr(10)
			}),
		},
		"other fields changed": {
			prev: lo.ToPtr(base),
			next: models.Price{FinalPrice: lo.ToPtr(1000), PersonalSale: lo.ToPtr(10), Reviews: 1, Price: lo.ToPtr(1)},
		},
		"final price changed": {
			prev: lo.ToPtr(base),
			next: models.Price{FinalPrice: lo.ToPtr(990), PersonalSale: lo.ToPtr(10)},
			want: true,
		},
		"personal sale changed": {
			prev: lo.ToPtr(base),
			next: models.Price{FinalPrice: lo.ToPtr(1000), PersonalSale: lo.ToPtr(11)},
			want: true,
		},
		"sold out": {
			prev: lo.ToPtr(base),
			next: models.Price{SoldOut: true},
			want: true,
		},
		"both sold out": {
			prev: &models.Price{SoldOut: true},
			next: models.Price{SoldOut: true},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, differ.Diff(tt.prev, tt.next), "should detect change correctly")
		})
	}
}

func TestUnitDispatch(t *testing.T) {
	changes := lo.Times(3, func(ix int) models.PriceChange {
		return models.PriceChange{
			Item: modelstesting.FakeItem(func(i *models.Item) { i.ID = ix + 1 }),
			Old:  modelstesting.FakePrice(),
			New:  modelstesting.FakePrice(),
		}
	})

	notifier := mocks.NewNotifier(t)
	notifier.On("Notify", mock.Anything, changes[0]).Return(nil).Once()
	notifier.On("Notify", mock.Anything, changes[1]).Return(assert.AnError).Once()
	notifier.On("Notify", mock.Anything, changes[2]).Return(nil).Once()

	failures := differ.NewDispatcher(notifier).Dispatch(context.TODO(), changes)

	assert.Equal(t, map[int]error{2: assert.AnError}, failures, "should collect failed notifications by item id")
}
