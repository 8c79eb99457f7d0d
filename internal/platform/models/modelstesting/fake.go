package modelstesting

import (
	"math/rand"

	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
)

// FakeItem returns models.Item with fake data.
func FakeItem(ops ...func(i *models.Item)) models.Item {
	item := models.Item{
		ID:         rand.Intn(1_000_000) + 1,
		UserID:     rand.Intn(1000) + 1,
		VendorCode: rand.Intn(300_000_000) + 1,
		Name:       faker.Word(),
		NameSite:   faker.Word(),
	}

	for _, op := range ops {
		op(&item)
	}

	return item
}

// FakeCategory returns models.Category with fake data and random personal sale.
func FakeCategory(ops ...func(c *models.Category)) models.Category {
	category := models.Category{
		ID:           rand.Intn(1000) + 1,
		Name:         faker.Word(),
		PersonalSale: lo.ToPtr(rand.Intn(30) + 1),
	}

	for _, op := range ops {
		op(&category)
	}

	return category
}

// FakePrice returns in-stock models.Price with fake data.
func FakePrice(ops ...func(p *models.Price)) models.Price {
	finalPrice := rand.Intn(10_000) + 100
	price := models.Price{
		ItemID:       rand.Intn(1_000_000) + 1,
		ParsingID:    rand.Intn(1_000_000) + 1,
		Reviews:      rand.Intn(500),
		Price:        lo.ToPtr(finalPrice * 2),
		FinalPrice:   lo.ToPtr(finalPrice),
		PersonalSale: lo.ToPtr(rand.Intn(30)),
	}

	for _, op := range ops {
		op(&price)
	}

	return price
}

// FakeTrackedKeyword returns models.TrackedKeyword with fake data.
func FakeTrackedKeyword(ops ...func(k *models.TrackedKeyword)) models.TrackedKeyword {
	keyword := models.TrackedKeyword{
		Keyword: models.Keyword{
			ID:     rand.Intn(1_000_000) + 1,
			ItemID: rand.Intn(1_000_000) + 1,
			Value:  faker.Word(),
		},
		VendorCode: rand.Intn(300_000_000) + 1,
		UserID:     rand.Intn(1000) + 1,
	}

	for _, op := range ops {
		op(&keyword)
	}

	return keyword
}
