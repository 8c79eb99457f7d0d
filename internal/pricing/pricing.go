// Package pricing estimates base price and personal discount of scraped final price.
package pricing

import (
	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Result is price before personal discount together with personal discount percent.
// Nil fields are unknown.
type Result struct {
	Price        *int
	PersonalSale *int
}

// Reconcile computes personal discount of finalPrice.
//
// Seller record is authoritative: discount is computed against its real price.
// Without it, category personal sale baseline is used to estimate base price.
// Without both, nothing is known. Values are rounded half to even.
func Reconcile(finalPrice int, seller *models.SellerItem, category *models.Category) Result {
	final := decimal.NewFromInt(int64(finalPrice))

	if seller != nil {
		realPrice := RealPrice(*seller)
		if realPrice.IsPositive() {
			personalSale := decimal.NewFromInt(1).
				Sub(final.Div(realPrice)).
				Mul(hundred)

			return Result{
				Price:        lo.ToPtr(roundInt(realPrice)),
				PersonalSale: lo.ToPtr(roundInt(personalSale)),
			}
		}
	}

	if category == nil || category.PersonalSale == nil || *category.PersonalSale >= 100 {
		return Result{}
	}

	personalSale := *category.PersonalSale
	price := final.
		Div(decimal.NewFromInt(int64(100 - personalSale))).
		Mul(hundred)

	return Result{
		Price:        lo.ToPtr(roundInt(price)),
		PersonalSale: lo.ToPtr(personalSale),
	}
}

// RealPrice returns seller price after seller discount.
func RealPrice(seller models.SellerItem) decimal.Decimal {
	return decimal.NewFromInt(int64(seller.Price)).
		Mul(decimal.NewFromInt(int64(100 - seller.Discount))).
		Div(hundred)
}

func roundInt(d decimal.Decimal) int {
	return int(d.RoundBank(0).IntPart())
}
