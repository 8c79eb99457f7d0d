package decoder

import (
	"encoding/json"
	"errors"

	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/samber/lo"
)

// errNoSalePrice is returned for in-stock products without sale price.
var errNoSalePrice = errors.New("in stock product has no sale price")

type detailResponse struct {
	Data *struct {
		Products []json.RawMessage `json:"products"`
	} `json:"data"`
}

type productID struct {
	ID *int `json:"id"`
}

// Product is model for products in product-detail response.
// Prices are in hundredths of currency unit.
type Product struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	PriceU     *int   `json:"priceU"`
	SalePriceU *int   `json:"salePriceU"`
	Feedbacks  int    `json:"feedbacks"`
	Sizes      []Size `json:"sizes"`
}

// Size is product size variant.
type Size struct {
	Name   string  `json:"name"`
	Stocks []Stock `json:"stocks"`
}

// Stock is size availability in single warehouse.
type Stock struct {
	Warehouse int `json:"wh"`
	Qty       int `json:"qty"`
}

// Card is model for product card stored on basket shard.
type Card struct {
	Name            string `json:"imt_name"`
	SubjectName     string `json:"subj_name"`
	SubjectRootName string `json:"subj_root_name"`
}

// SearchProduct is model for product in search results.
type SearchProduct struct {
	ID  *int       `json:"id"`
	Log *SearchLog `json:"log"`
}

// SearchLog marks promoted placement of product in search results.
type SearchLog struct {
	Position      *int `json:"position"`
	PromoPosition *int `json:"promoPosition"`
}

// SearchMetadata is search response metadata.
type SearchMetadata struct {
	Name     string `json:"name"`
	Original string `json:"original"`
}

type sellerGoodsResponse struct {
	Data *struct {
		ListGoods []SellerGood `json:"listGoods"`
	} `json:"data"`
}

// SellerGood is model for goods in seller-api price list.
type SellerGood struct {
	VendorCode int          `json:"nmID"`
	Discount   int          `json:"discount"`
	Sizes      []SellerSize `json:"sizes"`
}

// SellerSize is seller price of goods size.
type SellerSize struct {
	Price int `json:"price"`
}

func toAppProduct(product *Product) (models.ProductInfo, error) {
	info := models.ProductInfo{
		VendorCode: product.ID,
		NameSite:   product.Name,
		Reviews:    product.Feedbacks,
		SoldOut:    isSoldOut(product.Sizes),
	}

	if info.SoldOut {
		return info, nil
	}

	if product.SalePriceU == nil {
		return info, errNoSalePrice
	}

	info.FinalPrice = lo.ToPtr(*product.SalePriceU / 100)
	if product.PriceU != nil {
		info.Price = lo.ToPtr(*product.PriceU / 100)
	}

	return info, nil
}

// isSoldOut returns true when no size has any stock entry with positive quantity.
func isSoldOut(sizes []Size) bool {
	return !lo.SomeBy(sizes, func(size Size) bool {
		return lo.SomeBy(size.Stocks, func(stock Stock) bool {
			return stock.Qty > 0
		})
	})
}
