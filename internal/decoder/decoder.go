package decoder

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/samber/lo"
)

// ProductResult contains decoded product with decoding error if there is any.
type ProductResult struct {
	VendorCode int
	Product    models.ProductInfo
	Error      error
}

// DecodeProducts decodes product-detail response.
// Products are decoded one by one, so one malformed product doesn't affect the others.
// Products without id can't be assigned to any vendor code and are skipped.
func DecodeProducts(body []byte) ([]ProductResult, error) {
	var response detailResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if response.Data == nil {
		return nil, ErrNoData
	}

	results := make([]ProductResult, 0, len(response.Data.Products))
	for _, raw := range response.Data.Products {
		var id productID
		if err := json.Unmarshal(raw, &id); err != nil || id.ID == nil {
			continue
		}

		var product Product
		if err := json.Unmarshal(raw, &product); err != nil {
			results = append(results, ProductResult{
				VendorCode: *id.ID,
				Error:      fmt.Errorf("can't decode product: %w", err),
			})
			continue
		}

		info, err := toAppProduct(&product)
		results = append(results, ProductResult{
			VendorCode: *id.ID,
			Product:    info,
			Error:      err,
		})
	}

	return results, nil
}

// DecodeCategory decodes product card and returns its category name.
func DecodeCategory(body []byte) (string, error) {
	var card Card
	if err := json.Unmarshal(body, &card); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return strings.TrimSpace(card.SubjectName), nil
}

// DecodeSearchPage decodes search response page.
// It returns ErrNoData if there is no top-level data key and ErrMissingKey if any other required key is missing.
func DecodeSearchPage(body []byte) (*models.SearchPage, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	rawData, ok := envelope["data"]
	if !ok {
		return nil, ErrNoData
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(rawData, &data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	rawProducts, ok := data["products"]
	if !ok {
		return nil, fmt.Errorf("%w: data.products", ErrMissingKey)
	}

	var products []SearchProduct
	if err := json.Unmarshal(rawProducts, &products); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	page := &models.SearchPage{
		VendorCodes: make([]int, 0, len(products)),
		Promoted:    map[int]int{},
	}

	for ix := range products {
		if products[ix].ID == nil {
			return nil, fmt.Errorf("%w: data.products[%d].id", ErrMissingKey, ix)
		}
		page.VendorCodes = append(page.VendorCodes, *products[ix].ID)
		if products[ix].Log != nil && products[ix].Log.Position != nil {
			page.Promoted[*products[ix].ID] = *products[ix].Log.Position
		}
	}

	if rawMetadata, ok := envelope["metadata"]; ok {
		var metadata SearchMetadata
		if err := json.Unmarshal(rawMetadata, &metadata); err == nil {
			page.Original = metadata.Original != ""
		}
	}

	return page, nil
}

// DecodeSellerGoods decodes seller-api goods list page.
// It returns decoded items and number of goods in page, including goods without sizes, which have no price and are skipped.
func DecodeSellerGoods(body []byte, userID int) ([]models.SellerItem, int, error) {
	var response sellerGoodsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if response.Data == nil {
		return nil, 0, ErrNoData
	}

	goods := lo.Filter(response.Data.ListGoods, func(g SellerGood, _ int) bool {
		return len(g.Sizes) > 0
	})

	items := lo.Map(goods, func(g SellerGood, _ int) models.SellerItem {
		return models.SellerItem{
			UserID:     userID,
			VendorCode: g.VendorCode,
			Price:      g.Sizes[0].Price,
			Discount:   g.Discount,
		}
	})

	return items, len(response.Data.ListGoods), nil
}
