package decoder_test

import (
	"testing"

	"github.com/MichalMitros/marketplace-tracker/internal/decoder"
	"github.com/MichalMitros/marketplace-tracker/internal/decoder/testdata"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitDecodeProducts(t *testing.T) {
	results, err := decoder.DecodeProducts([]byte(testdata.DetailResponse))

	require.NoError(t, err, "shouldn't return any error")
	require.Len(t, results, 4, "should skip product without id")

	assert.Equal(t, decoder.ProductResult{
		VendorCode: 146972802,
		Product: models.ProductInfo{
			VendorCode: 146972802,
			NameSite:   "Sweatshirt oversize",
			Reviews:    812,
			Price:      lo.ToPtr(4500),
			FinalPrice: lo.ToPtr(1899),
		},
	}, results[0], "should decode in stock product")

	assert.Equal(t, decoder.ProductResult{
		VendorCode: 38532148,
		Product: models.ProductInfo{
			VendorCode: 38532148,
			NameSite:   "Cotton t-shirt",
			Reviews:    3,
			SoldOut:    true,
		},
	}, results[1], "should decode sold out product without prices")

	assert.Equal(t, 11111111, results[2].VendorCode, "should keep vendor code of malformed product")
	assert.ErrorContains(t, results[2].Error, "can't decode product", "should return product decoding error")

	assert.Equal(t, 22222222, results[3].VendorCode, "should keep vendor code of product without price")
	assert.Error(t, results[3].Error, "should return error for in stock product without price")
}

func TestUnitDecodeProductsErrors(t *testing.T) {
	tests := map[string]struct {
		body    string
		wantErr error
	}{
		"empty body": {
			body:    "",
			wantErr: decoder.ErrInvalidJSON,
		},
		"html body": {
			body:    "<html>too many requests</html>",
			wantErr: decoder.ErrInvalidJSON,
		},
		"no data": {
			body:    `{"state": 0}`,
			wantErr: decoder.ErrNoData,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			results, err := decoder.DecodeProducts([]byte(tt.body))

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			assert.Nil(t, results, "shouldn't return any results")
		})
	}
}

func TestUnitDecodeCategory(t *testing.T) {
	category, err := decoder.DecodeCategory([]byte(testdata.CardResponse))

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, "Sweatshirts", category, "should return trimmed subject name")

	_, err = decoder.DecodeCategory([]byte("not found"))
	require.ErrorIs(t, err, decoder.ErrInvalidJSON, "should return invalid json error")
}

func TestUnitDecodeSearchPage(t *testing.T) {
	page, err := decoder.DecodeSearchPage([]byte(testdata.SearchResponse))

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, &models.SearchPage{
		VendorCodes: []int{1001, 146972802, 1003},
		Promoted:    map[int]int{146972802: 150},
		Original:    true,
	}, page, "should decode search page")
}

func TestUnitDecodeSearchPageErrors(t *testing.T) {
	tests := map[string]struct {
		body    string
		wantErr error
	}{
		"empty body": {
			body:    "",
			wantErr: decoder.ErrInvalidJSON,
		},
		"no data key": {
			body:    `{"metadata": {"name": "x"}, "state": 0}`,
			wantErr: decoder.ErrNoData,
		},
		"no products key": {
			body:    `{"data": {"total": 0}}`,
			wantErr: decoder.ErrMissingKey,
		},
		"product without id": {
			body:    `{"data": {"products": [{"id": 1}, {"name": "x"}]}}`,
			wantErr: decoder.ErrMissingKey,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := decoder.DecodeSearchPage([]byte(tt.body))

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}

func TestUnitDecodeSellerGoods(t *testing.T) {
	items, total, err := decoder.DecodeSellerGoods([]byte(testdata.SellerGoodsResponse), 7)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, 3, total, "should count all goods in page")
	assert.Equal(t, []models.SellerItem{
		{UserID: 7, VendorCode: 146972802, Price: 4500, Discount: 30},
		{UserID: 7, VendorCode: 11111111, Price: 1000, Discount: 5},
	}, items, "should decode goods with sizes")
}
