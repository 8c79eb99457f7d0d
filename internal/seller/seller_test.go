package seller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MichalMitros/marketplace-tracker/internal/decoder"
	"github.com/MichalMitros/marketplace-tracker/internal/decoder/testdata"
	"github.com/MichalMitros/marketplace-tracker/internal/fetcher"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/MichalMitros/marketplace-tracker/internal/seller"
	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userID = 7

func TestUnitFetchItems(t *testing.T) {
	token := faker.Password()
	offsets := []string{}

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Bearer "+token, req.Header.Get("Authorization"), "should send bearer token")
		assert.Equal(t, "3", req.URL.Query().Get("limit"), "should send page limit")
		offsets = append(offsets, req.URL.Query().Get("offset"))

		wrt.WriteHeader(http.StatusOK)
		if req.URL.Query().Get("offset") == "0" {
			wrt.Write([]byte(testdata.SellerGoodsResponse))
			return
		}
		wrt.Write([]byte(`{"data": {"listGoods": []}}`))
	}))
	t.Cleanup(srv.Close)

	client := seller.NewClient(fetcher.NewFetcher(srv.Client(), "test"), srv.URL, seller.WithPageLimit(3))

	items, err := client.FetchItems(context.TODO(), userID, token)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, []string{"0", "3"}, offsets, "should fetch pages while they are full")
	assert.Equal(t, []models.SellerItem{
		{UserID: userID, VendorCode: 146972802, Price: 4500, Discount: 30},
		{UserID: userID, VendorCode: 11111111, Price: 1000, Discount: 5},
	}, items, "should return goods with prices")
}

func TestUnitFetchItemsErrors(t *testing.T) {
	tests := map[string]struct {
		status  int
		body    string
		wantErr error
	}{
		"unauthorized": {
			status:  http.StatusUnauthorized,
			wantErr: seller.ErrUnauthorized,
		},
		"bad status": {
			status:  http.StatusBadGateway,
			wantErr: fetcher.ErrStatusNotOK,
		},
		"no data": {
			status:  http.StatusOK,
			body:    `{"error": true}`,
			wantErr: decoder.ErrNoData,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
				wrt.WriteHeader(tt.status)
				wrt.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			client := seller.NewClient(fetcher.NewFetcher(srv.Client(), "test"), srv.URL)

			items, err := client.FetchItems(context.TODO(), userID, faker.Password())

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			assert.Nil(t, items, "shouldn't return any items")
		})
	}
}
