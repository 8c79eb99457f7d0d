package marketplace_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/MichalMitros/marketplace-tracker/internal/decoder/testdata"
	"github.com/MichalMitros/marketplace-tracker/internal/fetcher"
	"github.com/MichalMitros/marketplace-tracker/internal/marketplace"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userAgent = "test/0.0.0"
	dest      = "-1257786"
)

func TestUnitFetchPrices(t *testing.T) {
	requests := int32(0)
	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&requests, 1)
		assert.Equal(t, "99", req.URL.Query().Get("spp"), "should force personal sale")
		assert.Equal(t, dest, req.URL.Query().Get("dest"), "should pass destination")
		assert.LessOrEqual(t, len(strings.Split(req.URL.Query().Get("nm"), ";")), 2, "should respect chunk size")

		if strings.Contains(req.URL.Query().Get("nm"), "555") {
			wrt.WriteHeader(http.StatusInternalServerError)
			return
		}
		wrt.WriteHeader(http.StatusOK)
		wrt.Write([]byte(testdata.DetailResponse))
	}))
	t.Cleanup(srv.Close)

	client := newClient(srv, marketplace.WithChunkSize(2))
	codes := []int{146972802, 38532148, 11111111, 999, 22222222, 555}

	products, failures := client.FetchPrices(context.TODO(), codes, dest)

	assert.Equal(t, int32(3), atomic.LoadInt32(&requests), "should send one request per chunk")
	for _, code := range codes {
		_, isProduct := products[code]
		_, isFailure := failures[code]
		assert.Truef(t, isProduct != isFailure, "vendor code %d should be in exactly one map", code)
	}

	assert.Equal(t, models.ProductInfo{
		VendorCode: 38532148,
		NameSite:   "Cotton t-shirt",
		Reviews:    3,
		SoldOut:    true,
	}, products[38532148], "should return sold out product without prices")
	assert.Equal(t, 1899, *products[146972802].FinalPrice, "should return final price")
	assert.Error(t, failures[11111111], "should isolate malformed product")
	assert.ErrorIs(t, failures[999], marketplace.ErrProductNotFound, "should mark missing product")
	assert.ErrorIs(t, failures[555], fetcher.ErrStatusNotOK, "should mark products from failed chunk")
}

func TestUnitResolveCategory(t *testing.T) {
	requests := int32(0)
	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&requests, 1)
		if !strings.HasPrefix(req.URL.Path, "/basket-07/vol1469/part146") {
			wrt.WriteHeader(http.StatusNotFound)
			return
		}
		wrt.WriteHeader(http.StatusOK)
		wrt.Write([]byte(testdata.CardResponse))
	}))
	t.Cleanup(srv.Close)

	client := newClient(srv, marketplace.WithShardCount(10))

	category := client.ResolveCategory(context.TODO(), 146972802)
	assert.Equal(t, "Sweatshirts", category, "should return category from first responding shard")
	assert.Equal(t, int32(7), atomic.LoadInt32(&requests), "should probe shards in order")

	atomic.StoreInt32(&requests, 0)
	category = client.ResolveCategory(context.TODO(), 146900001)
	assert.Equal(t, "Sweatshirts", category, "should return category for code from the same vol")
	assert.Equal(t, int32(1), atomic.LoadInt32(&requests), "should probe cached shard first")

	atomic.StoreInt32(&requests, 0)
	category = client.ResolveCategory(context.TODO(), 12345)
	assert.Empty(t, category, "should return empty category when no shard responds")
	assert.Equal(t, int32(10), atomic.LoadInt32(&requests), "should probe all shards")
}

func TestUnitShardPath(t *testing.T) {
	vol, part := marketplace.ShardPath(146972802)

	assert.Equal(t, 1469, vol, "should return vol")
	assert.Equal(t, 146972, part, "should return part")
}

func TestUnitSearchPage(t *testing.T) {
	tests := map[string]struct {
		status   int
		body     string
		wantPage *models.SearchPage
		wantErr  error
	}{
		"ok": {
			status: http.StatusOK,
			body:   testdata.SearchResponse,
			wantPage: &models.SearchPage{
				VendorCodes: []int{1001, 146972802, 1003},
				Promoted:    map[int]int{146972802: 150},
				Original:    true,
			},
		},
		"bad status": {
			status:  http.StatusTooManyRequests,
			wantErr: marketplace.ErrDecode,
		},
		"unauthorized": {
			status:  http.StatusUnauthorized,
			wantErr: marketplace.ErrDecode,
		},
		"empty body": {
			status:  http.StatusOK,
			wantErr: marketplace.ErrDecode,
		},
		"no data": {
			status:  http.StatusOK,
			body:    `{"state": 0}`,
			wantErr: marketplace.ErrNoData,
		},
		"malformed": {
			status:  http.StatusOK,
			body:    `{"data": {}}`,
			wantErr: marketplace.ErrMalformed,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				assert.Equal(t, "3", req.URL.Query().Get("page"), "should pass page")
				assert.Equal(t, "sweatshirt", req.URL.Query().Get("query"), "should pass query")
				assert.Equal(t, dest, req.URL.Query().Get("dest"), "should pass destination")
				wrt.WriteHeader(tt.status)
				wrt.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			page, err := newClient(srv).SearchPage(context.TODO(), "sweatshirt", dest, 3)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			assert.Equal(t, tt.wantPage, page, "should return correct page")
		})
	}
}

func newClient(srv *httptest.Server, ops ...marketplace.Option) *marketplace.Client {
	return marketplace.NewClient(
		fetcher.NewFetcher(srv.Client(), userAgent),
		marketplace.Endpoints{
			DetailURL:        srv.URL + "/cards/detail",
			SearchURL:        srv.URL + "/search",
			BasketURLPattern: fmt.Sprintf("%s/basket-%%02d/vol%%d/part%%d/%%d/info/ru/card.json", srv.URL),
		},
		ops...,
	)
}
