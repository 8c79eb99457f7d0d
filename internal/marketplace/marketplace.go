// Package marketplace talks to public marketplace endpoints: product details,
// product cards stored on basket shards and search results.
package marketplace

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"github.com/MichalMitros/marketplace-tracker/internal/fetcher"
)

// ForcedPersonalSale is personal sale value sent with every request.
// Marketplace hides real personal discounts outside of undocumented thresholds,
// so neutral high value is forced to get base prices. It couples us to provider behavior.
const ForcedPersonalSale = "99"

var (
	// ErrDecode is returned when response can't be decoded. It is transient and worth retrying.
	ErrDecode = errors.New("can't decode marketplace response")
	// ErrProductNotFound is returned for vendor codes missing from product-detail response.
	ErrProductNotFound = errors.New("product not found in marketplace response")
)

// Fetcher fetches JSON documents.
type Fetcher interface {
	FetchJSON(ctx context.Context, rawURL string, query url.Values, ops ...fetcher.RequestOption) ([]byte, error)
}

// Endpoints holds marketplace endpoints.
type Endpoints struct {
	// DetailURL is batch product-detail endpoint.
	DetailURL string
	// SearchURL is paginated search endpoint.
	SearchURL string
	// BasketURLPattern is product card url pattern with shard, vol, part and vendor code verbs.
	BasketURLPattern string
}

// Option is custom configuration of Client.
type Option func(c *Client)

// Client fetches product prices, categories and search pages.
type Client struct {
	fetcher    Fetcher
	endpoints  Endpoints
	chunkSize  int
	shardCount int

	shardsMu sync.Mutex
	shards   map[int]int
}

// NewClient returns new Client.
func NewClient(fetcher Fetcher, endpoints Endpoints, ops ...Option) *Client {
	client := &Client{
		fetcher:    fetcher,
		endpoints:  endpoints,
		chunkSize:  100,
		shardCount: 98,
		shards:     map[int]int{},
	}

	for _, op := range ops {
		op(client)
	}

	return client
}

// WithChunkSize sets max number of vendor codes in single product-detail request.
func WithChunkSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithShardCount sets number of basket shards probed while resolving categories.
func WithShardCount(count int) Option {
	return func(c *Client) {
		if count > 0 {
			c.shardCount = count
		}
	}
}
