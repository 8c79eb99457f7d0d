// Package seller fetches prices entered by sellers in marketplace seller-api.
package seller

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MichalMitros/marketplace-tracker/internal/decoder"
	"github.com/MichalMitros/marketplace-tracker/internal/fetcher"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
)

// ErrUnauthorized is returned when seller-api rejects user token.
var ErrUnauthorized = errors.New("seller token unauthorized")

// Fetcher fetches JSON documents.
type Fetcher interface {
	FetchJSON(ctx context.Context, rawURL string, query url.Values, ops ...fetcher.RequestOption) ([]byte, error)
}

// Option is custom configuration of Client.
type Option func(c *Client)

// Client fetches seller goods list.
type Client struct {
	fetcher  Fetcher
	goodsURL string
	limit    int
}

// NewClient returns new Client.
func NewClient(fetcher Fetcher, goodsURL string, ops ...Option) *Client {
	client := &Client{
		fetcher:  fetcher,
		goodsURL: goodsURL,
		limit:    1000,
	}

	for _, op := range ops {
		op(client)
	}

	return client
}

// FetchItems fetches all seller goods of user, page by page, while pages are full.
func (c *Client) FetchItems(ctx context.Context, userID int, token string) ([]models.SellerItem, error) {
	items := []models.SellerItem{}

	for offset := 0; ; offset += c.limit {
		query := url.Values{
			"limit":  {strconv.Itoa(c.limit)},
			"offset": {strconv.Itoa(offset)},
		}

		body, err := c.fetcher.FetchJSON(ctx, c.goodsURL, query, fetcher.WithBearerToken(token))
		if errors.Is(err, fetcher.ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		if err != nil {
			return nil, fmt.Errorf("can't fetch seller goods: %w", err)
		}

		page, goods, err := decoder.DecodeSellerGoods(body, userID)
		if err != nil {
			return nil, fmt.Errorf("can't decode seller goods: %w", err)
		}
		items = append(items, page...)

		if goods < c.limit {
			return items, nil
		}
	}
}

// WithPageLimit sets number of goods requested in single page.
func WithPageLimit(limit int) Option {
	return func(c *Client) {
		if limit > 0 {
			c.limit = limit
		}
	}
}
