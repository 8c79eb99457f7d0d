package marketplace

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

var (
	// ErrNoData is returned when search response has no data, which means product can't be found for the query.
	ErrNoData = decoder.ErrNoData
	// ErrMalformed is returned when search response misses other required keys.
	ErrMalformed = decoder.ErrMissingKey
)

// SearchPage fetches single page of search results for query in destination region.
// Pages are numbered from 1. Malformed JSON and non 200 responses, 401 included, are returned as ErrDecode.
func (c *Client) SearchPage(ctx context.Context, query, dest string, page int) (*models.SearchPage, error) {
	params := url.Values{
		"dest":      {dest},
		"page":      {strconv.Itoa(page)},
		"query":     {query},
		"spp":       {ForcedPersonalSale},
		"resultset": {"catalog"},
	}

	body, err := c.fetcher.FetchJSON(ctx, c.endpoints.SearchURL, params)
	if err != nil {
		if errors.Is(err, fetcher.ErrStatusNotOK) || errors.Is(err, fetcher.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return nil, fmt.Errorf("can't fetch search page: %w", err)
	}

	result, err := decoder.DecodeSearchPage(body)
	if err != nil {
		if errors.Is(err, decoder.ErrInvalidJSON) {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return nil, err
	}

	return result, nil
}
