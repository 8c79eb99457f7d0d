package marketplace

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MichalMitros/marketplace-tracker/internal/decoder"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/samber/lo"
)

// FetchPrices fetches products of provided vendor codes in chunks.
// Every vendor code ends up in exactly one of returned maps: products or errors.
// Failure of one product or whole chunk never stops fetching the rest.
func (c *Client) FetchPrices(
	ctx context.Context,
	codes []int,
	dest string,
) (map[int]models.ProductInfo, map[int]error) {
	products := make(map[int]models.ProductInfo, len(codes))
	failures := make(map[int]error)

	for _, chunk := range lo.Chunk(lo.Uniq(codes), c.chunkSize) {
		results, err := c.fetchChunk(ctx, chunk, dest)
		if err != nil {
			for _, code := range chunk {
				failures[code] = err
			}
			continue
		}

		for _, code := range chunk {
			result, ok := results[code]
			switch {
			case !ok:
				failures[code] = ErrProductNotFound
			case result.Error != nil:
				failures[code] = result.Error
			default:
				products[code] = result.Product
			}
		}
	}

	return products, failures
}

func (c *Client) fetchChunk(ctx context.Context, chunk []int, dest string) (map[int]decoder.ProductResult, error) {
	query := url.Values{
		"dest": {dest},
		"spp":  {ForcedPersonalSale},
		"nm":   {joinCodes(chunk)},
	}

	body, err := c.fetcher.FetchJSON(ctx, c.endpoints.DetailURL, query)
	if err != nil {
		return nil, fmt.Errorf("can't fetch products: %w", err)
	}

	results, err := decoder.DecodeProducts(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return lo.SliceToMap(results, func(r decoder.ProductResult) (int, decoder.ProductResult) {
		return r.VendorCode, r
	}), nil
}

func joinCodes(codes []int) string {
	return strings.Join(lo.Map(codes, func(code int, _ int) string {
		return strconv.Itoa(code)
	}), ";")
}
