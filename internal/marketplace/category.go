package marketplace

import (
	"context"
	"fmt"

	"github.com/MichalMitros/marketplace-tracker/internal/decoder"
)

// ShardPath returns vol and part path segments of product card location.
func ShardPath(code int) (vol int, part int) {
	part = code / 1000
	vol = part / 100
	return vol, part
}

// ResolveCategory returns category name of product with provided vendor code.
// Basket shards are probed one by one until one of them has product card.
// Shard which answered is remembered for vol group and probed first next time.
// Returns empty string if no shard has product card.
func (c *Client) ResolveCategory(ctx context.Context, code int) string {
	vol, part := ShardPath(code)

	if shard, ok := c.cachedShard(vol); ok {
		if category, err := c.fetchCategory(ctx, shard, vol, part, code); err == nil {
			return category
		}
	}

	for shard := 1; shard <= c.shardCount; shard++ {
		if ctx.Err() != nil {
			return ""
		}

		category, err := c.fetchCategory(ctx, shard, vol, part, code)
		if err != nil {
			continue
		}

		c.cacheShard(vol, shard)
		return category
	}

	return ""
}

func (c *Client) fetchCategory(ctx context.Context, shard, vol, part, code int) (string, error) {
	cardURL := fmt.Sprintf(c.endpoints.BasketURLPattern, shard, vol, part, code)

	body, err := c.fetcher.FetchJSON(ctx, cardURL, nil)
	if err != nil {
		return "", err
	}

	return decoder.DecodeCategory(body)
}

func (c *Client) cachedShard(vol int) (int, bool) {
	c.shardsMu.Lock()
	defer c.shardsMu.Unlock()

	shard, ok := c.shards[vol]
	return shard, ok
}

func (c *Client) cacheShard(vol, shard int) {
	c.shardsMu.Lock()
	defer c.shardsMu.Unlock()

	c.shards[vol] = shard
}
