package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/Himanshu3141/Creatrr/types"

	"github.com/redis/go-redis/v9"
)

const trendingTTL = 60 * time.Second

// TrendingCache 热门榜快照缓存
// 命中失败时上层直接回源，不影响排序语义
type TrendingCache struct {
	redis *redis.Client
}

func NewTrendingCache(redis *redis.Client) *TrendingCache {
	return &TrendingCache{redis: redis}
}

func (c *TrendingCache) Get(ctx context.Context, limit int) ([]*types.TrendingPost, bool) {
	val, err := c.redis.Get(ctx, c.key(limit)).Result()
	if err != nil {
		return nil, false
	}

	var posts []*types.TrendingPost
	if err := json.Unmarshal([]byte(val), &posts); err != nil {
		return nil, false
	}
	return posts, true
}

func (c *TrendingCache) Set(ctx context.Context, limit int, posts []*types.TrendingPost) {
	data, err := json.Marshal(posts)
	if err != nil {
		return
	}
	// 写失败不影响请求
	_ = c.redis.Set(ctx, c.key(limit), data, trendingTTL).Err()
}

func (c *TrendingCache) key(limit int) string {
	return "feed:trending:" + strconv.Itoa(limit)
}
