package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Himanshu3141/Creatrr/types"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*TrendingCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewTrendingCache(client), mr
}

func TestTrendingCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	if _, ok := c.Get(ctx, 10); ok {
		t.Fatal("empty cache must miss")
	}

	posts := []*types.TrendingPost{
		{ID: 1, Title: "榜一", ViewCount: 100, LikeCount: 10, Score: 130},
		{ID: 2, Title: "榜二", ViewCount: 50, LikeCount: 5, Score: 65},
	}
	c.Set(ctx, 10, posts)

	got, ok := c.Get(ctx, 10)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got) != 2 || got[0].ID != 1 || got[0].Score != 130 {
		t.Fatalf("unexpected snapshot: %+v", got)
	}

	// limit 是键的一部分
	if _, ok := c.Get(ctx, 5); ok {
		t.Fatal("different limit must miss")
	}
}

func TestTrendingCacheExpires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, 10, []*types.TrendingPost{{ID: 1}})
	if _, ok := c.Get(ctx, 10); !ok {
		t.Fatal("expected cache hit before TTL")
	}

	mr.FastForward(trendingTTL + time.Second)
	if _, ok := c.Get(ctx, 10); ok {
		t.Fatal("expected miss after TTL")
	}
}

func TestTrendingCacheFailOpen(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	mr.Close()
	// redis 不可用时读写都静默失败
	if _, ok := c.Get(ctx, 10); ok {
		t.Fatal("expected miss when redis is down")
	}
	c.Set(ctx, 10, []*types.TrendingPost{{ID: 1}})
}
