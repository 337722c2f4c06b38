package cache

import (
	"context"
	"encoding/json"
	"time"

	"ecommerce/internal/domain/model"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/singleflight"
)

// 商品のcache-aside。読み込みはsingleflightで多重化を抑止。
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
}

func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{client: client, ttl: ttl}
}

func cacheKey(productID string) string {
	return "product:" + productID
}

// Load はキャッシュヒットならその値を、ミスならloaderの結果を返して埋める。
func (c *ProductCache) Load(ctx context.Context, productID string, loader func(ctx context.Context) (model.Product, error)) (model.Product, error) {
	value, err := c.client.Get(ctx, cacheKey(productID)).Result()
	if err == nil {
		var p model.Product
		if err := json.Unmarshal([]byte(value), &p); err == nil {
			return p, nil
		}
		// 壊れたエントリは読み直す
	} else if err != redis.Nil {
		// redis障害時はDBへフォールバック
		return loader(ctx)
	}

	v, err, _ := c.group.Do(productID, func() (interface{}, error) {
		p, err := loader(ctx)
		if err != nil {
			return model.Product{}, err
		}

		payload, err := json.Marshal(p)
		if err == nil {
			c.client.Set(ctx, cacheKey(productID), payload, c.ttl)
		}
		return p, nil
	})
	if err != nil {
		return model.Product{}, err
	}
	return v.(model.Product), nil
}

// Invalidate は商品のキャッシュエントリを消す。
func (c *ProductCache) Invalidate(ctx context.Context, productID string) {
	c.client.Del(ctx, cacheKey(productID))
}
