package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"storefront/config"
	"storefront/pkg/cart"
	"time"

	"github.com/redis/go-redis/v9"
)

// 购物车默认保留 7 天
const cartExpireAt = 7 * 24 * time.Hour

type CartStorage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCartStorage(rds *redis.Client, shop *config.Shop) *CartStorage {
	ttl := cartExpireAt
	if shop != nil && shop.CartTTL() > 0 {
		ttl = shop.CartTTL()
	}
	return &CartStorage{redis: rds, ttl: ttl}
}

// Get 不存在时返回空购物车
func (c *CartStorage) Get(ctx context.Context, cartID string) (*cart.Cart, error) {
	val, err := c.redis.Get(ctx, c.name(cartID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, err
	}
	cc := cart.New()
	if err := json.Unmarshal(val, cc); err != nil {
		return nil, err
	}
	return cc, nil
}

// Save 每次写入刷新过期时间
func (c *CartStorage) Save(ctx context.Context, cartID string, cc *cart.Cart) error {
	if cc.IsEmpty() {
		return c.Del(ctx, cartID)
	}
	text, err := json.Marshal(cc)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, c.name(cartID), text, c.ttl).Err()
}

func (c *CartStorage) Del(ctx context.Context, cartID string) error {
	return c.redis.Del(ctx, c.name(cartID)).Err()
}

// shop:cart:{cartID}
func (c *CartStorage) name(cartID string) string {
	return fmt.Sprintf("shop:cart:%s", cartID)
}
