package client

import (
	"context"
	"storefront/config"
	"storefront/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient 启动时连不上直接退出，购物车和后台登录都依赖 redis
func NewRedisClient(conf *config.Config) *redis.Client {
	client := newClient(conf.Redis)

	ctx, cancel := context.WithTimeout(context.Background(), conf.Redis.DialTimeout())
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.L.Fatal("connect redis error", zap.String("addr", conf.Redis.Addr()), zap.Error(err))
	}
	log.L.Info("redis client ready", zap.String("addr", conf.Redis.Addr()), zap.Int("db", conf.Redis.Database))
	return client
}

func newClient(r *config.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        r.Addr(),
		Username:    r.Username,
		Password:    r.Password,
		DB:          r.Database,
		PoolSize:    r.PoolSize,
		DialTimeout: r.DialTimeout(),
	})
}
