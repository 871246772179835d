package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"storefront/pkg/checkout"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// 结账流程状态保留 2 小时
const flowExpireAt = 2 * time.Hour

// 下单锁的过期时间，覆盖一次下单事务即可
const submitLockTTL = 15 * time.Second

// 只删除自己持有的锁
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

type FlowStorage struct {
	redis *redis.Client
}

func NewFlowStorage(rds *redis.Client) *FlowStorage {
	return &FlowStorage{rds}
}

// Get 不存在时从填写资料阶段开始
func (f *FlowStorage) Get(ctx context.Context, cartID string) (*checkout.Flow, error) {
	val, err := f.redis.Get(ctx, f.name(cartID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return checkout.New(), nil
	}
	if err != nil {
		return nil, err
	}
	flow := checkout.New()
	if err := json.Unmarshal(val, flow); err != nil {
		return nil, err
	}
	return flow, nil
}

func (f *FlowStorage) Save(ctx context.Context, cartID string, flow *checkout.Flow) error {
	text, err := json.Marshal(flow)
	if err != nil {
		return err
	}
	return f.redis.Set(ctx, f.name(cartID), text, flowExpireAt).Err()
}

func (f *FlowStorage) Del(ctx context.Context, cartID string) error {
	return f.redis.Del(ctx, f.name(cartID)).Err()
}

// Lock 同一购物车同时只允许一个下单请求，ok 为 false 表示已被占用
func (f *FlowStorage) Lock(ctx context.Context, cartID string) (token string, ok bool, err error) {
	token = uuid.NewString()
	ok, err = f.redis.SetNX(ctx, f.lockName(cartID), token, submitLockTTL).Result()
	if err != nil {
		return "", false, err
	}
	return token, ok, nil
}

func (f *FlowStorage) Unlock(ctx context.Context, cartID, token string) error {
	return unlockScript.Run(ctx, f.redis, []string{f.lockName(cartID)}, token).Err()
}

// shop:checkout:lock:{cartID}
func (f *FlowStorage) lockName(cartID string) string {
	return fmt.Sprintf("shop:checkout:lock:%s", cartID)
}

// shop:checkout:{cartID}
func (f *FlowStorage) name(cartID string) string {
	return fmt.Sprintf("shop:checkout:%s", cartID)
}
