package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type SessionStorage struct {
	redis *redis.Client
}

func NewSessionStorage(rds *redis.Client) *SessionStorage {
	return &SessionStorage{rds}
}

// Create 登录成功后写入会话，过期时间与 token 一致
func (s *SessionStorage) Create(ctx context.Context, sid string, ttl time.Duration) error {
	return s.redis.Set(ctx, s.name(sid), time.Now().Unix(), ttl).Err()
}

// Exists 会话被注销或过期后 token 即失效
func (s *SessionStorage) Exists(ctx context.Context, sid string) (bool, error) {
	n, err := s.redis.Exists(ctx, s.name(sid)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SessionStorage) Revoke(ctx context.Context, sid string) error {
	return s.redis.Del(ctx, s.name(sid)).Err()
}

// admin:session:{sid}
func (s *SessionStorage) name(sid string) string {
	return fmt.Sprintf("admin:session:%s", sid)
}
