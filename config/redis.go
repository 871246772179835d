package config

import (
	"fmt"
	"time"
)

// Redis 购物车、结算流程与后台会话共用一个库
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
	PoolSize int    `json:"pool_size" yaml:"pool_size"`
	// 单位毫秒
	DialTimeoutMs int `json:"dial_timeout_ms" yaml:"dial_timeout_ms"`
}

func (r *Redis) Addr() string {
	return fmt.Sprintf("%s:%d", r.Address, r.Port)
}

func (r *Redis) DialTimeout() time.Duration {
	return time.Duration(r.DialTimeoutMs) * time.Millisecond
}

func (r *Redis) withDefaults() {
	if r.Address == "" {
		r.Address = "127.0.0.1"
	}
	if r.Port == 0 {
		r.Port = 6379
	}
	if r.PoolSize <= 0 {
		r.PoolSize = 20
	}
	if r.DialTimeoutMs <= 0 {
		r.DialTimeoutMs = 3000
	}
}
