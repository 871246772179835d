package config

import "time"

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// ExpiresIn 管理员会话有效期（秒）
	ExpiresIn int64 `json:"expires_in" yaml:"expires_in"`
}

func (j *Jwt) withDefaults() {
	if j.ExpiresIn <= 0 {
		j.ExpiresIn = 12 * 3600
	}
}

func (j *Jwt) TTL() time.Duration {
	return time.Duration(j.ExpiresIn) * time.Second
}

func ProvideJwtConfig(cfg *Config) *Jwt {
	return cfg.Jwt
}
