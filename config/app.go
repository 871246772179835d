package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// HashSalt 订单对外编号 (hashid) 的盐
	HashSalt string `json:"hash_salt" yaml:"hash_salt"`
}

func ProvideAppConfig(cfg *Config) *App {
	return cfg.App
}
