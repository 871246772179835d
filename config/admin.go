package config

type Admin struct {
	// PasswordHash bcrypt 哈希，不保存明文
	PasswordHash string `json:"password_hash" yaml:"password_hash"`
	// LoginRate 每个 IP 每分钟允许的登录尝试次数
	LoginRate int `json:"login_rate" yaml:"login_rate"`
}

func (a *Admin) withDefaults() {
	if a.LoginRate <= 0 {
		a.LoginRate = 5
	}
}

func ProvideAdminConfig(cfg *Config) *Admin {
	return cfg.Admin
}
