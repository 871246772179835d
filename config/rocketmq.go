package config

type RocketMQConfig struct {
	NameServer []string `yaml:"nameserver"`

	Producer Producer `yaml:"producer"`

	Consumer Consumer `yaml:"consumer"`

	// OrderTopic 下单事件
	OrderTopic string `yaml:"order_topic"`
	// ConfirmDelayLevel 延迟等级，17 = 1h
	ConfirmDelayLevel int `yaml:"confirm_delay_level"`
}

type Producer struct {
	Group string `yaml:"group"`
	Retry int    `yaml:"retry"`
}

type Consumer struct {
	Group string `yaml:"group"`
}

func (r *RocketMQConfig) withDefaults() {
	if r.OrderTopic == "" {
		r.OrderTopic = "order_placed"
	}
	if r.ConfirmDelayLevel <= 0 {
		r.ConfirmDelayLevel = 17
	}
	if r.Producer.Group == "" {
		r.Producer.Group = "storefront_producer"
	}
	if r.Producer.Retry <= 0 {
		r.Producer.Retry = 2
	}
	if r.Consumer.Group == "" {
		r.Consumer.Group = "storefront_escalation"
	}
}

// Enabled 未配置 nameserver 时不投递事件
func (r *RocketMQConfig) Enabled() bool {
	return len(r.NameServer) > 0
}

func ProvideRocketMQConfig(cfg *Config) *RocketMQConfig {
	return cfg.RocketMQ
}
