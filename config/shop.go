package config

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShippingRegion struct {
	ID   string          `json:"id" yaml:"id"`
	Name string          `json:"name" yaml:"name"`
	Fee  decimal.Decimal `json:"fee" yaml:"fee"`
}

// Messaging 客户手动发送订单信息的渠道账号
type Messaging struct {
	Messenger string `json:"messenger" yaml:"messenger"`
	Instagram string `json:"instagram" yaml:"instagram"`
	Viber     string `json:"viber" yaml:"viber"`
}

type Shop struct {
	Name              string           `json:"name" yaml:"name"`
	ShippingRegions   []ShippingRegion `json:"shipping_regions" yaml:"shipping_regions"`
	Messaging         Messaging        `json:"messaging" yaml:"messaging"`
	CartTTLHours      int              `json:"cart_ttl_hours" yaml:"cart_ttl_hours"`
	TrackingRate      int              `json:"tracking_rate" yaml:"tracking_rate"`
	LowStockThreshold int              `json:"low_stock_threshold" yaml:"low_stock_threshold"`
}

func DefaultShippingRegions() []ShippingRegion {
	return []ShippingRegion{
		{ID: "NCR", Name: "Metro Manila (NCR)", Fee: decimal.NewFromInt(160)},
		{ID: "LUZON", Name: "Luzon (Provincial)", Fee: decimal.NewFromInt(165)},
		{ID: "VISAYAS_MINDANAO", Name: "Visayas & Mindanao", Fee: decimal.NewFromInt(190)},
	}
}

func (s *Shop) withDefaults() {
	if s.Name == "" {
		s.Name = "My Peptide Journey"
	}
	if len(s.ShippingRegions) == 0 {
		s.ShippingRegions = DefaultShippingRegions()
	}
	if s.CartTTLHours <= 0 {
		s.CartTTLHours = 7 * 24
	}
	if s.TrackingRate <= 0 {
		s.TrackingRate = 30
	}
	if s.LowStockThreshold <= 0 {
		s.LowStockThreshold = 5
	}
}

func (s *Shop) CartTTL() time.Duration {
	return time.Duration(s.CartTTLHours) * time.Hour
}

func ProvideShopConfig(cfg *Config) *Shop {
	return cfg.Shop
}
