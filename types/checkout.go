package types

import (
	"storefront/pkg/checkout"
)

// DetailsRequest 客户与收货信息，非空校验在 checkout.Flow 中完成
type DetailsRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
	Region   string `json:"region"` // 运费区域标签
}

func (r DetailsRequest) ToDetails() checkout.Details {
	return checkout.Details(r)
}

type PaymentRequest struct {
	PaymentMethodID string `json:"payment_method_id"`
	ContactChannel  string `json:"contact_channel"` // messenger | instagram | viber
	PromoCode       string `json:"promo_code"`
	Notes           string `json:"notes"`
}

func (r PaymentRequest) ToPayment() checkout.Payment {
	return checkout.Payment{
		PaymentMethodID: r.PaymentMethodID,
		ContactChannel:  checkout.Channel(r.ContactChannel),
		PromoCode:       r.PromoCode,
		Notes:           r.Notes,
	}
}

type Totals = checkout.Totals

// CheckoutView 当前结算状态
type CheckoutView struct {
	Stage   checkout.Stage   `json:"stage"`
	Details checkout.Details `json:"details"`
	Payment checkout.Payment `json:"payment"`
	Totals  Totals           `json:"totals"`
	// 确认后返回
	OrderRef string            `json:"order_ref,omitempty"`
	Message  string            `json:"message,omitempty"`
	Links    map[string]string `json:"links,omitempty"`
}

// SubmitResponse 下单成功
type SubmitResponse struct {
	OrderRef string            `json:"order_ref"`
	Totals   Totals            `json:"totals"`
	Message  string            `json:"message"` // 复制到聊天窗口的订单摘要
	Links    map[string]string `json:"links"`   // 各渠道深链
}
