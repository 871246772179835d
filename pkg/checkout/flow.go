// Package checkout 结算流程：details -> payment -> confirmation。
//
// 草稿在各阶段之间来回切换时保留全部已填字段，只有 Submit 前做完整校验。
package checkout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Stage string

const (
	StageDetails      Stage = "details"
	StagePayment      Stage = "payment"
	StageConfirmation Stage = "confirmation"
)

var (
	ErrIncomplete      = errors.New("required fields are missing")
	ErrWrongStage      = errors.New("checkout is not at this step")
	ErrFinished        = errors.New("checkout is already confirmed")
	ErrUnknownChannel  = errors.New("unknown contact channel")
	ErrPaymentRequired = errors.New("a payment method must be selected")
)

// IncompleteError 列出缺失字段
type IncompleteError struct {
	Fields []string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s: %s", ErrIncomplete, strings.Join(e.Fields, ", "))
}

func (e *IncompleteError) Unwrap() error {
	return ErrIncomplete
}

// Details 客户与收货信息，只校验非空
type Details struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
	Region   string `json:"region"`
}

func (d Details) Missing() []string {
	fields := []struct {
		name  string
		value string
	}{
		{"full_name", d.FullName},
		{"email", d.Email},
		{"phone", d.Phone},
		{"address", d.Address},
		{"city", d.City},
		{"state", d.State},
		{"zip_code", d.ZipCode},
		{"country", d.Country},
		{"region", d.Region},
	}
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

type Payment struct {
	PaymentMethodID string  `json:"payment_method_id"`
	ContactChannel  Channel `json:"contact_channel"`
	PromoCode       string  `json:"promo_code"`
	Notes           string  `json:"notes"`
}

func (p Payment) Missing() []string {
	var missing []string
	if strings.TrimSpace(p.PaymentMethodID) == "" {
		missing = append(missing, "payment_method_id")
	}
	if p.ContactChannel == "" {
		missing = append(missing, "contact_channel")
	}
	return missing
}

// Totals 结算金额
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	Total       decimal.Decimal `json:"total"`
}

// Flow 单个购物车的结算状态
type Flow struct {
	Stage   Stage   `json:"stage"`
	Details Details `json:"details"`
	Payment Payment `json:"payment"`
	// 确认后填充，购物车此时已清空，金额以订单为准
	OrderRef string  `json:"order_ref,omitempty"`
	Message  string  `json:"message,omitempty"`
	Totals   *Totals `json:"totals,omitempty"`
}

func New() *Flow {
	return &Flow{Stage: StageDetails}
}

// SubmitDetails 保存信息，全部非空才进入 payment
func (f *Flow) SubmitDetails(d Details) error {
	if f.Stage == StageConfirmation {
		return ErrFinished
	}
	f.Details = d
	if missing := d.Missing(); len(missing) > 0 {
		return &IncompleteError{Fields: missing}
	}
	f.Stage = StagePayment
	return nil
}

// Back 回到 details，已填内容保留
func (f *Flow) Back() error {
	switch f.Stage {
	case StageConfirmation:
		return ErrFinished
	case StagePayment:
		f.Stage = StageDetails
	}
	return nil
}

// SelectPayment 记录支付方式与联系渠道
func (f *Flow) SelectPayment(p Payment) error {
	if f.Stage != StagePayment {
		return ErrWrongStage
	}
	if p.ContactChannel != "" && !p.ContactChannel.Valid() {
		return ErrUnknownChannel
	}
	f.Payment = p
	return nil
}

// Ready 提交订单前的最终校验
func (f *Flow) Ready() error {
	if f.Stage == StageConfirmation {
		return ErrFinished
	}
	if f.Stage != StagePayment {
		return ErrWrongStage
	}
	if missing := f.Details.Missing(); len(missing) > 0 {
		return &IncompleteError{Fields: missing}
	}
	if missing := f.Payment.Missing(); len(missing) > 0 {
		return &IncompleteError{Fields: missing}
	}
	if !f.Payment.ContactChannel.Valid() {
		return ErrUnknownChannel
	}
	return nil
}

// Confirm 订单已落库，进入终态
func (f *Flow) Confirm(orderRef, message string, totals Totals) error {
	if err := f.Ready(); err != nil {
		return err
	}
	f.Stage = StageConfirmation
	f.OrderRef = orderRef
	f.Message = message
	f.Totals = &totals
	return nil
}
