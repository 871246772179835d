package service

import (
	"errors"
	"fmt"
)

var (
	ErrStockLimit          = errors.New("stock limit exceeded")
	ErrProductUnavailable  = errors.New("product is not available")
	ErrVariationRequired   = errors.New("please choose a variation")
	ErrVariationMismatch   = errors.New("variation does not belong to this product")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrPaymentMethod       = errors.New("payment method is not available")
	ErrInvalidCredentials  = errors.New("invalid password")
	ErrSessionExpired      = errors.New("admin session expired")
	ErrOrderNotFound       = errors.New("order not found")
	ErrUploadTimeout       = errors.New("upload timed out after 30 seconds, please try again")
	ErrBucketMissing       = errors.New("image bucket does not exist")
	ErrStoragePermission   = errors.New("image storage rejected the request")
	ErrInvalidImage        = errors.New("invalid image")
	ErrImageNotManaged     = errors.New("image url does not belong to the configured bucket")
	ErrAdminNotConfigured  = errors.New("admin password is not configured")
	ErrPromoNotFound       = errors.New("promo code not found")
	ErrUnknownShippingZone = errors.New("shipping region is not available")
)

// StockLimitError 超出库存，Available 为当前可购数量
type StockLimitError struct {
	Available int
}

func (e *StockLimitError) Error() string {
	return fmt.Sprintf("Only %d item(s) available in stock.", e.Available)
}

func (e *StockLimitError) Unwrap() error {
	return ErrStockLimit
}

// ValidationError 写入前的字段校验失败
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// SubmitError 订单写库失败，Hint 为已知故障的处理建议
type SubmitError struct {
	Err  error
	Hint string
}

func (e *SubmitError) Error() string {
	return "failed to submit order: " + e.Err.Error()
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// HintError 后端故障附带给管理员的处理建议
type HintError struct {
	Err  error
	Hint string
}

func (e *HintError) Error() string {
	return e.Err.Error()
}

func (e *HintError) Unwrap() error {
	return e.Err
}
