package handler

import (
	"errors"
	"net/http"
	"storefront/pkg/cart"
	"storefront/pkg/checkout"
	"storefront/pkg/database"
	"storefront/pkg/pricing"
	"storefront/pkg/response"
	"storefront/service"

	"gorm.io/gorm"
)

// 客户端可修正的错误
var badRequestErrors = []error{
	cart.ErrIndexOutOfRange,
	cart.ErrInvalidQuantity,
	checkout.ErrIncomplete,
	checkout.ErrWrongStage,
	checkout.ErrFinished,
	checkout.ErrUnknownChannel,
	checkout.ErrPaymentRequired,
	service.ErrProductUnavailable,
	service.ErrVariationRequired,
	service.ErrVariationMismatch,
	service.ErrEmptyCart,
	service.ErrPaymentMethod,
	service.ErrUnknownShippingZone,
	service.ErrInvalidImage,
	service.ErrImageNotManaged,
	pricing.ErrPromoInactive,
	pricing.ErrPromoExpired,
	pricing.ErrPromoExhausted,
	pricing.ErrPromoMinPurchase,
}

var notFoundErrors = []error{
	gorm.ErrRecordNotFound,
	service.ErrOrderNotFound,
	service.ErrPromoNotFound,
}

// bizError 把 service 错误映射为带状态码的 BizError
func bizError(err error) error {
	if err == nil {
		return nil
	}
	var be *response.BizError
	if errors.As(err, &be) {
		return be
	}

	var validation *service.ValidationError
	if errors.As(err, &validation) {
		return response.BadRequest(validation.Msg)
	}
	var stock *service.StockLimitError
	if errors.As(err, &stock) {
		return response.Conflict(stock.Error())
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return response.BadRequest(err.Error())
		}
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return response.NotFound(err.Error())
		}
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrSessionExpired):
		return response.Unauthorized(err.Error())
	case errors.Is(err, service.ErrUploadTimeout):
		return response.NewError(http.StatusGatewayTimeout, err.Error())
	case errors.Is(err, service.ErrAdminNotConfigured):
		return response.NewError(http.StatusServiceUnavailable, err.Error()).
			WithHint("Set ADMIN_PASSWORD_HASH to a bcrypt hash of the admin password.")
	case database.IsDuplicate(err):
		return response.Conflict("a record with the same key already exists")
	}

	var submit *service.SubmitError
	if errors.As(err, &submit) {
		return response.NewError(http.StatusInternalServerError, submit.Error()).WithHint(submit.Hint)
	}
	var hinted *service.HintError
	if errors.As(err, &hinted) {
		return response.NewError(http.StatusInternalServerError, hinted.Error()).WithHint(hinted.Hint)
	}
	return response.NewError(http.StatusInternalServerError, err.Error()).WithHint(database.Remediation(err))
}

// bindError 请求参数格式错误
func bindError(err error) error {
	return response.BadRequest("invalid request: " + err.Error())
}
