package service

import (
	"context"
	"storefront/dao"
	"storefront/models"
	"storefront/pkg/utils"
	"storefront/types"
	"strings"
)

var _ IPaymentMethodService = (*PaymentMethodService)(nil)

type IPaymentMethodService interface {
	List(ctx context.Context) ([]*models.PaymentMethod, error)
	Create(ctx context.Context, req *types.PaymentMethodRequest) (*models.PaymentMethod, error)
	Update(ctx context.Context, id string, req *types.PaymentMethodRequest) error
	Toggle(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type PaymentMethodService struct {
	PaymentMethodDao *dao.PaymentMethod
}

func (s *PaymentMethodService) List(ctx context.Context) ([]*models.PaymentMethod, error) {
	return s.PaymentMethodDao.FindAll(ctx, "sort_order asc")
}

func (s *PaymentMethodService) Create(ctx context.Context, req *types.PaymentMethodRequest) (*models.PaymentMethod, error) {
	m := &models.PaymentMethod{
		Name:          strings.TrimSpace(req.Name),
		AccountNumber: strings.TrimSpace(req.AccountNumber),
		AccountName:   strings.TrimSpace(req.AccountName),
		QRCodeURL:     utils.StrPtr(req.QRCodeURL),
		SortOrder:     req.SortOrder,
		Active:        req.Active == nil || *req.Active,
	}
	if m.Name == "" {
		return nil, invalid("payment method name is required")
	}
	if err := s.PaymentMethodDao.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *PaymentMethodService) Update(ctx context.Context, id string, req *types.PaymentMethodRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return invalid("payment method name is required")
	}
	data := map[string]any{
		"name":           strings.TrimSpace(req.Name),
		"account_number": strings.TrimSpace(req.AccountNumber),
		"account_name":   strings.TrimSpace(req.AccountName),
		"qr_code_url":    utils.StrPtr(req.QRCodeURL),
		"sort_order":     req.SortOrder,
	}
	if req.Active != nil {
		data["active"] = *req.Active
	}
	return s.PaymentMethodDao.UpdateById(ctx, id, data)
}

func (s *PaymentMethodService) Toggle(ctx context.Context, id string, active bool) error {
	return s.PaymentMethodDao.UpdateById(ctx, id, map[string]any{"active": active})
}

func (s *PaymentMethodService) Delete(ctx context.Context, id string) error {
	return s.PaymentMethodDao.Delete(ctx, id)
}
