package service

import (
	"context"
	"storefront/dao"
	"storefront/models"
	"storefront/types"
	"strings"
)

var _ IFAQService = (*FAQService)(nil)

type IFAQService interface {
	List(ctx context.Context) ([]*models.FAQItem, error)
	Create(ctx context.Context, req *types.FAQRequest) (*models.FAQItem, error)
	Update(ctx context.Context, id string, req *types.FAQRequest) error
	Toggle(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type FAQService struct {
	FAQDao *dao.FAQ
}

func validateFAQ(req *types.FAQRequest) error {
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		return invalid("question and answer are required")
	}
	if !models.IsFAQCategory(req.Category) {
		return invalid("category must be one of %s", strings.Join(models.FAQCategories, ", "))
	}
	return nil
}

func (s *FAQService) List(ctx context.Context) ([]*models.FAQItem, error) {
	return s.FAQDao.List(ctx, false)
}

func (s *FAQService) Create(ctx context.Context, req *types.FAQRequest) (*models.FAQItem, error) {
	if err := validateFAQ(req); err != nil {
		return nil, err
	}
	item := &models.FAQItem{
		Question:   strings.TrimSpace(req.Question),
		Answer:     strings.TrimSpace(req.Answer),
		Category:   req.Category,
		OrderIndex: req.OrderIndex,
		IsActive:   req.IsActive == nil || *req.IsActive,
	}
	if err := s.FAQDao.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *FAQService) Update(ctx context.Context, id string, req *types.FAQRequest) error {
	if err := validateFAQ(req); err != nil {
		return err
	}
	data := map[string]any{
		"question":    strings.TrimSpace(req.Question),
		"answer":      strings.TrimSpace(req.Answer),
		"category":    req.Category,
		"order_index": req.OrderIndex,
	}
	if req.IsActive != nil {
		data["is_active"] = *req.IsActive
	}
	return s.FAQDao.UpdateById(ctx, id, data)
}

func (s *FAQService) Toggle(ctx context.Context, id string, active bool) error {
	return s.FAQDao.UpdateById(ctx, id, map[string]any{"is_active": active})
}

func (s *FAQService) Delete(ctx context.Context, id string) error {
	return s.FAQDao.Delete(ctx, id)
}
