package service

import (
	"context"
	"storefront/dao"
	"storefront/models"
	"storefront/types"
	"strings"
)

var _ ICOAService = (*COAService)(nil)

type ICOAService interface {
	Create(ctx context.Context, req *types.COARequest) (*models.COAReport, error)
	Update(ctx context.Context, id string, req *types.COARequest) error
	Delete(ctx context.Context, id string) error
}

type COAService struct {
	COADao *dao.COAReport
}

func (s *COAService) Create(ctx context.Context, req *types.COARequest) (*models.COAReport, error) {
	r := &models.COAReport{
		ProductName:      strings.TrimSpace(req.ProductName),
		Batch:            req.Batch,
		TestDate:         req.TestDate,
		PurityPercentage: req.PurityPercentage,
		Quantity:         req.Quantity,
		TaskNumber:       req.TaskNumber,
		VerificationKey:  req.VerificationKey,
		ImageURL:         req.ImageURL,
		Featured:         req.Featured,
		Laboratory:       req.Laboratory,
	}
	if r.ProductName == "" || r.ImageURL == "" {
		return nil, invalid("product name and image are required")
	}
	if err := s.COADao.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *COAService) Update(ctx context.Context, id string, req *types.COARequest) error {
	if strings.TrimSpace(req.ProductName) == "" || req.ImageURL == "" {
		return invalid("product name and image are required")
	}
	return s.COADao.UpdateById(ctx, id, map[string]any{
		"product_name":      strings.TrimSpace(req.ProductName),
		"batch":             req.Batch,
		"test_date":         req.TestDate,
		"purity_percentage": req.PurityPercentage,
		"quantity":          req.Quantity,
		"task_number":       req.TaskNumber,
		"verification_key":  req.VerificationKey,
		"image_url":         req.ImageURL,
		"featured":          req.Featured,
		"laboratory":        req.Laboratory,
	})
}

func (s *COAService) Delete(ctx context.Context, id string) error {
	return s.COADao.Delete(ctx, id)
}
