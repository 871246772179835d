package service

import (
	"context"
	"fmt"
	"storefront/config"
	"storefront/dao"
	"storefront/models"
	"storefront/pkg/log"
	"storefront/pkg/shipping"
	"storefront/types"
	"strings"

	"go.uber.org/zap"
)

var _ IShippingService = (*ShippingService)(nil)

type IShippingService interface {
	// Table 启用中的运费分区；表为空时退回配置中的默认值
	Table(ctx context.Context) (shipping.Table, error)
	// Fee 未选择区域为 0，未知区域返回 ErrUnknownShippingZone
	Fee(ctx context.Context, region string) (*models.ShippingLocation, error)
	ListActive(ctx context.Context) ([]*models.ShippingLocation, error)
	List(ctx context.Context) ([]*models.ShippingLocation, error)
	Create(ctx context.Context, req *types.ShippingLocationRequest) (*models.ShippingLocation, error)
	Update(ctx context.Context, id string, req *types.ShippingLocationRequest) error
	Toggle(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type ShippingService struct {
	ShippingDao *dao.ShippingLocation
	Shop        *config.Shop
}

func (s *ShippingService) locations(ctx context.Context) ([]*models.ShippingLocation, error) {
	items, err := s.ShippingDao.List(ctx, true)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		return items, nil
	}
	log.L.Warn("no active shipping locations, using configured defaults")
	items = make([]*models.ShippingLocation, 0, len(s.Shop.ShippingRegions))
	for i, r := range s.Shop.ShippingRegions {
		items = append(items, &models.ShippingLocation{
			ID:        shipping.Normalize(r.ID),
			Name:      r.Name,
			Fee:       r.Fee,
			IsActive:  true,
			SortOrder: i,
		})
	}
	return items, nil
}

func (s *ShippingService) Table(ctx context.Context) (shipping.Table, error) {
	items, err := s.locations(ctx)
	if err != nil {
		return nil, err
	}
	t := make(shipping.Table, len(items))
	for _, l := range items {
		t[l.ID] = l.Fee
	}
	return t, nil
}

func (s *ShippingService) Fee(ctx context.Context, region string) (*models.ShippingLocation, error) {
	items, err := s.locations(ctx)
	if err != nil {
		return nil, err
	}
	t := make(shipping.Table, len(items))
	byID := make(map[string]*models.ShippingLocation, len(items))
	for _, l := range items {
		t[l.ID] = l.Fee
		byID[l.ID] = l
	}
	fee, err := t.Fee(region)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShippingZone, region)
	}
	if loc, ok := byID[shipping.Normalize(region)]; ok {
		return loc, nil
	}
	return &models.ShippingLocation{Fee: fee}, nil
}

func (s *ShippingService) ListActive(ctx context.Context) ([]*models.ShippingLocation, error) {
	return s.locations(ctx)
}

func (s *ShippingService) List(ctx context.Context) ([]*models.ShippingLocation, error) {
	return s.ShippingDao.List(ctx, false)
}

func (s *ShippingService) Create(ctx context.Context, req *types.ShippingLocationRequest) (*models.ShippingLocation, error) {
	id := shipping.Normalize(req.ID)
	if id == "" || strings.TrimSpace(req.Name) == "" {
		return nil, invalid("id and name are required")
	}
	if req.Fee.IsNegative() {
		return nil, invalid("fee must not be negative")
	}
	loc := &models.ShippingLocation{
		ID:        id,
		Name:      strings.TrimSpace(req.Name),
		Fee:       req.Fee,
		IsActive:  req.IsActive == nil || *req.IsActive,
		SortOrder: req.SortOrder,
	}
	if err := s.ShippingDao.Create(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *ShippingService) Update(ctx context.Context, id string, req *types.ShippingLocationRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return invalid("name is required")
	}
	if req.Fee.IsNegative() {
		return invalid("fee must not be negative")
	}
	data := map[string]any{
		"name":       strings.TrimSpace(req.Name),
		"fee":        req.Fee,
		"sort_order": req.SortOrder,
	}
	if req.IsActive != nil {
		data["is_active"] = *req.IsActive
	}
	return s.ShippingDao.UpdateById(ctx, shipping.Normalize(id), data)
}

func (s *ShippingService) Toggle(ctx context.Context, id string, active bool) error {
	return s.ShippingDao.UpdateById(ctx, shipping.Normalize(id), map[string]any{"is_active": active})
}

func (s *ShippingService) Delete(ctx context.Context, id string) error {
	if err := s.ShippingDao.Delete(ctx, shipping.Normalize(id)); err != nil {
		return err
	}
	log.L.Info("shipping location deleted", zap.String("id", id))
	return nil
}
