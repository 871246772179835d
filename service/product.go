package service

import (
	"context"
	"fmt"
	"storefront/dao"
	"storefront/models"
	"storefront/pkg/log"
	"storefront/pkg/pricing"
	"storefront/pkg/utils"
	"storefront/types"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ IProductService = (*ProductService)(nil)

type IProductService interface {
	List(ctx context.Context) ([]*types.ProductView, error)
	Get(ctx context.Context, id string) (*types.ProductView, error)
	// Create 同时创建规格，整体在一个事务中
	Create(ctx context.Context, req *types.ProductRequest) (*types.ProductView, error)
	Update(ctx context.Context, id string, req *types.ProductRequest) (*types.ProductView, error)
	Delete(ctx context.Context, id string) error
	// BulkDelete 逐个删除，统计成功与失败，不回滚
	BulkDelete(ctx context.Context, ids []string) *types.BulkDeleteResponse
	UpdateStock(ctx context.Context, id string, stock int) error

	CreateVariation(ctx context.Context, productID string, req *types.VariationRequest) (*models.ProductVariation, error)
	UpdateVariation(ctx context.Context, productID, id string, req *types.VariationRequest) error
	DeleteVariation(ctx context.Context, productID, id string) error
	UpdateVariationStock(ctx context.Context, productID, id string, stock int) error
}

type ProductService struct {
	ProductDao   *dao.Product
	VariationDao *dao.Variation
}

func (s *ProductService) List(ctx context.Context) ([]*types.ProductView, error) {
	products, err := s.ProductDao.List(ctx, dao.ProductFilter{})
	if err != nil {
		return nil, err
	}
	views := make([]*types.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p))
	}
	return views, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*types.ProductView, error) {
	p, err := s.ProductDao.FindWithVariations(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewProductView(p), nil
}

func validateProduct(req *types.ProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return invalid("product name is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return invalid("product description is required")
	}
	if err := pricing.ValidateDiscount(req.BasePrice, req.DiscountPrice, req.DiscountActive); err != nil {
		return invalid("%s", err.Error())
	}
	if req.StockQuantity < 0 {
		return invalid("stock quantity must not be negative")
	}
	for i := range req.Variations {
		if err := validateVariation(&req.Variations[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateVariation(req *types.VariationRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return invalid("variation name is required")
	}
	if req.QuantityMg <= 0 {
		return invalid("variation quantity must be greater than zero")
	}
	if req.StockQuantity < 0 {
		return invalid("stock quantity must not be negative")
	}
	if err := pricing.ValidateDiscount(req.Price, req.DiscountPrice, req.DiscountActive); err != nil {
		return invalid("variation %s: %s", req.Name, err.Error())
	}
	return nil
}

// productColumns 请求转为列，空字符串的可选字段写 NULL
func productColumns(req *types.ProductRequest) map[string]any {
	return map[string]any{
		"name":               strings.TrimSpace(req.Name),
		"description":        strings.TrimSpace(req.Description),
		"category":           req.Category,
		"base_price":         req.BasePrice,
		"discount_price":     req.DiscountPrice,
		"discount_active":    req.DiscountActive,
		"purity_percentage":  req.PurityPercentage,
		"molecular_weight":   utils.StrPtr(req.MolecularWeight),
		"cas_number":         utils.StrPtr(req.CasNumber),
		"sequence":           utils.StrPtr(req.Sequence),
		"storage_conditions": req.StorageConditions,
		"stock_quantity":     req.StockQuantity,
		"available":          isAvailable(req),
		"featured":           req.Featured,
		"inclusions":         cleanInclusions(req.Inclusions),
		"image_url":          utils.StrPtr(req.ImageURL),
		"safety_sheet_url":   utils.StrPtr(req.SafetySheetURL),
	}
}

// isAvailable 未传时默认上架
func isAvailable(req *types.ProductRequest) bool {
	return req.Available == nil || *req.Available
}

func cleanInclusions(items []string) datatypes.JSONSlice[string] {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return datatypes.NewJSONSlice(out)
}

func newVariation(productID string, req *types.VariationRequest) *models.ProductVariation {
	return &models.ProductVariation{
		ProductID:      productID,
		Name:           strings.TrimSpace(req.Name),
		QuantityMg:     req.QuantityMg,
		Price:          req.Price,
		DiscountPrice:  req.DiscountPrice,
		DiscountActive: req.DiscountActive,
		StockQuantity:  req.StockQuantity,
	}
}

func (s *ProductService) Create(ctx context.Context, req *types.ProductRequest) (*types.ProductView, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}
	p := &models.Product{
		Name:              strings.TrimSpace(req.Name),
		Description:       strings.TrimSpace(req.Description),
		Category:          req.Category,
		BasePrice:         req.BasePrice,
		DiscountPrice:     req.DiscountPrice,
		DiscountActive:    req.DiscountActive,
		PurityPercentage:  req.PurityPercentage,
		MolecularWeight:   utils.StrPtr(req.MolecularWeight),
		CasNumber:         utils.StrPtr(req.CasNumber),
		Sequence:          utils.StrPtr(req.Sequence),
		StorageConditions: req.StorageConditions,
		StockQuantity:     req.StockQuantity,
		Available:         isAvailable(req),
		Featured:          req.Featured,
		Inclusions:        cleanInclusions(req.Inclusions),
		ImageURL:          utils.StrPtr(req.ImageURL),
		SafetySheetURL:    utils.StrPtr(req.SafetySheetURL),
	}
	err := s.ProductDao.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Variations").Create(p).Error; err != nil {
			return err
		}
		for i := range req.Variations {
			v := newVariation(p.ID, &req.Variations[i])
			if err := tx.Create(v).Error; err != nil {
				return err
			}
			p.Variations = append(p.Variations, *v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	log.L.Info("product created", zap.String("id", p.ID), zap.String("name", p.Name))
	return NewProductView(p), nil
}

func (s *ProductService) Update(ctx context.Context, id string, req *types.ProductRequest) (*types.ProductView, error) {
	req.Variations = nil
	if err := validateProduct(req); err != nil {
		return nil, err
	}
	if err := s.ProductDao.UpdateById(ctx, id, productColumns(req)); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.ProductDao.DeleteProduct(ctx, id); err != nil {
		return err
	}
	log.L.Info("product deleted", zap.String("id", id))
	return nil
}

func (s *ProductService) BulkDelete(ctx context.Context, ids []string) *types.BulkDeleteResponse {
	resp := &types.BulkDeleteResponse{}
	for _, id := range ids {
		if err := s.ProductDao.DeleteProduct(ctx, id); err != nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", id, err))
			log.L.Warn("bulk delete product failed", zap.String("id", id), zap.Error(err))
			continue
		}
		resp.Deleted++
	}
	return resp
}

func (s *ProductService) UpdateStock(ctx context.Context, id string, stock int) error {
	if stock < 0 {
		return invalid("stock quantity must not be negative")
	}
	return s.ProductDao.UpdateStock(ctx, id, stock)
}

func (s *ProductService) CreateVariation(ctx context.Context, productID string, req *types.VariationRequest) (*models.ProductVariation, error) {
	if err := validateVariation(req); err != nil {
		return nil, err
	}
	if _, err := s.ProductDao.FindById(ctx, productID); err != nil {
		return nil, err
	}
	v := newVariation(productID, req)
	if err := s.VariationDao.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *ProductService) UpdateVariation(ctx context.Context, productID, id string, req *types.VariationRequest) error {
	if err := validateVariation(req); err != nil {
		return err
	}
	if _, err := s.VariationDao.FindForProduct(ctx, productID, id); err != nil {
		return err
	}
	return s.VariationDao.UpdateById(ctx, id, map[string]any{
		"name":            strings.TrimSpace(req.Name),
		"quantity_mg":     req.QuantityMg,
		"price":           req.Price,
		"discount_price":  req.DiscountPrice,
		"discount_active": req.DiscountActive,
		"stock_quantity":  req.StockQuantity,
	})
}

func (s *ProductService) DeleteVariation(ctx context.Context, productID, id string) error {
	if _, err := s.VariationDao.FindForProduct(ctx, productID, id); err != nil {
		return err
	}
	return s.VariationDao.Delete(ctx, id)
}

func (s *ProductService) UpdateVariationStock(ctx context.Context, productID, id string, stock int) error {
	if stock < 0 {
		return invalid("stock quantity must not be negative")
	}
	if _, err := s.VariationDao.FindForProduct(ctx, productID, id); err != nil {
		return err
	}
	return s.VariationDao.UpdateStock(ctx, id, stock)
}
