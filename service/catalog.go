package service

import (
	"context"
	"errors"
	"storefront/dao"
	"storefront/models"
	"storefront/types"

	"gorm.io/gorm"
)

var _ ICatalogService = (*CatalogService)(nil)

type ICatalogService interface {
	// ListProducts 前台商品列表，只返回上架商品
	ListProducts(ctx context.Context, req *types.ProductListRequest) ([]*types.ProductView, error)
	GetProduct(ctx context.Context, id string) (*types.ProductView, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	ListPaymentMethods(ctx context.Context) ([]*models.PaymentMethod, error)
	ListFAQs(ctx context.Context) ([]*types.FAQGroup, error)
	ListCOA(ctx context.Context) ([]*models.COAReport, error)
}

type CatalogService struct {
	ProductDao       *dao.Product
	CategoryDao      *dao.Category
	PaymentMethodDao *dao.PaymentMethod
	FAQDao           *dao.FAQ
	COADao           *dao.COAReport
}

func (s *CatalogService) ListProducts(ctx context.Context, req *types.ProductListRequest) ([]*types.ProductView, error) {
	products, err := s.ProductDao.List(ctx, dao.ProductFilter{
		Query:         req.Query,
		Category:      req.Category,
		Sort:          req.Sort,
		OnlyAvailable: true,
	})
	if err != nil {
		return nil, err
	}
	views := make([]*types.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p))
	}
	return views, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*types.ProductView, error) {
	p, err := s.ProductDao.FindWithVariations(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Available {
		return nil, gorm.ErrRecordNotFound
	}
	return NewProductView(p), nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.CategoryDao.ListActive(ctx)
}

func (s *CatalogService) ListPaymentMethods(ctx context.Context) ([]*models.PaymentMethod, error) {
	return s.PaymentMethodDao.ListActive(ctx)
}

// ListFAQs 按固定分类顺序分组，空分类不返回
func (s *CatalogService) ListFAQs(ctx context.Context) ([]*types.FAQGroup, error) {
	items, err := s.FAQDao.List(ctx, true)
	if err != nil {
		return nil, err
	}
	byCategory := make(map[string][]types.FAQEntity)
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], types.FAQEntity{
			ID:       item.ID,
			Question: item.Question,
			Answer:   item.Answer,
		})
	}
	groups := make([]*types.FAQGroup, 0, len(models.FAQCategories))
	for _, c := range models.FAQCategories {
		if entries, ok := byCategory[c]; ok {
			groups = append(groups, &types.FAQGroup{Category: c, Items: entries})
		}
	}
	return groups, nil
}

func (s *CatalogService) ListCOA(ctx context.Context) ([]*models.COAReport, error) {
	return s.COADao.List(ctx)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
