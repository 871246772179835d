package handler

import (
	"storefront/pkg/context"
	"storefront/pkg/response"
	"storefront/service"
	"storefront/types"

	"github.com/gin-gonic/gin"
)

// Storefront 前台只读接口
type Storefront struct {
	CatalogService  service.ICatalogService
	ShippingService service.IShippingService
}

func (s *Storefront) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1")
	g.GET("/products", context.Wrap(s.ListProducts))
	g.GET("/products/:id", context.Wrap(s.GetProduct))
	g.GET("/categories", context.Wrap(s.ListCategories))
	g.GET("/payment-methods", context.Wrap(s.ListPaymentMethods))
	g.GET("/shipping-locations", context.Wrap(s.ListShippingLocations))
	g.GET("/faqs", context.Wrap(s.ListFAQs))
	g.GET("/coa", context.Wrap(s.ListCOA))
}

// ListProducts 支持关键字、分类与排序
func (s *Storefront) ListProducts(c *gin.Context) error {
	var req types.ProductListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return bindError(err)
	}
	products, err := s.CatalogService.ListProducts(c.Request.Context(), &req)
	if err != nil {
		return bizError(err)
	}
	response.Success(c, products)
	return nil
}

func (s *Storefront) GetProduct(c *gin.Context) error {
	product, err := s.CatalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		return bizError(err)
	}
	response.Success(c, product)
	return nil
}

func (s *Storefront) ListCategories(c *gin.Context) error {
	items, err := s.CatalogService.ListCategories(c.Request.Context())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, items)
	return nil
}

func (s *Storefront) ListPaymentMethods(c *gin.Context) error {
	items, err := s.CatalogService.ListPaymentMethods(c.Request.Context())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, items)
	return nil
}

func (s *Storefront) ListShippingLocations(c *gin.Context) error {
	items, err := s.ShippingService.ListActive(c.Request.Context())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, items)
	return nil
}

func (s *Storefront) ListFAQs(c *gin.Context) error {
	groups, err := s.CatalogService.ListFAQs(c.Request.Context())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, groups)
	return nil
}

func (s *Storefront) ListCOA(c *gin.Context) error {
	items, err := s.CatalogService.ListCOA(c.Request.Context())
	if err != nil {
		return bizError(err)
	}
	response.Success(c, items)
	return nil
}
