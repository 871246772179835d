package service

import (
	"storefront/models"
	"storefront/pkg/pricing"
	"storefront/types"
)

// NewProductView 附带解析后的价格与库存标记
func NewProductView(p *models.Product) *types.ProductView {
	view := &types.ProductView{
		Product:       *p,
		Variations:    make([]types.VariationView, 0, len(p.Variations)),
		CurrentPrice:  pricing.UnitPrice(p, nil),
		OriginalPrice: pricing.OriginalPrice(p, nil),
		InStock:       p.HasAnyStock(),
		IsSet:         p.IsSet(),
	}
	view.DiscountPercent = pricing.DiscountPercent(view.CurrentPrice, view.OriginalPrice)
	for i := range p.Variations {
		v := &p.Variations[i]
		vv := types.VariationView{
			ProductVariation: *v,
			CurrentPrice:     pricing.UnitPrice(p, v),
			OriginalPrice:    pricing.OriginalPrice(p, v),
			InStock:          v.StockQuantity > 0,
		}
		vv.DiscountPercent = pricing.DiscountPercent(vv.CurrentPrice, vv.OriginalPrice)
		view.Variations = append(view.Variations, vv)
	}
	view.Product.Variations = nil
	return view
}
