package dao

import (
	"context"
	"storefront/models"

	"gorm.io/gorm"
)

type Variation struct {
	Repo[models.ProductVariation]
}

func NewVariation(db *gorm.DB) *Variation {
	return &Variation{
		Repo: NewRepo[models.ProductVariation](db),
	}
}

func (v *Variation) ListByProduct(ctx context.Context, productID string) ([]*models.ProductVariation, error) {
	return v.FindAll(ctx, "quantity_mg asc, price asc", func(db *gorm.DB) *gorm.DB {
		return db.Where("product_id = ?", productID)
	})
}

// FindForProduct 规格必须属于该商品
func (v *Variation) FindForProduct(ctx context.Context, productID, id string) (*models.ProductVariation, error) {
	return v.FindByWhere(ctx, "id = ? AND product_id = ?", id, productID)
}

func (v *Variation) UpdateStock(ctx context.Context, id string, stock int) error {
	return v.UpdateById(ctx, id, map[string]any{"stock_quantity": stock})
}
