package dao

import (
	"context"
	"storefront/models"
	"strings"

	"gorm.io/gorm"
)

type Product struct {
	Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{
		Repo: NewRepo[models.Product](db),
	}
}

// ProductFilter 前台列表筛选
type ProductFilter struct {
	Query         string
	Category      string
	Sort          string // name | price | purity
	OnlyAvailable bool
}

func withVariations(db *gorm.DB) *gorm.DB {
	return db.Preload("Variations", func(db *gorm.DB) *gorm.DB {
		return db.Order("quantity_mg asc, price asc")
	})
}

func (p *Product) List(ctx context.Context, f ProductFilter) ([]*models.Product, error) {
	items := make([]*models.Product, 0)
	db := p.Db.WithContext(ctx).Scopes(withVariations)
	if f.OnlyAvailable {
		db = db.Where("available = ?", true)
	}
	if f.Category != "" && f.Category != "all" {
		db = db.Where("category = ?", f.Category)
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		like := "%" + q + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	switch f.Sort {
	case "price":
		db = db.Order("base_price asc")
	case "purity":
		db = db.Order("purity_percentage desc")
	default:
		db = db.Order("name asc")
	}
	if err := db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (p *Product) FindWithVariations(ctx context.Context, id string) (*models.Product, error) {
	var item models.Product
	err := p.Db.WithContext(ctx).Scopes(withVariations).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteProduct 连同规格一起删除
func (p *Product) DeleteProduct(ctx context.Context, id string) error {
	return p.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductVariation{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Product{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (p *Product) UpdateStock(ctx context.Context, id string, stock int) error {
	return p.UpdateById(ctx, id, map[string]any{"stock_quantity": stock})
}
