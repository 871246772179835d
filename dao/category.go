package dao

import (
	"context"
	"storefront/models"

	"gorm.io/gorm"
)

type Category struct {
	Repo[models.Category]
}

func NewCategory(db *gorm.DB) *Category {
	return &Category{
		Repo: NewRepo[models.Category](db),
	}
}

func (c *Category) ListActive(ctx context.Context) ([]*models.Category, error) {
	return c.FindAll(ctx, "sort_order asc, name asc", activeOnly("active"))
}

func activeOnly(column string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", true)
	}
}
