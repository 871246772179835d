package dao

import (
	"context"
	"storefront/models"

	"gorm.io/gorm"
)

type ShippingLocation struct {
	Repo[models.ShippingLocation]
}

func NewShippingLocation(db *gorm.DB) *ShippingLocation {
	return &ShippingLocation{
		Repo: NewRepo[models.ShippingLocation](db),
	}
}

func (s *ShippingLocation) List(ctx context.Context, onlyActive bool) ([]*models.ShippingLocation, error) {
	scopes := make([]func(*gorm.DB) *gorm.DB, 0, 1)
	if onlyActive {
		scopes = append(scopes, activeOnly("is_active"))
	}
	return s.FindAll(ctx, "sort_order asc, id asc", scopes...)
}
