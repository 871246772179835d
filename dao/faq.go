package dao

import (
	"context"
	"storefront/models"

	"gorm.io/gorm"
)

type FAQ struct {
	Repo[models.FAQItem]
}

func NewFAQ(db *gorm.DB) *FAQ {
	return &FAQ{
		Repo: NewRepo[models.FAQItem](db),
	}
}

func (f *FAQ) List(ctx context.Context, onlyActive bool) ([]*models.FAQItem, error) {
	scopes := make([]func(*gorm.DB) *gorm.DB, 0, 1)
	if onlyActive {
		scopes = append(scopes, activeOnly("is_active"))
	}
	return f.FindAll(ctx, "category asc, order_index asc", scopes...)
}
