package dao

import (
	"context"
	"storefront/models"

	"gorm.io/gorm"
)

type PaymentMethod struct {
	Repo[models.PaymentMethod]
}

func NewPaymentMethod(db *gorm.DB) *PaymentMethod {
	return &PaymentMethod{
		Repo: NewRepo[models.PaymentMethod](db),
	}
}

func (p *PaymentMethod) ListActive(ctx context.Context) ([]*models.PaymentMethod, error) {
	return p.FindAll(ctx, "sort_order asc", activeOnly("active"))
}
