package dao

import (
	"context"
	"storefront/models"
	"strings"

	"gorm.io/gorm"
)

type Promo struct {
	Repo[models.PromoCode]
}

func NewPromo(db *gorm.DB) *Promo {
	return &Promo{
		Repo: NewRepo[models.PromoCode](db),
	}
}

// FindByCode 优惠码统一大写存储
func (p *Promo) FindByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	return p.FindByWhere(ctx, "code = ?", strings.ToUpper(strings.TrimSpace(code)))
}

// IncrementUsage 在事务中使用，达到上限时不再累加
func (p *Promo) IncrementUsage(tx *gorm.DB, id string) (bool, error) {
	res := tx.Model(&models.PromoCode{}).
		Where("id = ? AND (usage_limit IS NULL OR usage_count < usage_limit)", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1))
	return res.RowsAffected > 0, res.Error
}
