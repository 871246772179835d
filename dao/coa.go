package dao

import (
	"context"
	"storefront/models"

	"gorm.io/gorm"
)

type COAReport struct {
	Repo[models.COAReport]
}

func NewCOAReport(db *gorm.DB) *COAReport {
	return &COAReport{
		Repo: NewRepo[models.COAReport](db),
	}
}

// List 精选在前，按检测日期倒序
func (c *COAReport) List(ctx context.Context) ([]*models.COAReport, error) {
	return c.FindAll(ctx, "featured desc, test_date desc")
}
