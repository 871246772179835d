package database

import (
	"context"
	"fmt"
	"storefront/config"
	"storefront/models"
	"storefront/pkg/log"
	"storefront/pkg/shipping"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate 建表并写入默认运费分区，可重复执行
func Migrate(ctx context.Context, db *gorm.DB, shop *config.Shop) error {
	if err := db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	regions := shop.ShippingRegions
	if len(regions) == 0 {
		regions = config.DefaultShippingRegions()
	}
	rows := make([]*models.ShippingLocation, 0, len(regions))
	for i, r := range regions {
		rows = append(rows, &models.ShippingLocation{
			ID:        shipping.Normalize(r.ID),
			Name:      r.Name,
			Fee:       r.Fee,
			IsActive:  true,
			SortOrder: i,
		})
	}
	// 已存在的分区保留管理员修改
	if err := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return fmt.Errorf("seed shipping locations: %w", err)
	}
	log.L.Info("migrate finished", zap.Int("tables", len(models.All())), zap.Int("shipping_regions", len(rows)))
	return nil
}
