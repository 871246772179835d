package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 单表通用操作
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Create(ctx context.Context, data *T) error {
	return r.Db.WithContext(ctx).Create(data).Error
}

// FindById 字符串或整型主键均可
func (r *Repo[T]) FindById(ctx context.Context, id any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) FindAll(ctx context.Context, order string, scopes ...func(*gorm.DB) *gorm.DB) ([]*T, error) {
	items := make([]*T, 0)
	db := r.Db.WithContext(ctx).Scopes(scopes...)
	if order != "" {
		db = db.Order(order)
	}
	if err := db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(where, args...).Count(&count).Error
	return count > 0, err
}

// UpdateById 按主键更新，未命中返回 gorm.ErrRecordNotFound
func (r *Repo[T]) UpdateById(ctx context.Context, id any, data map[string]any) error {
	var model T
	res := r.Db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(data)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// MySQL 值未变化时 RowsAffected 也为 0
		exist, err := r.IsExist(ctx, "id = ?", id)
		if err != nil {
			return err
		}
		if !exist {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

// Delete 未命中返回 gorm.ErrRecordNotFound
func (r *Repo[T]) Delete(ctx context.Context, id any) error {
	var model T
	res := r.Db.WithContext(ctx).Where("id = ?", id).Delete(&model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
