package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 泛型 DAO 基类
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Model(ctx context.Context) *gorm.DB {
	return r.Db.WithContext(ctx).Model(new(T))
}

// IsExist 判断满足条件的记录是否存在
func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	count, err := r.FindCount(ctx, where, args...)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindCount 统计满足条件的记录数
func (r Repo[T]) FindCount(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	err := r.Model(ctx).Where(where, args...).Count(&count).Error
	return count, err
}

// FindByID 按主键查询，未找到返回 nil
func (r Repo[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
