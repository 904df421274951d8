package dao

import (
	"context"

	"github.com/Himanshu3141/Creatrr/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

func (d *Users) Create(ctx context.Context, user *models.Users) error {
	return d.Db.WithContext(ctx).Create(user).Error
}

// GetBySubject 按身份提供方 subject 查询，未找到返回 nil
func (d *Users) GetBySubject(ctx context.Context, subject string) (*models.Users, error) {
	var user models.Users
	err := d.Db.WithContext(ctx).Where("subject = ?", subject).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername 按用户名查询，未找到返回 nil
func (d *Users) GetByUsername(ctx context.Context, username string) (*models.Users, error) {
	var user models.Users
	err := d.Db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Updates 按主键更新字段
func (d *Users) Updates(ctx context.Context, userID int64, updates map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("id = ?", userID).
		Updates(updates).Error
}

// ListAll 查询全部用户（推荐候选集）
func (d *Users) ListAll(ctx context.Context) ([]*models.Users, error) {
	var users []*models.Users
	err := d.Db.WithContext(ctx).Find(&users).Error
	return users, err
}

// FindByIDs 根据 ID 列表查询用户
func (d *Users) FindByIDs(ctx context.Context, ids []int64) ([]*models.Users, error) {
	if len(ids) == 0 {
		return []*models.Users{}, nil
	}
	var users []*models.Users
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users).Error
	return users, err
}
