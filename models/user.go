package models

import (
	"time"
)

type Users struct {
	ID           int64     `gorm:"column:id;primary_key" json:"id"`
	Subject      string    `gorm:"column:subject;type:varchar(128);not null;uniqueIndex:uk_subject" json:"subject"` // 身份提供方 subject
	Name         string    `gorm:"column:name;type:varchar(64);not null;default:''" json:"name"`
	Email        string    `gorm:"column:email;type:varchar(128);not null;default:''" json:"email"`
	Username     string    `gorm:"column:username;type:varchar(32);not null;default:'';index:idx_username" json:"username"` // 为空表示未完成资料设置
	ImageUrl     string    `gorm:"column:image_url;type:varchar(512);not null;default:''" json:"image_url"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	LastActiveAt time.Time `gorm:"column:last_active_at" json:"last_active_at"`
}

func (Users) TableName() string {
	return "users"
}
