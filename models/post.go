package models

import (
	"time"
)

// 帖子状态
const (
	PostStatusDraft     int8 = 0
	PostStatusPublished int8 = 1
)

type Post struct {
	ID               int64      `gorm:"column:id;primary_key" json:"id"`
	UserID           int64      `gorm:"column:user_id;not null;index:idx_userid_status" json:"user_id"`
	Title            string     `gorm:"column:title;type:varchar(200);not null;default:''" json:"title"`
	Content          string     `gorm:"column:content;type:text" json:"content"`
	Status           int8       `gorm:"column:status;not null;default:0;index:idx_userid_status;index:idx_status_published_at" json:"status"`
	Tags             string     `gorm:"column:tags;type:json" json:"tags"` // JSON 数组
	Category         string     `gorm:"column:category;type:varchar(64);not null;default:''" json:"category"`
	FeaturedImageUrl string     `gorm:"column:featured_image_url;type:varchar(512);not null;default:''" json:"featured_image_url"`
	ViewCount        int64      `gorm:"column:view_count;not null;default:0" json:"view_count"`
	LikeCount        int64      `gorm:"column:like_count;not null;default:0" json:"like_count"`
	CreatedAt        time.Time  `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at" json:"updated_at"`
	PublishedAt      *time.Time `gorm:"column:published_at;index:idx_status_published_at" json:"published_at"` // 仅在草稿转发布时写入一次
	ScheduledAt      *time.Time `gorm:"column:scheduled_at" json:"scheduled_at"`
}

func (Post) TableName() string {
	return "posts"
}
