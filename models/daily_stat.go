package models

import (
	"time"
)

// DailyStat 帖子按天的浏览统计
// 唯一键: post_id + stat_date，日期为 UTC 的 YYYY-MM-DD
type DailyStat struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	PostID    int64     `gorm:"column:post_id;not null;uniqueIndex:uk_post_date,priority:1" json:"post_id"`
	StatDate  string    `gorm:"column:stat_date;type:varchar(10);not null;uniqueIndex:uk_post_date,priority:2" json:"stat_date"`
	Views     int64     `gorm:"column:views;not null;default:0" json:"views"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (DailyStat) TableName() string {
	return "daily_stats"
}
