package models

import "time"

// Like 点赞记录
// 对应表 likes
// user_id 为 NULL 表示匿名点赞
type Like struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	PostID    int64     `gorm:"column:post_id;not null;index:idx_post_user,priority:1" json:"post_id"`
	UserID    *int64    `gorm:"column:user_id;index:idx_post_user,priority:2" json:"user_id,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Like) TableName() string { return "likes" }
