package models

import (
	"time"
)

type Follow struct {
	ID          int64     `gorm:"column:id;primary_key" json:"id"`
	FollowerID  int64     `gorm:"column:follower_id;not null;uniqueIndex:uk_follower_following,priority:1" json:"follower_id"`   // 关注人
	FollowingID int64     `gorm:"column:following_id;not null;uniqueIndex:uk_follower_following,priority:2" json:"following_id"` // 被关注人
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
