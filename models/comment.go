package models

import (
	"time"
)

// 评论状态，当前流程只产生 approved
const (
	CommentStatusApproved = "approved"
)

// Comment 评论表结构
type Comment struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`                              // 评论唯一ID
	PostID      int64     `gorm:"column:post_id;not null;index:idx_post_id" json:"post_id"`    // 所属帖子ID
	UserID      int64     `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`    // 发布评论的用户ID
	AuthorName  string    `gorm:"column:author_name;type:varchar(64)" json:"author_name"`      // 冗余作者昵称
	AuthorEmail string    `gorm:"column:author_email;type:varchar(128)" json:"author_email"`   // 冗余作者邮箱
	Content     string    `gorm:"column:content;type:text;not null" json:"content"`            // 评论正文 1-1000 字符
	Status      string    `gorm:"column:status;type:varchar(16);default:approved" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
