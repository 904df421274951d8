package dao

import (
	"context"
	"time"

	"github.com/Himanshu3141/Creatrr/models"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// Create 创建帖子
func (d *PostDAO) Create(ctx context.Context, post *models.Post) error {
	return d.Db.WithContext(ctx).Create(post).Error
}

// Updates 按主键更新字段
func (d *PostDAO) Updates(ctx context.Context, postID int64, updates map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", postID).
		Updates(updates).Error
}

func (d *PostDAO) Delete(ctx context.Context, postID int64) error {
	return d.Db.WithContext(ctx).
		Where("id = ?", postID).
		Delete(&models.Post{}).Error
}

// FindByUserID 查询用户全部帖子（按创建时间倒序）
func (d *PostDAO) FindByUserID(ctx context.Context, userID int64) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// FindDraftByUserID 查询用户现存草稿，未找到返回 nil
// 每个作者最多保留一份草稿，创建路径先查后改
func (d *PostDAO) FindDraftByUserID(ctx context.Context, userID int64) (*models.Post, error) {
	var post models.Post
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, models.PostStatusDraft).
		First(&post).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindPublishedSince 查询发布时间在 since 之后的已发布帖子
func (d *PostDAO) FindPublishedSince(ctx context.Context, since time.Time) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Where("status = ? AND published_at >= ?", models.PostStatusPublished, since).
		Find(&posts).Error
	return posts, err
}

// ListPublished 按发布时间倒序查询已发布帖子
func (d *PostDAO) ListPublished(ctx context.Context, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Where("status = ?", models.PostStatusPublished).
		Order("published_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// FindRecentPublishedByUser 查询用户最近发布的 N 篇帖子
func (d *PostDAO) FindRecentPublishedByUser(ctx context.Context, userID int64, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, models.PostStatusPublished).
		Order("published_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// IncrViewCount 浏览计数 +1
func (d *PostDAO) IncrViewCount(ctx context.Context, postID int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// SetLikeCount 回写点赞计数（上层已做不为负处理）
func (d *PostDAO) SetLikeCount(ctx context.Context, postID int64, count int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("like_count", count).Error
}
