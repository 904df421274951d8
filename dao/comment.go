package dao

import (
	"context"

	"github.com/Himanshu3141/Creatrr/models"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{
		Repo: NewRepo[models.Comment](db),
	}
}

func (d *CommentDAO) Create(ctx context.Context, comment *models.Comment) error {
	return d.Db.WithContext(ctx).Create(comment).Error
}

// GetByID 根据ID获取评论，未找到返回 nil
func (d *CommentDAO) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	var comment models.Comment
	err := d.Db.WithContext(ctx).
		Where("id = ?", commentID).
		First(&comment).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (d *CommentDAO) Delete(ctx context.Context, commentID int64) error {
	return d.Db.WithContext(ctx).
		Where("id = ?", commentID).
		Delete(&models.Comment{}).Error
}

// CountApprovedByPost 获取帖子已审核通过的评论数
func (d *CommentDAO) CountApprovedByPost(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("post_id = ? AND status = ?", postID, models.CommentStatusApproved).
		Count(&count).Error
	return count, err
}

// FindApprovedByPost 获取帖子评论列表（按时间倒序）
func (d *CommentDAO) FindApprovedByPost(ctx context.Context, postID int64) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("post_id = ? AND status = ?", postID, models.CommentStatusApproved).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// FindRecentApprovedByPost 获取帖子最近的 N 条评论
func (d *CommentDAO) FindRecentApprovedByPost(ctx context.Context, postID int64, limit int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("post_id = ? AND status = ?", postID, models.CommentStatusApproved).
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

// DeleteByPostID 删除帖子的全部评论
func (d *CommentDAO) DeleteByPostID(ctx context.Context, postID int64) error {
	return d.Db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&models.Comment{}).Error
}
