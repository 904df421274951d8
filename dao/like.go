package dao

import (
	"context"

	"github.com/Himanshu3141/Creatrr/models"

	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

func (d *LikeDAO) Create(ctx context.Context, like *models.Like) error {
	return d.Db.WithContext(ctx).Create(like).Error
}

func (d *LikeDAO) Delete(ctx context.Context, likeID int64) error {
	return d.Db.WithContext(ctx).
		Where("id = ?", likeID).
		Delete(&models.Like{}).Error
}

// FindByPostAndUser 查询用户对帖子的点赞记录，未找到返回 nil
func (d *LikeDAO) FindByPostAndUser(ctx context.Context, postID, userID int64) (*models.Like, error) {
	var like models.Like
	err := d.Db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		First(&like).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// FindRecentByPost 查询帖子最近的 N 条点赞（按创建时间倒序）
func (d *LikeDAO) FindRecentByPost(ctx context.Context, postID int64, limit int) ([]*models.Like, error) {
	var likes []*models.Like
	err := d.Db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Limit(limit).
		Find(&likes).Error
	return likes, err
}

// DeleteByPostID 删除帖子的全部点赞记录
func (d *LikeDAO) DeleteByPostID(ctx context.Context, postID int64) error {
	return d.Db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&models.Like{}).Error
}
