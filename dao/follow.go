package dao

import (
	"context"
	"time"

	"github.com/Himanshu3141/Creatrr/models"
	"github.com/Himanshu3141/Creatrr/pkg/snowflake"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowDAO struct {
	Repo[models.Follow]
}

func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{
		Repo: NewRepo[models.Follow](db),
	}
}

// Create 建立关注边（幂等，重复关注不报错）
func (d *FollowDAO) Create(ctx context.Context, followerID, followingID int64) error {
	f := &models.Follow{
		ID:          snowflake.GenID(),
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now(),
	}
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(f).Error
}

// Delete 移除关注边
func (d *FollowDAO) Delete(ctx context.Context, followerID, followingID int64) error {
	return d.Db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{}).Error
}

// IsFollowing 检查是否已关注
func (d *FollowDAO) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	return d.IsExist(ctx, "follower_id = ? AND following_id = ?", followerID, followingID)
}

// GetFollowerCount 获取粉丝数
func (d *FollowDAO) GetFollowerCount(ctx context.Context, userID int64) (int64, error) {
	return d.FindCount(ctx, "following_id = ?", userID)
}

// GetFollowingCount 获取关注数
func (d *FollowDAO) GetFollowingCount(ctx context.Context, userID int64) (int64, error) {
	return d.FindCount(ctx, "follower_id = ?", userID)
}

// ListFollowingIDs 获取用户已关注的用户ID集合
func (d *FollowDAO) ListFollowingIDs(ctx context.Context, followerID int64) ([]int64, error) {
	var ids []int64
	err := d.Model(ctx).
		Select("following_id").
		Where("follower_id = ?", followerID).
		Scan(&ids).Error
	return ids, err
}

// FindRecentFollowers 获取最近关注该用户的 N 条关注边
func (d *FollowDAO) FindRecentFollowers(ctx context.Context, userID int64, limit int) ([]*models.Follow, error) {
	var follows []*models.Follow
	err := d.Db.WithContext(ctx).
		Where("following_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&follows).Error
	return follows, err
}
