package dao

import (
	"context"
	"time"

	"github.com/Himanshu3141/Creatrr/models"
	"github.com/Himanshu3141/Creatrr/pkg/snowflake"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyStatDAO struct {
	Repo[models.DailyStat]
}

func NewDailyStatDAO(db *gorm.DB) *DailyStatDAO {
	return &DailyStatDAO{Repo: NewRepo[models.DailyStat](db)}
}

// IncrViews 当天浏览计数 +1，(post_id, stat_date) 不存在则插入
func (d *DailyStatDAO) IncrViews(ctx context.Context, postID int64, statDate string) error {
	now := time.Now()
	stat := &models.DailyStat{
		ID:        snowflake.GenID(),
		PostID:    postID,
		StatDate:  statDate,
		Views:     1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "post_id"}, {Name: "stat_date"}},
			DoUpdates: clause.Assignments(map[string]any{
				"views":      gorm.Expr("views + 1"),
				"updated_at": now,
			}),
		}).
		Create(stat).Error
}

// FindByPostIDs 查询一组帖子的全部按天统计
func (d *DailyStatDAO) FindByPostIDs(ctx context.Context, postIDs []int64) ([]*models.DailyStat, error) {
	if len(postIDs) == 0 {
		return []*models.DailyStat{}, nil
	}
	var stats []*models.DailyStat
	err := d.Db.WithContext(ctx).
		Where("post_id IN ?", postIDs).
		Find(&stats).Error
	return stats, err
}

// DeleteByPostID 删除帖子的全部按天统计
func (d *DailyStatDAO) DeleteByPostID(ctx context.Context, postID int64) error {
	return d.Db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&models.DailyStat{}).Error
}
