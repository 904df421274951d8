package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync/atomic"
	"time"

	"github.com/Himanshu3141/Creatrr/dao"
	"github.com/Himanshu3141/Creatrr/types"

	"golang.org/x/sync/errgroup"
)

const (
	growthWindow       = 30 * 24 * time.Hour
	dailyViewDays      = 30
	activityFetchSize  = 5
	defaultActivityCap = 10
	postsAnalyticsCap  = 5

	// 源实现遗留的占位增长常量，按字面保留
	commentsGrowthStub  = 15
	followersGrowthStub = 12

	// 聚合子查询的并发上限
	fanOutLimit = 8
)

var _ IAnalyticsService = (*AnalyticsService)(nil)

type IAnalyticsService interface {
	GetAnalytics(ctx context.Context, subject string) (*types.AnalyticsSummary, error)
	GetRecentActivity(ctx context.Context, subject string, limit int) ([]*types.ActivityItem, error)
	GetPostsWithAnalytics(ctx context.Context, subject string, limit int) ([]*types.PostWithCommentCount, error)
	GetDailyViews(ctx context.Context, subject string) ([]*types.DailyViewData, error)
}

type AnalyticsService struct {
	PostDAO      *dao.PostDAO
	CommentDAO   *dao.CommentDAO
	LikeDAO      *dao.LikeDAO
	FollowDAO    *dao.FollowDAO
	DailyStatDAO *dao.DailyStatDAO
	UserDAO      *dao.Users
	Resolver     IdentityResolver
}

// GetAnalytics 仪表盘汇总，匿名或用户不存在返回 (nil, nil)
func (s *AnalyticsService) GetAnalytics(ctx context.Context, subject string) (*types.AnalyticsSummary, error) {
	user, err := s.Resolver.Resolve(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	posts, err := s.PostDAO.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	var totalViews, totalLikes int64
	var recentViews, recentLikes int64
	recentCutoff := time.Now().Add(-growthWindow)
	for _, post := range posts {
		totalViews += post.ViewCount
		totalLikes += post.LikeCount
		if post.CreatedAt.After(recentCutoff) {
			recentViews += post.ViewCount
			recentLikes += post.LikeCount
		}
	}

	// 每帖评论数为独立只读查询，并发聚合
	var totalComments atomic.Int64
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(fanOutLimit)
	for _, post := range posts {
		post := post
		eg.Go(func() error {
			count, err := s.CommentDAO.CountApprovedByPost(egCtx, post.ID)
			if err != nil {
				return err
			}
			totalComments.Add(count)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	totalFollowers, err := s.FollowDAO.GetFollowerCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	summary := &types.AnalyticsSummary{
		TotalViews:     totalViews,
		TotalLikes:     totalLikes,
		TotalComments:  totalComments.Load(),
		TotalFollowers: totalFollowers,
		ViewsGrowth:    growthPercent(recentViews, totalViews),
		LikesGrowth:    growthPercent(recentLikes, totalLikes),
	}
	if summary.TotalComments > 0 {
		summary.CommentsGrowth = commentsGrowthStub
	}
	if summary.TotalFollowers > 0 {
		summary.FollowersGrowth = followersGrowthStub
	}
	return summary, nil
}

// growthPercent 近30天占比，分母为 0 时返回 0
func growthPercent(recent, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(recent)/float64(total)*1000) / 10
}

// GetRecentActivity 合并点赞/评论/关注的最近动态
// 匿名返回空列表
func (s *AnalyticsService) GetRecentActivity(ctx context.Context, subject string, limit int) ([]*types.ActivityItem, error) {
	if limit <= 0 {
		limit = defaultActivityCap
	}

	items := make([]*types.ActivityItem, 0)

	user, err := s.Resolver.Resolve(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return items, nil
	}

	posts, err := s.PostDAO.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	// 收集顺序：每帖点赞、每帖评论、关注边；同一时间戳按此顺序稳定排序
	for _, post := range posts {
		likes, err := s.LikeDAO.FindRecentByPost(ctx, post.ID, activityFetchSize)
		if err != nil {
			return nil, err
		}
		for _, like := range likes {
			items = append(items, &types.ActivityItem{
				Type: types.ActivityTypeLike,
				User: s.resolveName(ctx, like.UserID),
				Post: post.Title,
				Time: like.CreatedAt.UnixMilli(),
			})
		}

		comments, err := s.CommentDAO.FindRecentApprovedByPost(ctx, post.ID, activityFetchSize)
		if err != nil {
			return nil, err
		}
		for _, comment := range comments {
			items = append(items, &types.ActivityItem{
				Type: types.ActivityTypeComment,
				User: comment.AuthorName,
				Post: post.Title,
				Time: comment.CreatedAt.UnixMilli(),
			})
		}
	}

	follows, err := s.FollowDAO.FindRecentFollowers(ctx, user.ID, activityFetchSize)
	if err != nil {
		return nil, err
	}
	for _, follow := range follows {
		followerID := follow.FollowerID
		items = append(items, &types.ActivityItem{
			Type: types.ActivityTypeFollow,
			User: s.resolveName(ctx, &followerID),
			Time: follow.CreatedAt.UnixMilli(),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Time > items[j].Time
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// resolveName 匿名或已注销用户显示 Someone
func (s *AnalyticsService) resolveName(ctx context.Context, userID *int64) string {
	if userID == nil {
		return "Someone"
	}
	user, err := s.UserDAO.FindByID(ctx, *userID)
	if err != nil || user == nil || user.Name == "" {
		return "Someone"
	}
	return user.Name
}

// GetPostsWithAnalytics 最近帖子附带实时评论数
// 匿名返回空列表
func (s *AnalyticsService) GetPostsWithAnalytics(ctx context.Context, subject string, limit int) ([]*types.PostWithCommentCount, error) {
	if limit <= 0 {
		limit = postsAnalyticsCap
	}

	result := make([]*types.PostWithCommentCount, 0)

	user, err := s.Resolver.Resolve(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return result, nil
	}

	posts, err := s.PostDAO.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}

	result = make([]*types.PostWithCommentCount, len(posts))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(fanOutLimit)
	for i, post := range posts {
		i, post := i, post
		eg.Go(func() error {
			count, err := s.CommentDAO.CountApprovedByPost(egCtx, post.ID)
			if err != nil {
				return err
			}
			result[i] = &types.PostWithCommentCount{
				ID:           post.ID,
				Title:        post.Title,
				Status:       post.Status,
				ViewCount:    post.ViewCount,
				LikeCount:    post.LikeCount,
				CommentCount: count,
				CreatedAt:    post.CreatedAt.UnixMilli(),
				PublishedAt:  unixMilliPtr(post.PublishedAt),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetDailyViews 近30天每日浏览量（严格接口，未登录报错）
// 固定返回 30 条，日期按 UTC 归一、旧在前，缺数据的天补 0
func (s *AnalyticsService) GetDailyViews(ctx context.Context, subject string) ([]*types.DailyViewData, error) {
	user, err := s.Resolver.Resolve(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("未登录")
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	skeleton := make([]*types.DailyViewData, 0, dailyViewDays)
	index := make(map[string]*types.DailyViewData, dailyViewDays)
	for i := dailyViewDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		entry := &types.DailyViewData{
			Date:     day.Format("2006-01-02"),
			Views:    0,
			Day:      day.Format("Mon"),
			FullDate: day.Format("Jan 2"),
		}
		skeleton = append(skeleton, entry)
		index[entry.Date] = entry
	}

	posts, err := s.PostDAO.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	postIDs := make([]int64, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	stats, err := s.DailyStatDAO.FindByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	// 多篇帖子可落在同一天，按日期键累加
	for _, stat := range stats {
		if entry, ok := index[stat.StatDate]; ok {
			entry.Views += stat.Views
		}
	}

	return skeleton, nil
}
