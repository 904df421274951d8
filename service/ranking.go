package service

import (
	"context"
	"sort"
	"time"

	"github.com/Himanshu3141/Creatrr/dao"
	"github.com/Himanshu3141/Creatrr/dao/cache"
	"github.com/Himanshu3141/Creatrr/models"
	"github.com/Himanshu3141/Creatrr/types"
)

// 排名窗口与权重
const (
	trendingWindow     = 7 * 24 * time.Hour
	trendingLikeWeight = 3

	suggestedSampleSize     = 5
	suggestedLikeWeight     = 5
	suggestedFollowerWeight = 10
	suggestedPreviewSize    = 2
)

var _ IRankingService = (*RankingService)(nil)

type IRankingService interface {
	GetTrendingPosts(ctx context.Context, limit int) ([]*types.TrendingPost, error)
	GetSuggestedUsers(ctx context.Context, subject string, limit int) ([]*types.SuggestedUser, error)
	GetFeed(ctx context.Context, limit int) (*types.FeedResponse, error)
}

type RankingService struct {
	PostDAO   *dao.PostDAO
	UserDAO   *dao.Users
	FollowDAO *dao.FollowDAO
	Trending  *cache.TrendingCache
	Resolver  IdentityResolver
}

// TrendingScore 热度得分 = 浏览数 + 点赞数*3
func TrendingScore(post *models.Post) int64 {
	return post.ViewCount + post.LikeCount*trendingLikeWeight
}

// GetTrendingPosts 近7天已发布帖子按热度得分排序
func (s *RankingService) GetTrendingPosts(ctx context.Context, limit int) ([]*types.TrendingPost, error) {
	if limit <= 0 {
		limit = types.DefaultTrendingLimit
	}

	if s.Trending != nil {
		if cached, ok := s.Trending.Get(ctx, limit); ok {
			return cached, nil
		}
	}

	since := time.Now().Add(-trendingWindow)
	posts, err := s.PostDAO.FindPublishedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	// 得分相同保持存储返回顺序
	sort.SliceStable(posts, func(i, j int) bool {
		return TrendingScore(posts[i]) > TrendingScore(posts[j])
	})
	if len(posts) > limit {
		posts = posts[:limit]
	}

	result := make([]*types.TrendingPost, 0, len(posts))
	for _, post := range posts {
		author, err := s.UserDAO.FindByID(ctx, post.UserID)
		if err != nil {
			return nil, err
		}
		if author == nil {
			// 作者已注销，丢弃该帖
			continue
		}
		result = append(result, &types.TrendingPost{
			ID:          post.ID,
			Title:       post.Title,
			ViewCount:   post.ViewCount,
			LikeCount:   post.LikeCount,
			Score:       TrendingScore(post),
			PublishedAt: unixMilliPtr(post.PublishedAt),
			Author:      toAuthorInfo(author),
		})
	}

	if s.Trending != nil {
		s.Trending.Set(ctx, limit, result)
	}
	return result, nil
}

type suggestedCandidate struct {
	item     *types.SuggestedUser
	isRecent bool
}

// GetSuggestedUsers 关注推荐
// 候选 = 全部用户 - 自己 - 已关注 - 未设置用户名 - 零发布
// 得分只取最近 5 篇发布帖的样本，不累计全量历史
func (s *RankingService) GetSuggestedUsers(ctx context.Context, subject string, limit int) ([]*types.SuggestedUser, error) {
	if limit <= 0 {
		limit = types.DefaultSuggestedLimit
	}

	caller, err := s.Resolver.Resolve(ctx, subject)
	if err != nil {
		return nil, err
	}

	followed := make(map[int64]struct{})
	var callerID int64
	if caller != nil {
		callerID = caller.ID
		ids, err := s.FollowDAO.ListFollowingIDs(ctx, caller.ID)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			followed[id] = struct{}{}
		}
	}

	users, err := s.UserDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	recentCutoff := time.Now().Add(-trendingWindow)
	candidates := make([]suggestedCandidate, 0)

	for _, user := range users {
		if user.ID == callerID {
			continue
		}
		if _, ok := followed[user.ID]; ok {
			continue
		}
		if user.Username == "" {
			// 未完成资料设置的用户不进推荐
			continue
		}

		posts, err := s.PostDAO.FindRecentPublishedByUser(ctx, user.ID, suggestedSampleSize)
		if err != nil {
			return nil, err
		}
		if len(posts) == 0 {
			continue
		}

		followerCount, err := s.FollowDAO.GetFollowerCount(ctx, user.ID)
		if err != nil {
			return nil, err
		}

		var score int64
		for _, post := range posts {
			score += post.ViewCount + post.LikeCount*suggestedLikeWeight
		}
		score += followerCount * suggestedFollowerWeight

		isRecent := posts[0].PublishedAt != nil && posts[0].PublishedAt.After(recentCutoff)

		preview := make([]*types.PostPreview, 0, suggestedPreviewSize)
		for i, post := range posts {
			if i >= suggestedPreviewSize {
				break
			}
			preview = append(preview, &types.PostPreview{
				ID:        post.ID,
				Title:     post.Title,
				ViewCount: post.ViewCount,
				LikeCount: post.LikeCount,
			})
		}

		candidates = append(candidates, suggestedCandidate{
			item: &types.SuggestedUser{
				ID:              user.ID,
				Name:            user.Name,
				Username:        user.Username,
				ImageUrl:        user.ImageUrl,
				FollowerCount:   followerCount,
				EngagementScore: score,
				RecentPosts:     preview,
			},
			isRecent: isRecent,
		})
	}

	// 两级排序：最近7天有发布的优先，同组内按得分降序
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].isRecent != candidates[j].isRecent {
			return candidates[i].isRecent
		}
		return candidates[i].item.EngagementScore > candidates[j].item.EngagementScore
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]*types.SuggestedUser, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, c.item)
	}
	return result, nil
}

// GetFeed 全站信息流，按发布时间倒序
func (s *RankingService) GetFeed(ctx context.Context, limit int) (*types.FeedResponse, error) {
	if limit <= 0 {
		limit = types.DefaultFeedLimit
	}

	// 多取一条判断是否还有下一页
	posts, err := s.PostDAO.ListPublished(ctx, limit+1)
	if err != nil {
		return nil, err
	}

	hasMore := len(posts) > limit
	if hasMore {
		posts = posts[:limit]
	}

	items := make([]*types.PostDetail, 0, len(posts))
	for _, post := range posts {
		author, err := s.UserDAO.FindByID(ctx, post.UserID)
		if err != nil {
			return nil, err
		}
		if author == nil {
			continue
		}
		items = append(items, toPostDetail(post, author))
	}

	return &types.FeedResponse{
		Posts:   items,
		HasMore: hasMore,
	}, nil
}
