package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Himanshu3141/Creatrr/dao"
	"github.com/Himanshu3141/Creatrr/models"
	"github.com/Himanshu3141/Creatrr/pkg/snowflake"
	"github.com/Himanshu3141/Creatrr/types"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	SaveDraft(ctx context.Context, subject string, req *types.SaveDraftRequest) (int64, error)
	Publish(ctx context.Context, subject string, postID int64) error
	Schedule(ctx context.Context, subject string, postID int64, at time.Time) error
	GetPost(ctx context.Context, postID int64) (*types.PostDetail, error)
	DeletePost(ctx context.Context, subject string, postID int64) error
	IncrementViewCount(ctx context.Context, postID int64) error
}

type PostService struct {
	PostDAO      *dao.PostDAO
	LikeDAO      *dao.LikeDAO
	CommentDAO   *dao.CommentDAO
	DailyStatDAO *dao.DailyStatDAO
	UserDAO      *dao.Users
	Resolver     IdentityResolver
}

// SaveDraft 保存草稿
// 作者已有草稿时原地更新，保证每人至多一份草稿
func (s *PostService) SaveDraft(ctx context.Context, subject string, req *types.SaveDraftRequest) (int64, error) {
	user, err := s.Resolver.Resolve(ctx, subject)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, errors.New("未登录")
	}

	if len(req.Tags) == 0 {
		req.Tags = make([]string, 0)
	}
	tagsJSON, err := json.Marshal(req.Tags)
	if err != nil {
		return 0, err
	}

	now := time.Now()

	draft, err := s.PostDAO.FindDraftByUserID(ctx, user.ID)
	if err != nil {
		return 0, err
	}
	if draft != nil {
		err := s.PostDAO.Updates(ctx, draft.ID, map[string]any{
			"title":              req.Title,
			"content":            req.Content,
			"tags":               string(tagsJSON),
			"category":           req.Category,
			"featured_image_url": req.FeaturedImageUrl,
			"updated_at":         now,
		})
		return draft.ID, err
	}

	post := &models.Post{
		ID:               snowflake.GenID(),
		UserID:           user.ID,
		Title:            req.Title,
		Content:          req.Content,
		Status:           models.PostStatusDraft,
		Tags:             string(tagsJSON),
		Category:         req.Category,
		FeaturedImageUrl: req.FeaturedImageUrl,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.PostDAO.Create(ctx, post); err != nil {
		return 0, err
	}
	return post.ID, nil
}

// Publish 草稿转发布，published_at 只写入一次
func (s *PostService) Publish(ctx context.Context, subject string, postID int64) error {
	post, err := s.ownedPost(ctx, subject, postID)
	if err != nil {
		return err
	}
	if post.Status == models.PostStatusPublished {
		return errors.New("帖子已发布")
	}

	now := time.Now()
	return s.PostDAO.Updates(ctx, post.ID, map[string]any{
		"status":       models.PostStatusPublished,
		"published_at": now,
		"updated_at":   now,
	})
}

// Schedule 记录草稿的计划发布时间（不做后台调度）
func (s *PostService) Schedule(ctx context.Context, subject string, postID int64, at time.Time) error {
	post, err := s.ownedPost(ctx, subject, postID)
	if err != nil {
		return err
	}
	if post.Status == models.PostStatusPublished {
		return errors.New("帖子已发布")
	}

	return s.PostDAO.Updates(ctx, post.ID, map[string]any{
		"scheduled_at": at,
		"updated_at":   time.Now(),
	})
}

func (s *PostService) GetPost(ctx context.Context, postID int64) (*types.PostDetail, error) {
	post, err := s.PostDAO.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.New("帖子不存在")
	}

	author, err := s.UserDAO.FindByID(ctx, post.UserID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		// 作者已注销，悬空引用按不存在处理
		return nil, errors.New("帖子不存在")
	}

	return toPostDetail(post, author), nil
}

// DeletePost 删除帖子并级联清理点赞、评论、按天统计
func (s *PostService) DeletePost(ctx context.Context, subject string, postID int64) error {
	post, err := s.ownedPost(ctx, subject, postID)
	if err != nil {
		return err
	}

	if err := s.LikeDAO.DeleteByPostID(ctx, post.ID); err != nil {
		return err
	}
	if err := s.CommentDAO.DeleteByPostID(ctx, post.ID); err != nil {
		return err
	}
	if err := s.DailyStatDAO.DeleteByPostID(ctx, post.ID); err != nil {
		return err
	}
	return s.PostDAO.Delete(ctx, post.ID)
}

// IncrementViewCount 浏览计数 +1 并累计当天按天统计
// 帖子不存在或未发布时不做任何事
func (s *PostService) IncrementViewCount(ctx context.Context, postID int64) error {
	post, err := s.PostDAO.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil || post.Status != models.PostStatusPublished {
		return nil
	}

	if err := s.PostDAO.IncrViewCount(ctx, post.ID); err != nil {
		return err
	}
	return s.DailyStatDAO.IncrViews(ctx, post.ID, utcDateKey(time.Now()))
}

func (s *PostService) ownedPost(ctx context.Context, subject string, postID int64) (*models.Post, error) {
	user, err := s.Resolver.Resolve(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("未登录")
	}

	post, err := s.PostDAO.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.New("帖子不存在")
	}
	if post.UserID != user.ID {
		return nil, errors.New("无权操作该帖子")
	}
	return post, nil
}

// utcDateKey 按 UTC 归一化日期键，部署时区不影响日界
func utcDateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
