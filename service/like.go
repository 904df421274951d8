package service

import (
	"context"
	"errors"
	"time"

	"github.com/Himanshu3141/Creatrr/dao"
	"github.com/Himanshu3141/Creatrr/models"
	"github.com/Himanshu3141/Creatrr/pkg/snowflake"
	"github.com/Himanshu3141/Creatrr/types"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	ToggleLike(ctx context.Context, postID int64, subject string) (*types.ToggleLikeResult, error)
	HasUserLiked(ctx context.Context, postID int64, subject string) (bool, error)
}

type LikeService struct {
	LikeDAO  *dao.LikeDAO
	PostDAO  *dao.PostDAO
	Resolver IdentityResolver
}

// ToggleLike 点赞开关
// 已点赞则取消并减计数（不为负），未点赞则新增并加计数
// 匿名调用允许点赞但无法去重
func (s *LikeService) ToggleLike(ctx context.Context, postID int64, subject string) (*types.ToggleLikeResult, error) {
	post, err := s.PostDAO.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.Status != models.PostStatusPublished {
		return nil, errors.New("帖子不存在或未发布")
	}

	user, err := s.Resolver.Resolve(ctx, subject)
	if err != nil {
		return nil, err
	}

	if user != nil {
		existing, err := s.LikeDAO.FindByPostAndUser(ctx, post.ID, user.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			if err := s.LikeDAO.Delete(ctx, existing.ID); err != nil {
				return nil, err
			}
			newCount := post.LikeCount - 1
			if newCount < 0 {
				newCount = 0
			}
			if err := s.PostDAO.SetLikeCount(ctx, post.ID, newCount); err != nil {
				return nil, err
			}
			return &types.ToggleLikeResult{Liked: false, LikeCount: newCount}, nil
		}
	}

	like := &models.Like{
		ID:        snowflake.GenID(),
		PostID:    post.ID,
		CreatedAt: time.Now(),
	}
	if user != nil {
		like.UserID = &user.ID
	}
	if err := s.LikeDAO.Create(ctx, like); err != nil {
		return nil, err
	}

	newCount := post.LikeCount + 1
	if err := s.PostDAO.SetLikeCount(ctx, post.ID, newCount); err != nil {
		return nil, err
	}
	return &types.ToggleLikeResult{Liked: true, LikeCount: newCount}, nil
}

// HasUserLiked 匿名恒为 false
func (s *LikeService) HasUserLiked(ctx context.Context, postID int64, subject string) (bool, error) {
	user, err := s.Resolver.Resolve(ctx, subject)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}

	like, err := s.LikeDAO.FindByPostAndUser(ctx, postID, user.ID)
	if err != nil {
		return false, err
	}
	return like != nil, nil
}
