package service

import (
	"context"
	"errors"

	"github.com/Himanshu3141/Creatrr/dao"
	"github.com/Himanshu3141/Creatrr/types"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	ToggleFollow(ctx context.Context, subject string, targetUserID int64) (*types.ToggleFollowResult, error)
	IsFollowing(ctx context.Context, subject string, targetUserID int64) (bool, error)
	GetFollowerCount(ctx context.Context, userID int64) (int64, error)
	GetFollowingCount(ctx context.Context, userID int64) (int64, error)
}

type FollowService struct {
	FollowDAO *dao.FollowDAO
	UserDAO   *dao.Users
	Resolver  IdentityResolver
}

// ToggleFollow 关注开关，已关注则取消
func (s *FollowService) ToggleFollow(ctx context.Context, subject string, targetUserID int64) (*types.ToggleFollowResult, error) {
	user, err := s.Resolver.Resolve(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("未登录")
	}

	// 不能关注自己
	if user.ID == targetUserID {
		return nil, errors.New("不能关注自己")
	}

	target, err := s.UserDAO.FindByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errors.New("用户不存在")
	}

	isFollowing, err := s.FollowDAO.IsFollowing(ctx, user.ID, targetUserID)
	if err != nil {
		return nil, err
	}

	if isFollowing {
		if err := s.FollowDAO.Delete(ctx, user.ID, targetUserID); err != nil {
			return nil, err
		}
	} else {
		if err := s.FollowDAO.Create(ctx, user.ID, targetUserID); err != nil {
			return nil, err
		}
	}

	count, err := s.FollowDAO.GetFollowerCount(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	return &types.ToggleFollowResult{
		Following:     !isFollowing,
		FollowerCount: count,
	}, nil
}

// IsFollowing 匿名恒为 false
func (s *FollowService) IsFollowing(ctx context.Context, subject string, targetUserID int64) (bool, error) {
	user, err := s.Resolver.Resolve(ctx, subject)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return s.FollowDAO.IsFollowing(ctx, user.ID, targetUserID)
}

func (s *FollowService) GetFollowerCount(ctx context.Context, userID int64) (int64, error) {
	return s.FollowDAO.GetFollowerCount(ctx, userID)
}

func (s *FollowService) GetFollowingCount(ctx context.Context, userID int64) (int64, error) {
	return s.FollowDAO.GetFollowingCount(ctx, userID)
}
