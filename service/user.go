package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/Himanshu3141/Creatrr/dao"
	"github.com/Himanshu3141/Creatrr/models"
	"github.com/Himanshu3141/Creatrr/pkg/snowflake"
	"github.com/Himanshu3141/Creatrr/types"
)

var _ IUserService = (*UserService)(nil)

// IdentityResolver 把认证方 subject 解析为本地用户
// 匿名或用户不存在时返回 (nil, nil)，由调用方决定宽松/严格语义
type IdentityResolver interface {
	Resolve(ctx context.Context, subject string) (*models.Users, error)
}

type IUserService interface {
	IdentityResolver
	Store(ctx context.Context, subject string, req *types.StoreUserRequest) (*models.Users, error)
	GetCurrentUser(ctx context.Context, subject string) (*models.Users, error)
	UpdateUsername(ctx context.Context, subject string, username string) error
	GetUserByUsername(ctx context.Context, username string) (*models.Users, error)
}

type UserService struct {
	UserDAO *dao.Users
}

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,20}$`)

func (s *UserService) Resolve(ctx context.Context, subject string) (*models.Users, error) {
	if subject == "" {
		return nil, nil
	}
	return s.UserDAO.GetBySubject(ctx, subject)
}

// Store 认证后的首次接触落库，已存在则刷新资料
func (s *UserService) Store(ctx context.Context, subject string, req *types.StoreUserRequest) (*models.Users, error) {
	if subject == "" {
		return nil, errors.New("未登录")
	}

	existing, err := s.UserDAO.GetBySubject(ctx, subject)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if existing == nil {
		user := &models.Users{
			ID:           snowflake.GenID(),
			Subject:      subject,
			Name:         req.Name,
			Email:        req.Email,
			ImageUrl:     req.ImageUrl,
			CreatedAt:    now,
			LastActiveAt: now,
		}
		if err := s.UserDAO.Create(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}

	updates := map[string]any{
		"last_active_at": now,
	}
	if req.Name != "" {
		updates["name"] = req.Name
		existing.Name = req.Name
	}
	if req.ImageUrl != "" {
		updates["image_url"] = req.ImageUrl
		existing.ImageUrl = req.ImageUrl
	}
	if err := s.UserDAO.Updates(ctx, existing.ID, updates); err != nil {
		return nil, err
	}
	existing.LastActiveAt = now
	return existing, nil
}

func (s *UserService) GetCurrentUser(ctx context.Context, subject string) (*models.Users, error) {
	if subject == "" {
		return nil, errors.New("未登录")
	}
	user, err := s.UserDAO.GetBySubject(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("用户不存在")
	}
	return user, nil
}

// UpdateUsername 设置用户名，先查重再写入
func (s *UserService) UpdateUsername(ctx context.Context, subject string, username string) error {
	user, err := s.GetCurrentUser(ctx, subject)
	if err != nil {
		return err
	}

	if !usernamePattern.MatchString(username) {
		return errors.New("用户名需为 3-20 位小写字母、数字或下划线")
	}

	taken, err := s.UserDAO.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if taken != nil && taken.ID != user.ID {
		return errors.New("用户名已被占用")
	}

	return s.UserDAO.Updates(ctx, user.ID, map[string]any{"username": username})
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.Users, error) {
	return s.UserDAO.GetByUsername(ctx, username)
}
