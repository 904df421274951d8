package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Himanshu3141/Creatrr/dao"
	"github.com/Himanshu3141/Creatrr/models"
	"github.com/Himanshu3141/Creatrr/pkg/snowflake"
	"github.com/Himanshu3141/Creatrr/types"
)

const maxCommentLength = 1000

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	AddComment(ctx context.Context, postID int64, subject string, content string) (*types.CommentItem, error)
	GetPostComments(ctx context.Context, postID int64) ([]*types.CommentItem, error)
	DeleteComment(ctx context.Context, commentID int64, subject string) error
}

type CommentService struct {
	CommentDAO *dao.CommentDAO
	PostDAO    *dao.PostDAO
	UserDAO    *dao.Users
	Resolver   IdentityResolver
}

// AddComment 创建评论（当前流程直接置为 approved，无审核队列）
func (s *CommentService) AddComment(ctx context.Context, postID int64, subject string, content string) (*types.CommentItem, error) {
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
	if post == nil || post.Status != models.PostStatusPublished {
		return nil, errors.New("帖子不存在或未发布")
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, errors.New("评论内容不能为空")
	}
	if len([]rune(trimmed)) > maxCommentLength {
		return nil, errors.New("评论内容不能超过1000字符")
	}

	authorName := user.Name
	if authorName == "" {
		authorName = user.Email
	}

	comment := &models.Comment{
		ID:          snowflake.GenID(),
		PostID:      post.ID,
		UserID:      user.ID,
		AuthorName:  authorName,
		AuthorEmail: user.Email,
		Content:     trimmed,
		Status:      models.CommentStatusApproved,
		CreatedAt:   time.Now(),
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}

	return toCommentItem(comment), nil
}

// GetPostComments 获取帖子评论（按时间倒序）
// 作者已注销的评论不返回
func (s *CommentService) GetPostComments(ctx context.Context, postID int64) ([]*types.CommentItem, error) {
	comments, err := s.CommentDAO.FindApprovedByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	items := make([]*types.CommentItem, 0, len(comments))
	for _, comment := range comments {
		author, err := s.UserDAO.FindByID(ctx, comment.UserID)
		if err != nil {
			return nil, err
		}
		if author == nil {
			continue
		}
		items = append(items, toCommentItem(comment))
	}
	return items, nil
}

// DeleteComment 仅评论作者或帖子作者可删除
func (s *CommentService) DeleteComment(ctx context.Context, commentID int64, subject string) error {
	user, err := s.Resolver.Resolve(ctx, subject)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("未登录")
	}

	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return errors.New("评论不存在")
	}

	if comment.UserID != user.ID {
		post, err := s.PostDAO.FindByID(ctx, comment.PostID)
		if err != nil {
			return err
		}
		if post == nil || post.UserID != user.ID {
			return errors.New("无权删除该评论")
		}
	}

	return s.CommentDAO.Delete(ctx, comment.ID)
}

func toCommentItem(comment *models.Comment) *types.CommentItem {
	return &types.CommentItem{
		ID:         comment.ID,
		PostID:     comment.PostID,
		AuthorID:   comment.UserID,
		AuthorName: comment.AuthorName,
		Content:    comment.Content,
		CreatedAt:  comment.CreatedAt.UnixMilli(),
	}
}
