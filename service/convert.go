package service

import (
	"encoding/json"
	"time"

	"github.com/Himanshu3141/Creatrr/models"
	"github.com/Himanshu3141/Creatrr/types"
)

func unixMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func unixMilliPtr(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.UnixMilli()
}

func parseTags(src string) []string {
	tags := make([]string, 0)
	if src == "" {
		return tags
	}
	_ = json.Unmarshal([]byte(src), &tags)
	return tags
}

func toAuthorInfo(user *models.Users) *types.AuthorInfo {
	if user == nil {
		return nil
	}
	return &types.AuthorInfo{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		ImageUrl: user.ImageUrl,
	}
}

func toPostDetail(post *models.Post, author *models.Users) *types.PostDetail {
	return &types.PostDetail{
		ID:               post.ID,
		Title:            post.Title,
		Content:          post.Content,
		Status:           post.Status,
		Tags:             parseTags(post.Tags),
		Category:         post.Category,
		FeaturedImageUrl: post.FeaturedImageUrl,
		ViewCount:        post.ViewCount,
		LikeCount:        post.LikeCount,
		CreatedAt:        unixMilli(post.CreatedAt),
		UpdatedAt:        unixMilli(post.UpdatedAt),
		PublishedAt:      unixMilliPtr(post.PublishedAt),
		ScheduledAt:      unixMilliPtr(post.ScheduledAt),
		Author:           toAuthorInfo(author),
	}
}
