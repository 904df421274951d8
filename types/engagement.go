package types

// CreateCommentRequest 创建评论请求
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CommentItem struct {
	ID         int64  `json:"id"`
	PostID     int64  `json:"post_id"`
	AuthorID   int64  `json:"author_id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	CreatedAt  int64  `json:"created_at"`
}

// ToggleLikeResult 点赞开关的结果（操作后的状态）
type ToggleLikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// ToggleFollowResult 关注开关的结果
type ToggleFollowResult struct {
	Following     bool  `json:"following"`
	FollowerCount int64 `json:"follower_count"`
}
