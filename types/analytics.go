package types

// AnalyticsSummary 仪表盘汇总
// CommentsGrowth/FollowersGrowth 为源实现遗留的占位常量
type AnalyticsSummary struct {
	TotalViews      int64   `json:"total_views"`
	TotalLikes      int64   `json:"total_likes"`
	TotalComments   int64   `json:"total_comments"`
	TotalFollowers  int64   `json:"total_followers"`
	ViewsGrowth     float64 `json:"views_growth"`
	LikesGrowth     float64 `json:"likes_growth"`
	CommentsGrowth  float64 `json:"comments_growth"`
	FollowersGrowth float64 `json:"followers_growth"`
}

// 活动类型
const (
	ActivityTypeLike    = "like"
	ActivityTypeComment = "comment"
	ActivityTypeFollow  = "follow"
)

// ActivityItem 最近动态条目
type ActivityItem struct {
	Type string `json:"type"`
	User string `json:"user"`
	Post string `json:"post,omitempty"`
	Time int64  `json:"time"`
}

// PostWithCommentCount 帖子附带实时统计的评论数
type PostWithCommentCount struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Status       int8   `json:"status"`
	ViewCount    int64  `json:"view_count"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
	CreatedAt    int64  `json:"created_at"`
	PublishedAt  int64  `json:"published_at,omitempty"`
}

// DailyViewData 近30天每日浏览量
type DailyViewData struct {
	Date     string `json:"date"` // YYYY-MM-DD (UTC)
	Views    int64  `json:"views"`
	Day      string `json:"day"`       // Mon Tue ...
	FullDate string `json:"full_date"` // Jan 2
}
