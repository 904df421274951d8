package types

// TrendingPost 热门榜条目，score = views + likes*3
type TrendingPost struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	ViewCount   int64       `json:"view_count"`
	LikeCount   int64       `json:"like_count"`
	Score       int64       `json:"score"`
	PublishedAt int64       `json:"published_at"`
	Author      *AuthorInfo `json:"author"`
}

// PostPreview 推荐用户携带的轻量帖子预览
type PostPreview struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	ViewCount int64  `json:"view_count"`
	LikeCount int64  `json:"like_count"`
}

// SuggestedUser 关注推荐条目
type SuggestedUser struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	Username        string         `json:"username"`
	ImageUrl        string         `json:"image_url"`
	FollowerCount   int64          `json:"follower_count"`
	EngagementScore int64          `json:"engagement_score"`
	RecentPosts     []*PostPreview `json:"recent_posts"`
}

type FeedResponse struct {
	Posts   []*PostDetail `json:"posts"`
	HasMore bool          `json:"has_more"`
}
