package types

// 分页常量
const (
	DefaultFeedLimit      = 10
	DefaultTrendingLimit  = 10
	DefaultSuggestedLimit = 10
)

// SaveDraftRequest 保存草稿请求
// 作者已有草稿时原地更新，不会产生第二份草稿
type SaveDraftRequest struct {
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	Tags             []string `json:"tags"`
	Category         string   `json:"category"`
	FeaturedImageUrl string   `json:"featured_image_url"`
}

type SchedulePostRequest struct {
	ScheduledAt int64 `json:"scheduled_at" binding:"required"` // 毫秒时间戳
}

type PostDetail struct {
	ID               int64       `json:"id"`
	Title            string      `json:"title"`
	Content          string      `json:"content"`
	Status           int8        `json:"status"`
	Tags             []string    `json:"tags"`
	Category         string      `json:"category"`
	FeaturedImageUrl string      `json:"featured_image_url"`
	ViewCount        int64       `json:"view_count"`
	LikeCount        int64       `json:"like_count"`
	CreatedAt        int64       `json:"created_at"`
	UpdatedAt        int64       `json:"updated_at"`
	PublishedAt      int64       `json:"published_at,omitempty"`
	ScheduledAt      int64       `json:"scheduled_at,omitempty"`
	Author           *AuthorInfo `json:"author,omitempty"`
}
