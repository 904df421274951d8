package types

// StoreUserRequest 首次认证接触时落库/刷新用户资料
type StoreUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageUrl string `json:"image_url"`
}

type UpdateUsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

type UserInfo struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	ImageUrl     string `json:"image_url"`
	CreatedAt    int64  `json:"created_at"`
	LastActiveAt int64  `json:"last_active_at"`
}

// AuthorInfo 挂在帖子上的作者冗余信息
type AuthorInfo struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	ImageUrl string `json:"image_url"`
}
