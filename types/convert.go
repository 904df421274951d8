package types

import (
	"github.com/Himanshu3141/Creatrr/models"
)

func NewUserInfo(user *models.Users) *UserInfo {
	return &UserInfo{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Username:     user.Username,
		ImageUrl:     user.ImageUrl,
		CreatedAt:    user.CreatedAt.UnixMilli(),
		LastActiveAt: user.LastActiveAt.UnixMilli(),
	}
}
