package handler

import (
	"net/http"
	"strconv"

	"github.com/Himanshu3141/Creatrr/config"
	"github.com/Himanshu3141/Creatrr/middleware"
	"github.com/Himanshu3141/Creatrr/pkg/context"
	"github.com/Himanshu3141/Creatrr/pkg/response"
	"github.com/Himanshu3141/Creatrr/service"

	"github.com/gin-gonic/gin"
)

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (h *Follow) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1/follow")
	g.POST("/:user_id", authorize, context.Wrap(h.ToggleFollow))
	g.GET("/:user_id", optional, context.Wrap(h.GetFollowStatus))
	g.GET("/:user_id/followers/count", context.Wrap(h.GetFollowerCount))
	g.GET("/:user_id/following/count", context.Wrap(h.GetFollowingCount))
}

// ToggleFollow 关注开关
func (h *Follow) ToggleFollow(c *gin.Context) error {
	subject, err := context.GetSubject(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	targetUserID, err := parseUserID(c)
	if err != nil {
		return err
	}

	result, err := h.FollowService.ToggleFollow(c.Request.Context(), subject, targetUserID)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, result)
	return nil
}

// GetFollowStatus 查询是否已关注（匿名恒为 false）
func (h *Follow) GetFollowStatus(c *gin.Context) error {
	targetUserID, err := parseUserID(c)
	if err != nil {
		return err
	}

	subject := context.OptionalSubject(c)

	isFollowing, err := h.FollowService.IsFollowing(c.Request.Context(), subject, targetUserID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"is_following": isFollowing})
	return nil
}

// GetFollowerCount 查询粉丝数
func (h *Follow) GetFollowerCount(c *gin.Context) error {
	targetUserID, err := parseUserID(c)
	if err != nil {
		return err
	}

	count, err := h.FollowService.GetFollowerCount(c.Request.Context(), targetUserID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"follower_count": count})
	return nil
}

// GetFollowingCount 查询关注数
func (h *Follow) GetFollowingCount(c *gin.Context) error {
	targetUserID, err := parseUserID(c)
	if err != nil {
		return err
	}

	count, err := h.FollowService.GetFollowingCount(c.Request.Context(), targetUserID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"following_count": count})
	return nil
}

func parseUserID(c *gin.Context) (int64, error) {
	userIDParam := c.Param("user_id")
	if userIDParam == "" {
		return 0, response.NewError(http.StatusBadRequest, "缺少 user_id")
	}
	userID, err := strconv.ParseInt(userIDParam, 10, 64)
	if err != nil || userID == 0 {
		return 0, response.NewError(http.StatusBadRequest, "user_id 格式错误")
	}
	return userID, nil
}
