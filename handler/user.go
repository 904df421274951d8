package handler

import (
	"net/http"

	"github.com/Himanshu3141/Creatrr/config"
	"github.com/Himanshu3141/Creatrr/middleware"
	"github.com/Himanshu3141/Creatrr/pkg/context"
	"github.com/Himanshu3141/Creatrr/pkg/response"
	"github.com/Himanshu3141/Creatrr/service"
	"github.com/Himanshu3141/Creatrr/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/users")
	g.POST("/store", authorize, context.Wrap(h.Store))
	g.GET("/me", authorize, context.Wrap(h.GetCurrentUser))
	g.PATCH("/username", authorize, context.Wrap(h.UpdateUsername))
	g.GET("/:username", context.Wrap(h.GetByUsername))
}

// Store 认证后的首次接触落库
func (h *User) Store(c *gin.Context) error {
	subject, err := context.GetSubject(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.StoreUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	user, err := h.UserService.Store(c.Request.Context(), subject, &req)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.NewUserInfo(user))
	return nil
}

// GetCurrentUser 获取当前用户
func (h *User) GetCurrentUser(c *gin.Context) error {
	subject, err := context.GetSubject(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	user, err := h.UserService.GetCurrentUser(c.Request.Context(), subject)
	if err != nil {
		return response.NewError(http.StatusNotFound, err.Error())
	}

	response.Success(c, types.NewUserInfo(user))
	return nil
}

// UpdateUsername 设置用户名
func (h *User) UpdateUsername(c *gin.Context) error {
	subject, err := context.GetSubject(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.UpdateUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	if err := h.UserService.UpdateUsername(c.Request.Context(), subject, req.Username); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"username": req.Username})
	return nil
}

// GetByUsername 公开主页信息
func (h *User) GetByUsername(c *gin.Context) error {
	username := c.Param("username")
	if username == "" {
		return response.NewError(http.StatusBadRequest, "缺少 username")
	}

	user, err := h.UserService.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	if user == nil {
		return response.NewError(http.StatusNotFound, "用户不存在")
	}

	response.Success(c, types.NewUserInfo(user))
	return nil
}
