package handler

import (
	"net/http"

	"github.com/Himanshu3141/Creatrr/config"
	"github.com/Himanshu3141/Creatrr/middleware"
	"github.com/Himanshu3141/Creatrr/pkg/context"
	"github.com/Himanshu3141/Creatrr/pkg/response"
	"github.com/Himanshu3141/Creatrr/service"

	"github.com/gin-gonic/gin"
)

type Like struct {
	Config      *config.Config
	LikeService service.ILikeService
}

func (h *Like) RegisterRouter(r gin.IRouter) {
	optional := middleware.OptionalAuth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/posts")
	// 允许匿名点赞
	g.POST("/:post_id/like", optional, context.Wrap(h.ToggleLike))
	g.GET("/:post_id/liked", optional, context.Wrap(h.HasUserLiked))
}

// ToggleLike 点赞开关
func (h *Like) ToggleLike(c *gin.Context) error {
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	subject := context.OptionalSubject(c)

	result, err := h.LikeService.ToggleLike(c.Request.Context(), postID, subject)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, result)
	return nil
}

// HasUserLiked 查询当前用户是否点赞过（匿名恒为 false）
func (h *Like) HasUserLiked(c *gin.Context) error {
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	subject := context.OptionalSubject(c)

	liked, err := h.LikeService.HasUserLiked(c.Request.Context(), postID, subject)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"liked": liked})
	return nil
}
