package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Himanshu3141/Creatrr/config"
	"github.com/Himanshu3141/Creatrr/middleware"
	"github.com/Himanshu3141/Creatrr/pkg/context"
	"github.com/Himanshu3141/Creatrr/pkg/response"
	"github.com/Himanshu3141/Creatrr/service"
	"github.com/Himanshu3141/Creatrr/types"

	"github.com/gin-gonic/gin"
)

type Post struct {
	Config      *config.Config
	PostService service.IPostService
}

func (h *Post) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/posts")
	g.POST("/draft", authorize, context.Wrap(h.SaveDraft))
	g.POST("/:post_id/publish", authorize, context.Wrap(h.Publish))
	g.POST("/:post_id/schedule", authorize, context.Wrap(h.Schedule))
	g.GET("/:post_id", context.Wrap(h.GetPost))
	g.DELETE("/:post_id", authorize, context.Wrap(h.DeletePost))
	g.POST("/:post_id/view", context.Wrap(h.IncrementView))
}

// SaveDraft 保存草稿（已有草稿则原地更新）
func (h *Post) SaveDraft(c *gin.Context) error {
	subject, err := context.GetSubject(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	postID, err := h.PostService.SaveDraft(c.Request.Context(), subject, &req)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"post_id": postID})
	return nil
}

// Publish 发布草稿
func (h *Post) Publish(c *gin.Context) error {
	subject, err := context.GetSubject(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	if err := h.PostService.Publish(c.Request.Context(), subject, postID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"published": true})
	return nil
}

// Schedule 设置计划发布时间
func (h *Post) Schedule(c *gin.Context) error {
	subject, err := context.GetSubject(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	var req types.SchedulePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	at := time.UnixMilli(req.ScheduledAt)
	if err := h.PostService.Schedule(c.Request.Context(), subject, postID, at); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"scheduled_at": req.ScheduledAt})
	return nil
}

// GetPost 帖子详情
func (h *Post) GetPost(c *gin.Context) error {
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	post, err := h.PostService.GetPost(c.Request.Context(), postID)
	if err != nil {
		return response.NewError(http.StatusNotFound, err.Error())
	}

	response.Success(c, post)
	return nil
}

// DeletePost 删除帖子
func (h *Post) DeletePost(c *gin.Context) error {
	subject, err := context.GetSubject(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	if err := h.PostService.DeletePost(c.Request.Context(), subject, postID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}

// IncrementView 浏览计数（帖子不存在或未发布时静默）
func (h *Post) IncrementView(c *gin.Context) error {
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	if err := h.PostService.IncrementViewCount(c.Request.Context(), postID); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"ok": true})
	return nil
}

func parsePostID(c *gin.Context) (int64, error) {
	postIDParam := c.Param("post_id")
	if postIDParam == "" {
		return 0, response.NewError(http.StatusBadRequest, "缺少 post_id")
	}
	postID, err := strconv.ParseInt(postIDParam, 10, 64)
	if err != nil || postID == 0 {
		return 0, response.NewError(http.StatusBadRequest, "post_id 格式错误")
	}
	return postID, nil
}
