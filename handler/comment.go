package handler

import (
	"net/http"
	"strconv"

	"github.com/Himanshu3141/Creatrr/config"
	"github.com/Himanshu3141/Creatrr/middleware"
	"github.com/Himanshu3141/Creatrr/pkg/context"
	"github.com/Himanshu3141/Creatrr/pkg/response"
	"github.com/Himanshu3141/Creatrr/service"
	"github.com/Himanshu3141/Creatrr/types"

	"github.com/gin-gonic/gin"
)

type Comment struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	posts := r.Group("/v1/posts")
	posts.POST("/:post_id/comments", authorize, context.Wrap(h.AddComment))
	posts.GET("/:post_id/comments", context.Wrap(h.GetPostComments))

	comments := r.Group("/v1/comments")
	comments.DELETE("/:comment_id", authorize, context.Wrap(h.DeleteComment))
}

// AddComment 创建评论
func (h *Comment) AddComment(c *gin.Context) error {
	subject, err := context.GetSubject(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	comment, err := h.CommentService.AddComment(c.Request.Context(), postID, subject, req.Content)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, comment)
	return nil
}

// GetPostComments 获取帖子评论列表
func (h *Comment) GetPostComments(c *gin.Context) error {
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	comments, err := h.CommentService.GetPostComments(c.Request.Context(), postID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, comments)
	return nil
}

// DeleteComment 删除评论（评论作者或帖子作者）
func (h *Comment) DeleteComment(c *gin.Context) error {
	subject, err := context.GetSubject(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	commentIDParam := c.Param("comment_id")
	commentID, err := strconv.ParseInt(commentIDParam, 10, 64)
	if err != nil || commentID == 0 {
		return response.NewError(http.StatusBadRequest, "comment_id 格式错误")
	}

	if err := h.CommentService.DeleteComment(c.Request.Context(), commentID, subject); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}
