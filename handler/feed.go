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

type Feed struct {
	Config         *config.Config
	RankingService service.IRankingService
}

func (h *Feed) RegisterRouter(r gin.IRouter) {
	optional := middleware.OptionalAuth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/feed")
	g.GET("", context.Wrap(h.GetFeed))
	g.GET("/trending", context.Wrap(h.GetTrending))
	g.GET("/suggested", optional, context.Wrap(h.GetSuggested))
}

// GetFeed 全站信息流
func (h *Feed) GetFeed(c *gin.Context) error {
	feed, err := h.RankingService.GetFeed(c.Request.Context(), queryLimit(c))
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, feed)
	return nil
}

// GetTrending 热门榜
func (h *Feed) GetTrending(c *gin.Context) error {
	posts, err := h.RankingService.GetTrendingPosts(c.Request.Context(), queryLimit(c))
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, posts)
	return nil
}

// GetSuggested 关注推荐，匿名访问时仅按全量候选排序
func (h *Feed) GetSuggested(c *gin.Context) error {
	subject := context.OptionalSubject(c)

	users, err := h.RankingService.GetSuggestedUsers(c.Request.Context(), subject, queryLimit(c))
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, users)
	return nil
}

func queryLimit(c *gin.Context) int {
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			return n
		}
	}
	return 0
}
