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

type Dashboard struct {
	Config           *config.Config
	AnalyticsService service.IAnalyticsService
}

func (h *Dashboard) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1/dashboard")
	// 宽松接口匿名时返回空态
	g.GET("/analytics", optional, context.Wrap(h.GetAnalytics))
	g.GET("/activity", optional, context.Wrap(h.GetRecentActivity))
	g.GET("/posts", optional, context.Wrap(h.GetPostsWithAnalytics))
	// 严格接口
	g.GET("/daily-views", authorize, context.Wrap(h.GetDailyViews))
}

// GetAnalytics 仪表盘汇总，匿名返回空数据
func (h *Dashboard) GetAnalytics(c *gin.Context) error {
	subject := context.OptionalSubject(c)

	summary, err := h.AnalyticsService.GetAnalytics(c.Request.Context(), subject)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, summary)
	return nil
}

// GetRecentActivity 最近动态
func (h *Dashboard) GetRecentActivity(c *gin.Context) error {
	subject := context.OptionalSubject(c)

	items, err := h.AnalyticsService.GetRecentActivity(c.Request.Context(), subject, queryLimit(c))
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, items)
	return nil
}

// GetPostsWithAnalytics 最近帖子附带评论数
func (h *Dashboard) GetPostsWithAnalytics(c *gin.Context) error {
	subject := context.OptionalSubject(c)

	posts, err := h.AnalyticsService.GetPostsWithAnalytics(c.Request.Context(), subject, queryLimit(c))
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, posts)
	return nil
}

// GetDailyViews 近30天每日浏览量（未登录 401）
func (h *Dashboard) GetDailyViews(c *gin.Context) error {
	subject, err := context.GetSubject(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	data, err := h.AnalyticsService.GetDailyViews(c.Request.Context(), subject)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, data)
	return nil
}
