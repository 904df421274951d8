package context

import (
	"errors"
	"net/http"

	"github.com/Himanshu3141/Creatrr/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID  = "user_id"
	CtxSubject = "subject"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(http.StatusOK, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

// GetSubject 获取当前登录用户在身份提供方的 subject
func GetSubject(c *gin.Context) (string, error) {
	v, ok := c.Get(CtxSubject)
	if !ok {
		return "", errors.New("subject 不存在")
	}

	sub, ok := v.(string)
	if !ok || sub == "" {
		return "", errors.New("subject 类型错误")
	}

	return sub, nil
}

// OptionalSubject 匿名访问时返回空字符串
func OptionalSubject(c *gin.Context) string {
	sub, err := GetSubject(c)
	if err != nil {
		return ""
	}
	return sub
}
