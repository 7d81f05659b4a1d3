// Package handle 提供请求处理器的实现，负责 HTTP 细节与错误码映射.
package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/pressvault/pkg/internal/errs"
	"github.com/yeisme/pressvault/pkg/log"
)

// writeError 按 service 层错误分类映射 HTTP 状态码。
// 存储类与未知错误只返回笼统消息，细节进日志.
func writeError(c *gin.Context, err error) {
	l := log.Logger()

	switch {
	case errors.Is(err, errs.ErrValidation):
		l.Warn().Err(err).Str("path", c.FullPath()).Msg("validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrUnsupportedMedia):
		l.Warn().Err(err).Str("path", c.FullPath()).Msg("unsupported media type")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrAuth):
		l.Warn().Err(err).Str("path", c.FullPath()).Msg("authentication failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication failed"})
	case errors.Is(err, errs.ErrForbidden):
		l.Warn().Err(err).Str("path", c.FullPath()).Msg("forbidden")
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrPayloadTooLarge):
		l.Warn().Err(err).Str("path", c.FullPath()).Msg("payload too large")
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	default:
		l.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// writeBindError 请求体/参数绑定失败统一返回 400.
func writeBindError(c *gin.Context, err error) {
	log.Logger().Warn().Err(err).Str("path", c.FullPath()).Msg("invalid request")
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}
