package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/pressvault/pkg/configs"
	"github.com/yeisme/pressvault/pkg/internal/handle"
	"github.com/yeisme/pressvault/pkg/middleware"
)

// RegisterAttachmentRoutes 注册附件路由：下载公开，删除需要管理端令牌.
func RegisterAttachmentRoutes(g *gin.RouterGroup, authCfg configs.AuthConfig) {
	attachments := g.Group("/attachments")
	{
		attachments.GET("/:id/download", handle.DownloadAttachment)
	}

	admin := g.Group("/attachments", middleware.AdminAuthMiddleware(authCfg))
	{
		admin.DELETE("/:id", handle.DeleteAttachment)
	}
}
