package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/pressvault/pkg/configs"
	"github.com/yeisme/pressvault/pkg/internal/handle"
	"github.com/yeisme/pressvault/pkg/middleware"
)

// RegisterArticleRoutes 注册文章路由：读公开，写需要管理端令牌.
func RegisterArticleRoutes(g *gin.RouterGroup, authCfg configs.AuthConfig) {
	articles := g.Group("/articles")
	{
		articles.GET("", handle.ListArticles)
		articles.GET("/:id", handle.GetArticle)
		articles.GET("/:id/attachments", handle.ListAttachments)
	}

	admin := g.Group("/articles", middleware.AdminAuthMiddleware(authCfg))
	{
		admin.POST("", handle.CreateArticle)
		admin.PUT("/:id", handle.UpdateArticle)
		admin.DELETE("/:id", handle.DeleteArticle)
		admin.POST("/:id/attachments", handle.UploadAttachments)
	}
}
