package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/pressvault/pkg/internal/handle"
)

// RegisterMetaRoutes 注册分类/标签元数据路由.
func RegisterMetaRoutes(g *gin.RouterGroup) {
	meta := g.Group("/meta")
	{
		meta.GET("/categories", handle.ListCategories)
		meta.GET("/tags", handle.ListTags)
	}
}
