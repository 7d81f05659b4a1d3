package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/pressvault/pkg/configs"
	"github.com/yeisme/pressvault/pkg/internal/handle"
	"github.com/yeisme/pressvault/pkg/middleware"
)

// RegisterAuthRoutes 注册认证路由.
func RegisterAuthRoutes(g *gin.RouterGroup, authCfg configs.AuthConfig) {
	auth := g.Group("/auth")
	{
		auth.POST("/register", handle.Register)
		auth.POST("/login", handle.Login)
		auth.GET("/verify", handle.Verify)
		auth.POST("/password", middleware.AdminAuthMiddleware(authCfg), handle.ChangePassword)
	}
}
