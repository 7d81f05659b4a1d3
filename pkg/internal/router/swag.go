package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/yeisme/pressvault/pkg/configs"
)

// RegisterSwaggerRoute 注册 Swagger UI 路由，仅在 Debug 模式开放.
// swag init 生成的 docs 包需要在构建时另行引入.
func RegisterSwaggerRoute(r *gin.Engine) {
	if !configs.GetConfig().Server.Debug {
		return
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
