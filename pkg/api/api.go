// Package api 将路由绑定到 gin 引擎，作为 app 与 router 之间的装配层.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/pressvault/pkg/internal/router"
	"github.com/yeisme/pressvault/pkg/internal/storage"
	"github.com/yeisme/pressvault/pkg/scheduler"
)

// RegisterRoutes 注册业务路由与 Swagger UI 到传入的 gin 引擎.
func RegisterRoutes(e *gin.Engine, mgr *storage.Manager, sched *scheduler.Scheduler) *gin.Engine {
	router.Setup(e, mgr, sched)
	router.RegisterSwaggerRoute(e)

	return e
}
