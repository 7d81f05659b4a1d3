// Package router 管理路由配置，负责将路径绑定到 handle 层的处理器.
package router

import (
	"strings"

	"github.com/gin-gonic/gin"

	appcache "github.com/yeisme/pressvault/pkg/cache"
	"github.com/yeisme/pressvault/pkg/configs"
	"github.com/yeisme/pressvault/pkg/internal/storage"
	"github.com/yeisme/pressvault/pkg/middleware"
	"github.com/yeisme/pressvault/pkg/scheduler"
)

// Setup 注册 /api/v1 下的全部业务路由。
// 存储依赖通过 StorageMiddleware 注入 request context，
// 限流与熔断按配置开关挂载.
func Setup(e *gin.Engine, mgr *storage.Manager, sched *scheduler.Scheduler) {
	cfg := configs.GetConfig()

	api := e.Group("/api/v1")
	api.Use(middleware.StorageMiddleware(mgr))

	if sched != nil {
		api.Use(middleware.SchedulerMiddleware(sched))
	}

	if cfg.Rate.Enabled {
		api.Use(middleware.RateLimitMiddleware(cfg.Rate))
	}

	if cfg.Breaker.Enabled {
		api.Use(middleware.CircuitBreakerMiddleware(cfg.Breaker))
	}

	// 公开的文章读接口走响应缓存；下载与带凭证的接口不缓存
	if kvClient := mgr.GetKVClient(); kvClient != nil {
		cacheCfg := middleware.DefaultCacheConfig(appcache.NewCache(kvClient))
		cacheCfg.Skipper = func(c *gin.Context) bool {
			return !strings.HasPrefix(c.Request.URL.Path, "/api/v1/articles")
		}

		api.Use(middleware.CacheMiddleware(cacheCfg))
	}

	RegisterHealthCheckRoute(api)
	RegisterArticleRoutes(api, cfg.Auth)
	RegisterAttachmentRoutes(api, cfg.Auth)
	RegisterAuthRoutes(api, cfg.Auth)
	RegisterMetaRoutes(api)

	// 调度器运维端点仅对管理端开放
	if sched != nil {
		ops := api.Group("", middleware.AdminAuthMiddleware(cfg.Auth))
		RegisterSchedulerRoutes(ops)
	}
}
