package handle

import (
	"github.com/gin-gonic/gin"

	ctxPkg "github.com/yeisme/pressvault/pkg/context"
	"github.com/yeisme/pressvault/pkg/log"
	"github.com/yeisme/pressvault/pkg/middleware"
)

// invalidateContentCaches 在文章/附件写操作后清除分类、标签缓存与
// 文章响应缓存，读接口立即可见最新内容。失败只告警，TTL 兜底.
func invalidateContentCaches(c *gin.Context) {
	ctx := c.Request.Context()

	kvClient := ctxPkg.GetKVClient(ctx)
	if kvClient == nil {
		return
	}

	l := log.Logger()

	keys := []string{categoriesCacheKey, tagsCacheKey}

	// 响应缓存只覆盖文章读接口，按前缀整体失效即可
	rcKeys, err := kvClient.Keys(ctx, middleware.ResponseCacheKeyPrefix+"*")
	if err != nil {
		l.Warn().Err(err).Msg("list response cache keys failed")
	} else {
		keys = append(keys, rcKeys...)
	}

	for _, key := range keys {
		if err := kvClient.Delete(ctx, key); err != nil {
			l.Warn().Err(err).Str("key", key).Msg("invalidate cache failed")
		}
	}
}
