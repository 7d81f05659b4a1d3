package handle

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/pressvault/pkg/cache"
	ctxPkg "github.com/yeisme/pressvault/pkg/context"
	"github.com/yeisme/pressvault/pkg/internal/service"
	"github.com/yeisme/pressvault/pkg/log"
)

// 分类/标签变化频率低，走短 TTL 缓存即可.
const metaCacheTTL = 60 * time.Second

const (
	categoriesCacheKey = "meta:categories"
	tagsCacheKey       = "meta:tags"
)

// ListCategories 返回全部分类名数组，首项固定为 "All".
func ListCategories(c *gin.Context) {
	svc := service.NewArticleService(c.Request.Context())

	loader := func() ([]string, error) {
		names, err := svc.ListCategories(c.Request.Context())
		if err != nil {
			return nil, err
		}

		return append([]string{service.CategoryAll}, names...), nil
	}

	resp, err := cachedMeta(c, categoriesCacheKey, loader)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListTags 返回全部标签名数组.
func ListTags(c *gin.Context) {
	svc := service.NewArticleService(c.Request.Context())

	loader := func() ([]string, error) {
		names, err := svc.ListTags(c.Request.Context())
		if err != nil {
			return nil, err
		}

		if names == nil {
			names = []string{}
		}

		return names, nil
	}

	resp, err := cachedMeta(c, tagsCacheKey, loader)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// cachedMeta KV 可用时走 GetOrSet，不可用时直查（早返回，降低嵌套）.
func cachedMeta[T any](c *gin.Context, key string, loader func() (T, error)) (T, error) {
	kvClient := ctxPkg.GetKVClient(c.Request.Context())
	if kvClient == nil {
		return loader()
	}

	val, err := cache.GetOrSet(c.Request.Context(), cache.NewCache(kvClient), key, loader, metaCacheTTL)
	if err != nil {
		// 缓存层故障时退回直查
		log.Logger().Warn().Err(err).Str("key", key).Msg("meta cache failed, falling back")

		return loader()
	}

	return val, nil
}
