package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/pressvault/pkg/internal/service"
	"github.com/yeisme/pressvault/pkg/internal/types"
)

// ListArticles 公开的文章列表，支持分类/搜索/标签过滤与分页.
func ListArticles(c *gin.Context) {
	var req types.ListArticlesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeBindError(c, err)

		return
	}

	svc := service.NewArticleService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetArticle 文章详情（含正文、标签、附件）.
func GetArticle(c *gin.Context) {
	svc := service.NewArticleService(c.Request.Context())

	resp, err := svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}
