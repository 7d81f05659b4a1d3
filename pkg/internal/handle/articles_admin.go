package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/pressvault/pkg/internal/service"
	"github.com/yeisme/pressvault/pkg/internal/types"
)

// CreateArticle 创建文章（管理端）.
func CreateArticle(c *gin.Context) {
	var req types.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)

		return
	}

	svc := service.NewArticleService(c.Request.Context())

	resp, err := svc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)

		return
	}

	invalidateContentCaches(c)

	c.JSON(http.StatusCreated, resp)
}

// UpdateArticle 部分更新文章（管理端），只修改请求体中提供的字段.
func UpdateArticle(c *gin.Context) {
	var req types.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)

		return
	}

	svc := service.NewArticleService(c.Request.Context())

	resp, err := svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)

		return
	}

	invalidateContentCaches(c)

	c.JSON(http.StatusOK, resp)
}

// DeleteArticle 删除文章及其标签关联与附件（管理端）.
func DeleteArticle(c *gin.Context) {
	svc := service.NewArticleService(c.Request.Context())

	if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)

		return
	}

	invalidateContentCaches(c)

	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}
