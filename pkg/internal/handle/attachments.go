package handle

import (
	"fmt"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/pressvault/pkg/internal/service"
	"github.com/yeisme/pressvault/pkg/log"
)

// UploadAttachments 批量上传附件到文章（multipart 表单，字段名 files）.
func UploadAttachments(c *gin.Context) {
	l := log.Logger()

	form, err := c.MultipartForm()
	if err != nil {
		writeBindError(c, err)

		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files provided"})

		return
	}

	items := make([]service.UploadItem, 0, len(headers))
	closers := make([]func() error, 0, len(headers))

	defer func() {
		for _, closeFn := range closers {
			if e := closeFn(); e != nil {
				l.Warn().Err(e).Msg("close upload stream failed")
			}
		}
	}()

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			writeBindError(c, err)

			return
		}

		closers = append(closers, f.Close)

		contentType := fh.Header.Get("Content-Type")
		if contentType == "" {
			contentType = mime.TypeByExtension(filepath.Ext(fh.Filename))
		}

		items = append(items, service.UploadItem{
			Name:        fh.Filename,
			Size:        fh.Size,
			ContentType: contentType,
			Reader:      f,
		})
	}

	svc := service.NewAttachmentService(c.Request.Context())

	resp, err := svc.Upload(c.Request.Context(), c.Param("id"), items)
	if err != nil {
		writeError(c, err)

		return
	}

	invalidateContentCaches(c)

	c.JSON(http.StatusCreated, resp)
}

// DownloadAttachment 下载附件。Content-Type 按粗分类反推，
// Content-Disposition 携带原始文件名.
func DownloadAttachment(c *gin.Context) {
	svc := service.NewAttachmentService(c.Request.Context())

	result, err := svc.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)

		return
	}

	defer func() {
		if e := result.Body.Close(); e != nil {
			log.Logger().Warn().Err(e).Msg("close download stream failed")
		}
	}()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", result.OriginalName),
	}

	c.DataFromReader(http.StatusOK, result.Size, result.ContentType, result.Body, extraHeaders)
}

// DeleteAttachment 删除附件（管理端）.
func DeleteAttachment(c *gin.Context) {
	svc := service.NewAttachmentService(c.Request.Context())

	if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)

		return
	}

	invalidateContentCaches(c)

	c.JSON(http.StatusOK, gin.H{"message": "attachment deleted"})
}

// ListAttachments 列出某篇文章的附件.
func ListAttachments(c *gin.Context) {
	svc := service.NewAttachmentService(c.Request.Context())

	resp, err := svc.ListForArticle(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}
