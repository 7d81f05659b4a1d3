package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/yeisme/pressvault/pkg/internal/errs"
	"github.com/yeisme/pressvault/pkg/internal/model"
	"github.com/yeisme/pressvault/pkg/internal/types"
)

func uploadItem(name, contentType, content string) UploadItem {
	return UploadItem{
		Name:        name,
		Size:        int64(len(content)),
		ContentType: contentType,
		Reader:      strings.NewReader(content),
	}
}

func setupAttachments(t *testing.T) (*ArticleService, *AttachmentService, *fakeBlobStore, string) {
	t.Helper()

	svc, store := newTestArticleService(t)
	att := newTestAttachmentService(t, svc, store)

	art := mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "t", Summary: "s", Content: "c", Author: "a", Category: "Tech",
	})

	return svc, att, store, art.ID
}

func TestUploadAttachments(t *testing.T) {
	_, att, store, articleID := setupAttachments(t)
	ctx := context.Background()

	resp, err := att.Upload(ctx, articleID, []UploadItem{
		uploadItem("report.pdf", "application/pdf", "pdf-data"),
		uploadItem("photo.JPG", "image/jpeg", "jpeg-data"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if resp.Total != 2 || len(resp.Attachments) != 2 {
		t.Fatalf("resp = %+v", resp)
	}

	first := resp.Attachments[0]
	if first.OriginalName != "report.pdf" || first.FileType != "pdf" {
		t.Errorf("first attachment: %+v", first)
	}

	if first.SizeText != "8 Bytes" {
		t.Errorf("size text = %q", first.SizeText)
	}

	if !strings.HasSuffix(first.DownloadURL, "/download") {
		t.Errorf("download url = %q", first.DownloadURL)
	}

	if store.len() != 2 {
		t.Errorf("blobs stored = %d, want 2", store.len())
	}

	// 对象键为 ULID + 小写扩展名
	var names []string
	att.gdb(ctx).Model(&model.Attachment{}).Order("original_name").Pluck("storage_name", &names)

	if len(names) != 2 || !strings.HasSuffix(names[0], ".jpg") || !strings.HasSuffix(names[1], ".pdf") {
		t.Errorf("storage names = %v", names)
	}
}

func TestUploadValidation(t *testing.T) {
	_, att, store, articleID := setupAttachments(t)
	ctx := context.Background()

	// 文章不存在
	if _, err := att.Upload(ctx, "missing", []UploadItem{
		uploadItem("a.pdf", "application/pdf", "x"),
	}); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("missing article err = %v, want ErrNotFound", err)
	}

	// 空文件列表
	if _, err := att.Upload(ctx, articleID, nil); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("empty items err = %v, want ErrValidation", err)
	}

	// 超出单文件大小限制
	big := UploadItem{Name: "big.pdf", Size: att.cfg.MaxFileSize + 1, ContentType: "application/pdf", Reader: strings.NewReader("")}
	if _, err := att.Upload(ctx, articleID, []UploadItem{big}); !errors.Is(err, errs.ErrPayloadTooLarge) {
		t.Errorf("oversize err = %v, want ErrPayloadTooLarge", err)
	}

	// 类型不在允许列表
	if _, err := att.Upload(ctx, articleID, []UploadItem{
		uploadItem("run.exe", "application/x-msdownload", "mz"),
	}); !errors.Is(err, errs.ErrUnsupportedMedia) {
		t.Errorf("bad type err = %v, want ErrUnsupportedMedia", err)
	}

	// 超出单次上传文件数
	items := make([]UploadItem, att.cfg.MaxFileCount+1)
	for i := range items {
		items[i] = uploadItem("f.pdf", "application/pdf", "x")
	}

	if _, err := att.Upload(ctx, articleID, items); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("too many files err = %v, want ErrValidation", err)
	}

	// 以上失败不应写入任何 blob 或行
	if store.len() != 0 {
		t.Errorf("blobs after failures: %d", store.len())
	}

	var count int64
	att.gdb(ctx).Model(&model.Attachment{}).Count(&count)

	if count != 0 {
		t.Errorf("rows after failures: %d", count)
	}
}

func TestUploadFailureCleansBatch(t *testing.T) {
	_, att, store, articleID := setupAttachments(t)
	ctx := context.Background()

	store.failAt = 2 // 第二个文件写入失败

	_, err := att.Upload(ctx, articleID, []UploadItem{
		uploadItem("one.pdf", "application/pdf", "1"),
		uploadItem("two.pdf", "application/pdf", "2"),
	})
	if !errors.Is(err, errs.ErrStore) {
		t.Fatalf("err = %v, want ErrStore", err)
	}

	// 本批第一个已写入的 blob 被撤销
	if store.len() != 0 {
		t.Errorf("blobs after failed batch: %d", store.len())
	}

	var count int64
	att.gdb(ctx).Model(&model.Attachment{}).Count(&count)

	if count != 0 {
		t.Errorf("rows after failed batch: %d", count)
	}
}

func TestDownloadAttachment(t *testing.T) {
	_, att, store, articleID := setupAttachments(t)
	ctx := context.Background()

	resp, err := att.Upload(ctx, articleID, []UploadItem{
		uploadItem("doc.pdf", "application/pdf", "pdf-content"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	id := resp.Attachments[0].ID

	result, err := att.Download(ctx, id)
	if err != nil {
		t.Fatalf("download: %v", err)
	}

	defer func() { _ = result.Body.Close() }()

	data, _ := io.ReadAll(result.Body)
	if string(data) != "pdf-content" {
		t.Errorf("body = %q", data)
	}

	if result.ContentType != "application/pdf" || result.OriginalName != "doc.pdf" {
		t.Errorf("meta = %+v", result)
	}

	// 行存在但 blob 丢失 -> 404
	var row model.Attachment

	att.gdb(ctx).First(&row, "id = ?", id)
	_ = store.Remove(ctx, row.StorageName)

	if _, err := att.Download(ctx, id); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("missing blob err = %v, want ErrNotFound", err)
	}

	if _, err := att.Download(ctx, "missing-id"); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("missing row err = %v, want ErrNotFound", err)
	}
}

func TestDeleteAttachment(t *testing.T) {
	_, att, store, articleID := setupAttachments(t)
	ctx := context.Background()

	resp, err := att.Upload(ctx, articleID, []UploadItem{
		uploadItem("doc.pdf", "application/pdf", "x"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	id := resp.Attachments[0].ID

	if err := att.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int64
	att.gdb(ctx).Model(&model.Attachment{}).Count(&count)

	if count != 0 || store.len() != 0 {
		t.Errorf("after delete: rows=%d blobs=%d", count, store.len())
	}

	if err := att.Delete(ctx, id); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestListForArticle(t *testing.T) {
	_, att, _, articleID := setupAttachments(t)
	ctx := context.Background()

	if _, err := att.Upload(ctx, articleID, []UploadItem{
		uploadItem("a.pdf", "application/pdf", "1"),
		uploadItem("b.png", "image/png", "22"),
	}); err != nil {
		t.Fatalf("upload: %v", err)
	}

	resp, err := att.ListForArticle(ctx, articleID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if resp.Total != 2 {
		t.Fatalf("total = %d", resp.Total)
	}

	// 没有附件的文章返回空列表
	empty, err := att.ListForArticle(ctx, "no-such-article")
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}

	if empty.Total != 0 || empty.Attachments == nil {
		t.Errorf("empty list = %+v", empty)
	}
}
