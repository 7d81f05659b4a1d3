package service

import (
	"context"
	"errors"
	"testing"

	"github.com/yeisme/pressvault/pkg/internal/errs"
	"github.com/yeisme/pressvault/pkg/internal/model"
	"github.com/yeisme/pressvault/pkg/internal/types"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestCreateArticleDefaults(t *testing.T) {
	svc, _ := newTestArticleService(t)
	ctx := context.Background()

	art, err := svc.Create(ctx, &types.CreateArticleRequest{
		Title: "  hello  ", Summary: "s", Content: "body", Author: "alice", Category: "Tech",
		Tags: []string{"go", "web", "go", " "},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if art.Title != "hello" {
		t.Errorf("title not trimmed: %q", art.Title)
	}

	if art.ReadTime != DefaultReadTime {
		t.Errorf("read time = %d, want %d", art.ReadTime, DefaultReadTime)
	}

	if !art.Published {
		t.Error("article should default to published")
	}

	// 标签去重去空白，按名字排序返回
	if len(art.Tags) != 2 || art.Tags[0] != "go" || art.Tags[1] != "web" {
		t.Errorf("tags = %v", art.Tags)
	}

	// 分类与标签字典落库
	var catCount, tagCount int64
	svc.gdb(ctx).Model(&model.Category{}).Count(&catCount)
	svc.gdb(ctx).Model(&model.Tag{}).Count(&tagCount)

	if catCount != 1 || tagCount != 2 {
		t.Errorf("taxonomy rows: categories=%d tags=%d", catCount, tagCount)
	}
}

func TestCreateArticleValidation(t *testing.T) {
	svc, _ := newTestArticleService(t)
	ctx := context.Background()

	cases := []*types.CreateArticleRequest{
		{Summary: "s", Content: "c", Author: "a", Category: "Tech"},            // 缺标题
		{Title: "t", Content: "c", Author: "a", Category: "Tech"},              // 缺摘要
		{Title: "t", Summary: "s", Author: "a", Category: "Tech"},              // 缺正文
		{Title: "t", Summary: "s", Content: "c", Category: "Tech"},             // 缺作者
		{Title: "t", Summary: "s", Content: "c", Author: "a"},                  // 缺分类
		{Title: "   ", Summary: "s", Content: "c", Author: "a", Category: "T"}, // 空白标题
		{Title: "t", Summary: "  ", Content: "c", Author: "a", Category: "T"},  // 空白摘要
	}

	for i, req := range cases {
		if _, err := svc.Create(ctx, req); !errors.Is(err, errs.ErrValidation) {
			t.Errorf("case %d: err = %v, want ErrValidation", i, err)
		}
	}

	// 校验失败不应留下任何行
	var count int64
	svc.gdb(ctx).Model(&model.Article{}).Count(&count)

	if count != 0 {
		t.Errorf("articles after failed creates: %d", count)
	}
}

func TestUpdateArticleReplacesTags(t *testing.T) {
	svc, _ := newTestArticleService(t)
	ctx := context.Background()

	art := mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "t", Summary: "s", Content: "c", Author: "a", Category: "Tech", Tags: []string{"old", "keep"},
	})

	updated, err := svc.Update(ctx, art.ID, &types.UpdateArticleRequest{
		Title: strPtr("t2"), Content: strPtr("c2"), Category: strPtr("Life"),
		Tags: []string{"keep", "new"}, ReadTime: intPtr(8),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Title != "t2" || updated.Category != "Life" || updated.ReadTime != 8 {
		t.Errorf("updated fields: %+v", updated.ArticleSummary)
	}

	if len(updated.Tags) != 2 || updated.Tags[0] != "keep" || updated.Tags[1] != "new" {
		t.Errorf("tags after update: %v", updated.Tags)
	}

	// 旧标签的字典行保留，仅解除关联
	var tagCount int64
	svc.gdb(ctx).Model(&model.Tag{}).Count(&tagCount)

	if tagCount != 3 {
		t.Errorf("tag dictionary rows = %d, want 3", tagCount)
	}

	var linkCount int64
	svc.gdb(ctx).Model(&model.ArticleTag{}).Where("article_id = ?", art.ID).Count(&linkCount)

	if linkCount != 2 {
		t.Errorf("link rows = %d, want 2", linkCount)
	}
}

func TestUpdateArticlePartial(t *testing.T) {
	svc, _ := newTestArticleService(t)
	ctx := context.Background()

	art := mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "t", Summary: "s", Content: "c", Author: "a", Category: "Tech", Tags: []string{"a", "b"},
	})

	// 只改标题：其余字段与标签关联都不能动
	updated, err := svc.Update(ctx, art.ID, &types.UpdateArticleRequest{Title: strPtr("t2")})
	if err != nil {
		t.Fatalf("update title: %v", err)
	}

	if updated.Title != "t2" {
		t.Errorf("title = %q, want t2", updated.Title)
	}

	if updated.Summary != "s" || updated.Author != "a" || updated.Category != "Tech" {
		t.Errorf("untouched fields changed: %+v", updated.ArticleSummary)
	}

	if len(updated.Tags) != 2 || updated.Tags[0] != "a" || updated.Tags[1] != "b" {
		t.Errorf("tags after title-only update: %v, want [a b]", updated.Tags)
	}

	// 显式提供 tags 才替换关联
	updated, err = svc.Update(ctx, art.ID, &types.UpdateArticleRequest{Tags: []string{"c"}})
	if err != nil {
		t.Fatalf("update tags: %v", err)
	}

	if len(updated.Tags) != 1 || updated.Tags[0] != "c" {
		t.Errorf("tags after replace: %v, want [c]", updated.Tags)
	}
}

func TestUpdateArticleValidation(t *testing.T) {
	svc, _ := newTestArticleService(t)
	ctx := context.Background()

	art := mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "t", Summary: "s", Content: "c", Author: "a", Category: "Tech",
	})

	// 提供了的字段不允许为空白
	cases := []*types.UpdateArticleRequest{
		{Title: strPtr("  ")},
		{Summary: strPtr("")},
		{Content: strPtr("")},
		{Author: strPtr(" ")},
		{Category: strPtr("")},
	}

	for i, req := range cases {
		if _, err := svc.Update(ctx, art.ID, req); !errors.Is(err, errs.ErrValidation) {
			t.Errorf("case %d: err = %v, want ErrValidation", i, err)
		}
	}

	got, err := svc.Get(ctx, art.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if got.Title != "t" || got.Summary != "s" {
		t.Errorf("article changed by rejected updates: %+v", got.ArticleSummary)
	}
}

func TestCreateDraftArticle(t *testing.T) {
	svc, _ := newTestArticleService(t)
	ctx := context.Background()

	art := mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "draft", Summary: "s", Content: "c", Author: "a", Category: "Tech",
		Published: boolPtr(false),
	})

	if art.Published {
		t.Fatal("created draft came back published")
	}

	// 落库的行也必须是 false
	var row model.Article
	if err := svc.gdb(ctx).First(&row, "id = ?", art.ID).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}

	if row.Published {
		t.Fatal("draft stored as published")
	}

	// 草稿对公开读接口视同不存在
	if _, err := svc.Get(ctx, art.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("get draft err = %v, want ErrNotFound", err)
	}

	// 发布后可见
	if _, err := svc.Update(ctx, art.ID, &types.UpdateArticleRequest{Published: boolPtr(true)}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if _, err := svc.Get(ctx, art.ID); err != nil {
		t.Errorf("get after publish: %v", err)
	}
}

func TestUpdateArticleNotFound(t *testing.T) {
	svc, _ := newTestArticleService(t)

	_, err := svc.Update(context.Background(), "missing-id", &types.UpdateArticleRequest{
		Title: strPtr("t"),
	})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteArticleCascades(t *testing.T) {
	svc, store := newTestArticleService(t)
	ctx := context.Background()

	art := mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "t", Summary: "s", Content: "c", Author: "a", Category: "Tech", Tags: []string{"go"},
	})

	att := newTestAttachmentService(t, svc, store)

	if _, err := att.Upload(ctx, art.ID, []UploadItem{
		uploadItem("doc.pdf", "application/pdf", "pdf-bytes"),
	}); err != nil {
		t.Fatalf("upload: %v", err)
	}

	if store.len() != 1 {
		t.Fatalf("expected 1 blob before delete")
	}

	if err := svc.Delete(ctx, art.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// 行与 blob 都应消失
	for _, m := range []any{&model.Article{}, &model.ArticleTag{}, &model.Attachment{}} {
		var count int64

		svc.gdb(ctx).Model(m).Count(&count)

		if count != 0 {
			t.Errorf("%T rows after delete: %d", m, count)
		}
	}

	if store.len() != 0 {
		t.Errorf("blobs after delete: %d", store.len())
	}

	if err := svc.Delete(ctx, art.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestGetArticle(t *testing.T) {
	svc, _ := newTestArticleService(t)
	ctx := context.Background()

	art := mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "t", Summary: "s", Content: "full body", Author: "a", Category: "Tech",
	})

	got, err := svc.Get(ctx, art.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if got.Content != "full body" {
		t.Errorf("content = %q", got.Content)
	}

	if _, err := svc.Get(ctx, "missing"); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("missing get err = %v, want ErrNotFound", err)
	}

	if _, err := svc.Get(ctx, ""); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("empty id err = %v, want ErrValidation", err)
	}
}
