package service

import (
	"context"
	"testing"

	"github.com/yeisme/pressvault/pkg/internal/model"
	"github.com/yeisme/pressvault/pkg/internal/types"
)

func TestTaxonomyDedup(t *testing.T) {
	svc, _ := newTestArticleService(t)
	ctx := context.Background()

	// 两篇文章共享分类与标签，字典各保留一行
	mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "t1", Summary: "s", Content: "c", Author: "a", Category: "Tech", Tags: []string{"go"},
	})
	mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "t2", Summary: "s", Content: "c", Author: "a", Category: "Tech", Tags: []string{"go", "web"},
	})

	var catCount, tagCount int64
	svc.gdb(ctx).Model(&model.Category{}).Count(&catCount)
	svc.gdb(ctx).Model(&model.Tag{}).Count(&tagCount)

	if catCount != 1 {
		t.Errorf("categories = %d, want 1", catCount)
	}

	if tagCount != 2 {
		t.Errorf("tags = %d, want 2", tagCount)
	}
}

func TestListCategoriesAndTags(t *testing.T) {
	svc, _ := newTestArticleService(t)
	ctx := context.Background()

	mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "t1", Summary: "s", Content: "c", Author: "a", Category: "Zoo", Tags: []string{"beta"},
	})
	mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "t2", Summary: "s", Content: "c", Author: "a", Category: "Art", Tags: []string{"alpha"},
	})

	cats, err := svc.ListCategories(ctx)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}

	if len(cats) != 2 || cats[0] != "Art" || cats[1] != "Zoo" {
		t.Errorf("categories = %v", cats)
	}

	tags, err := svc.ListTags(ctx)
	if err != nil {
		t.Fatalf("list tags: %v", err)
	}

	if len(tags) != 2 || tags[0] != "alpha" || tags[1] != "beta" {
		t.Errorf("tags = %v", tags)
	}
}
