package service

import (
	"context"
	"testing"
	"time"

	"github.com/yeisme/pressvault/pkg/internal/types"
)

func mustCreate(t *testing.T, svc *ArticleService, req *types.CreateArticleRequest) *types.ArticleDetail {
	t.Helper()

	art, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("create article %q: %v", req.Title, err)
	}

	// created_at 作为排序键，保证多条记录时间戳可区分
	time.Sleep(5 * time.Millisecond)

	return art
}

func boolPtr(b bool) *bool { return &b }

func TestListPublishedOnly(t *testing.T) {
	svc, _ := newTestArticleService(t)
	ctx := context.Background()

	mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "visible", Summary: "s", Content: "c", Author: "a", Category: "Tech",
	})
	mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "draft", Summary: "s", Content: "c", Author: "a", Category: "Tech",
		Published: boolPtr(false),
	})

	resp, err := svc.List(ctx, &types.ListArticlesRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(resp.Articles) != 1 || resp.Articles[0].Title != "visible" {
		t.Fatalf("expected only published article, got %+v", resp.Articles)
	}

	if resp.Pagination.Total != 1 {
		t.Errorf("total = %d, want 1", resp.Pagination.Total)
	}
}

func TestListCategoryFilter(t *testing.T) {
	svc, _ := newTestArticleService(t)
	ctx := context.Background()

	mustCreate(t, svc, &types.CreateArticleRequest{Title: "t1", Summary: "s", Content: "c", Author: "a", Category: "Tech"})
	mustCreate(t, svc, &types.CreateArticleRequest{Title: "t2", Summary: "s", Content: "c", Author: "a", Category: "Life"})

	resp, err := svc.List(ctx, &types.ListArticlesRequest{Category: "Tech"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(resp.Articles) != 1 || resp.Articles[0].Category != "Tech" {
		t.Fatalf("category filter failed: %+v", resp.Articles)
	}

	// "All" 与空串等价于不过滤
	for _, cat := range []string{"All", ""} {
		resp, err = svc.List(ctx, &types.ListArticlesRequest{Category: cat})
		if err != nil {
			t.Fatalf("list category=%q: %v", cat, err)
		}

		if len(resp.Articles) != 2 {
			t.Errorf("category=%q: got %d articles, want 2", cat, len(resp.Articles))
		}
	}
}

func TestListSearch(t *testing.T) {
	svc, _ := newTestArticleService(t)
	ctx := context.Background()

	mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "Go concurrency", Summary: "channels", Content: "select loops", Author: "rob", Category: "Tech",
	})
	mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "Gardening", Summary: "soil", Content: "compost and worms", Author: "alice", Category: "Life",
	})

	cases := []struct {
		search string
		want   string
	}{
		{"concurrency", "Go concurrency"}, // 标题
		{"soil", "Gardening"},             // 摘要
		{"worms", "Gardening"},            // 正文
		{"rob", "Go concurrency"},         // 作者
		{"CONCURRENCY", "Go concurrency"}, // 大小写不敏感
		{"gArDeN", "Gardening"},
	}

	for _, tc := range cases {
		resp, err := svc.List(ctx, &types.ListArticlesRequest{Search: tc.search})
		if err != nil {
			t.Fatalf("list search=%q: %v", tc.search, err)
		}

		if len(resp.Articles) != 1 || resp.Articles[0].Title != tc.want {
			t.Errorf("search=%q: got %+v, want single %q", tc.search, resp.Articles, tc.want)
		}
	}

	resp, err := svc.List(ctx, &types.ListArticlesRequest{Search: "nothing-matches"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(resp.Articles) != 0 || resp.Pagination.Total != 0 {
		t.Errorf("expected empty result, got %+v", resp)
	}
}

func TestListTagAndMatch(t *testing.T) {
	svc, _ := newTestArticleService(t)
	ctx := context.Background()

	mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "both", Summary: "s", Content: "c", Author: "a", Category: "Tech", Tags: []string{"go", "web"},
	})
	mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "only-go", Summary: "s", Content: "c", Author: "a", Category: "Tech", Tags: []string{"go"},
	})

	// 重复传参与逗号分隔两种写法等价
	for _, tags := range [][]string{{"go", "web"}, {"go,web"}} {
		resp, err := svc.List(ctx, &types.ListArticlesRequest{Tags: tags})
		if err != nil {
			t.Fatalf("list tags=%v: %v", tags, err)
		}

		if len(resp.Articles) != 1 || resp.Articles[0].Title != "both" {
			t.Fatalf("tag AND match tags=%v: %+v", tags, resp.Articles)
		}

		if resp.Pagination.Total != 1 {
			t.Errorf("total honours tag filter: got %d, want 1", resp.Pagination.Total)
		}
	}

	resp, err := svc.List(ctx, &types.ListArticlesRequest{Tags: []string{"go"}})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(resp.Articles) != 2 {
		t.Errorf("single tag: got %d, want 2", len(resp.Articles))
	}
}

func TestListPaginationAndOrder(t *testing.T) {
	svc, _ := newTestArticleService(t)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		mustCreate(t, svc, &types.CreateArticleRequest{
			Title: title, Summary: "s", Content: "c", Author: "a", Category: "Tech",
		})
	}

	resp, err := svc.List(ctx, &types.ListArticlesRequest{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(resp.Articles) != 2 {
		t.Fatalf("page 1: got %d, want 2", len(resp.Articles))
	}

	// 最新在前
	if resp.Articles[0].Title != "third" || resp.Articles[1].Title != "second" {
		t.Errorf("order: got %q, %q", resp.Articles[0].Title, resp.Articles[1].Title)
	}

	if resp.Pagination.Total != 3 || resp.Pagination.Pages != 2 {
		t.Errorf("pagination = %+v, want total 3 pages 2", resp.Pagination)
	}

	resp, err = svc.List(ctx, &types.ListArticlesRequest{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}

	if len(resp.Articles) != 1 || resp.Articles[0].Title != "first" {
		t.Errorf("page 2: got %+v", resp.Articles)
	}

	// 越界页返回空列表而不是错误
	resp, err = svc.List(ctx, &types.ListArticlesRequest{Page: 9, Limit: 2})
	if err != nil {
		t.Fatalf("list page 9: %v", err)
	}

	if len(resp.Articles) != 0 {
		t.Errorf("out of range page: got %d articles", len(resp.Articles))
	}
}

func TestListCombinedFilters(t *testing.T) {
	svc, _ := newTestArticleService(t)
	ctx := context.Background()

	mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "Go tips", Summary: "s", Content: "c", Author: "a", Category: "Tech", Tags: []string{"go"},
	})
	mustCreate(t, svc, &types.CreateArticleRequest{
		Title: "Go stories", Summary: "s", Content: "c", Author: "a", Category: "Life", Tags: []string{"go"},
	})

	resp, err := svc.List(ctx, &types.ListArticlesRequest{Category: "Tech", Search: "Go", Tags: []string{"go"}})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(resp.Articles) != 1 || resp.Articles[0].Title != "Go tips" {
		t.Fatalf("combined filters: %+v", resp.Articles)
	}

	if resp.Pagination.Total != 1 {
		t.Errorf("combined total = %d, want 1", resp.Pagination.Total)
	}
}
