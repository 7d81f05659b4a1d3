package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yeisme/pressvault/pkg/internal/errs"
	"github.com/yeisme/pressvault/pkg/internal/model"
	"github.com/yeisme/pressvault/pkg/internal/types"
)

// List 按过滤条件分页查询已发布文章。所有条件都走参数绑定：
//   - category 精确匹配（空或 "All" 不过滤）
//   - search 对标题/摘要/正文/作者做不区分大小写的 LIKE 模糊匹配
//   - tags 要求文章同时具备全部标签（子查询 GROUP BY + HAVING 计数）
//
// total 统计与翻页查询使用完全相同的过滤条件.
func (s *ArticleService) List(ctx context.Context, req *types.ListArticlesRequest) (*types.ListArticlesResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}

	limit := req.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	tags := splitTagNames(req.Tags)

	// count 与 find 各自从干净的查询链开始，避免 gorm 语句状态互相污染
	build := func() *gorm.DB {
		q := s.gdb(ctx).Model(&model.Article{}).Where("published = ?", true)

		if cat := strings.TrimSpace(req.Category); cat != "" && cat != CategoryAll {
			q = q.Where("category = ?", cat)
		}

		if search := strings.TrimSpace(req.Search); search != "" {
			// 两侧都 LOWER，保证在 PostgreSQL 上也是不区分大小写的匹配
			like := "%" + strings.ToLower(search) + "%"
			q = q.Where(
				"LOWER(title) LIKE ? OR LOWER(summary) LIKE ? OR LOWER(content) LIKE ? OR LOWER(author) LIKE ?",
				like, like, like, like,
			)
		}

		if len(tags) > 0 {
			sub := s.gdb(ctx).Model(&model.ArticleTag{}).
				Select("article_tags.article_id").
				Joins("JOIN tags ON tags.id = article_tags.tag_id").
				Where("tags.name IN ?", tags).
				Group("article_tags.article_id").
				Having("COUNT(DISTINCT tags.name) = ?", len(tags))
			q = q.Where("id IN (?)", sub)
		}

		return q
	}

	var total int64
	if err := build().Count(&total).Error; err != nil {
		return nil, fmt.Errorf("%w: count articles: %v", errs.ErrStore, err)
	}

	var rows []model.Article
	if err := build().
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: list articles: %v", errs.ErrStore, err)
	}

	summaries, err := s.decorateArticles(ctx, rows)
	if err != nil {
		return nil, err
	}

	return &types.ListArticlesResponse{
		Articles:   summaries,
		Pagination: types.NewPagination(page, limit, total),
	}, nil
}

// Get 查询单篇已发布文章详情（含标签与附件）。
// 草稿对公开读接口视同不存在.
func (s *ArticleService) Get(ctx context.Context, id string) (*types.ArticleDetail, error) {
	return s.getDetail(ctx, id, true)
}

// getDetail 装配文章详情。写操作回读时 publishedOnly=false，草稿也能取到.
func (s *ArticleService) getDetail(ctx context.Context, id string, publishedOnly bool) (*types.ArticleDetail, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: article id is required", errs.ErrValidation)
	}

	q := s.gdb(ctx)
	if publishedOnly {
		q = q.Where("published = ?", true)
	}

	var art model.Article
	if err := q.First(&art, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: article %s", errs.ErrNotFound, id)
		}

		return nil, fmt.Errorf("%w: get article: %v", errs.ErrStore, err)
	}

	summaries, err := s.decorateArticles(ctx, []model.Article{art})
	if err != nil {
		return nil, err
	}

	return &types.ArticleDetail{
		ArticleSummary: summaries[0],
		Content:        art.Content,
	}, nil
}

// decorateArticles 批量装配标签名与附件列表，避免逐篇 N+1 查询.
func (s *ArticleService) decorateArticles(ctx context.Context, rows []model.Article) ([]types.ArticleSummary, error) {
	ids := make([]string, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}

	tagsByArticle := make(map[string][]string, len(ids))

	if len(ids) > 0 {
		type tagRow struct {
			ArticleID string
			Name      string
		}

		var trs []tagRow
		if err := s.gdb(ctx).Model(&model.ArticleTag{}).
			Select("article_tags.article_id AS article_id, tags.name AS name").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("article_tags.article_id IN ?", ids).
			Order("tags.name").
			Scan(&trs).Error; err != nil {
			return nil, fmt.Errorf("%w: load article tags: %v", errs.ErrStore, err)
		}

		for _, tr := range trs {
			tagsByArticle[tr.ArticleID] = append(tagsByArticle[tr.ArticleID], tr.Name)
		}
	}

	attByArticle := make(map[string][]types.AttachmentInfo, len(ids))

	if len(ids) > 0 {
		var atts []model.Attachment
		if err := s.gdb(ctx).
			Where("article_id IN ?", ids).
			Order("uploaded_at").
			Find(&atts).Error; err != nil {
			return nil, fmt.Errorf("%w: load attachments: %v", errs.ErrStore, err)
		}

		for i := range atts {
			attByArticle[atts[i].ArticleID] = append(attByArticle[atts[i].ArticleID], attachmentInfo(&atts[i]))
		}
	}

	summaries := make([]types.ArticleSummary, 0, len(rows))

	for i := range rows {
		a := &rows[i]

		tags := tagsByArticle[a.ID]
		if tags == nil {
			tags = []string{}
		}

		atts := attByArticle[a.ID]
		if atts == nil {
			atts = []types.AttachmentInfo{}
		}

		summaries = append(summaries, types.ArticleSummary{
			ID:          a.ID,
			Title:       a.Title,
			Summary:     a.Summary,
			Author:      a.Author,
			Category:    a.Category,
			ReadTime:    a.ReadTime,
			Published:   a.Published,
			PublishDate: a.PublishDate,
			Tags:        tags,
			Attachments: atts,
			CreatedAt:   a.CreatedAt,
			UpdatedAt:   a.UpdatedAt,
		})
	}

	return summaries, nil
}

// splitTagNames 解析标签过滤参数：既接受重复传参也接受逗号分隔，
// 去重去空白.
func splitTagNames(raw []string) []string {
	seen := make(map[string]struct{})

	var out []string

	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			name := strings.TrimSpace(part)
			if name == "" {
				continue
			}

			if _, ok := seen[name]; ok {
				continue
			}

			seen[name] = struct{}{}

			out = append(out, name)
		}
	}

	return out
}
