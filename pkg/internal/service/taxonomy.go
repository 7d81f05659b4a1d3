package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yeisme/pressvault/pkg/internal/errs"
	"github.com/yeisme/pressvault/pkg/internal/model"
)

// ListCategories 返回全部分类名（按名字排序）。"All" 哨兵由 handle 层拼接.
func (s *ArticleService) ListCategories(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.gdb(ctx).Model(&model.Category{}).
		Order("name").
		Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("%w: list categories: %v", errs.ErrStore, err)
	}

	return names, nil
}

// ListTags 返回全部标签名（按名字排序）.
func (s *ArticleService) ListTags(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.gdb(ctx).Model(&model.Tag{}).
		Order("name").
		Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("%w: list tags: %v", errs.ErrStore, err)
	}

	return names, nil
}

// ensureCategoryTx 按名字幂等建分类。并发下依赖唯一索引兜底.
func ensureCategoryTx(tx *gorm.DB, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: category is required", errs.ErrValidation)
	}

	cat := model.Category{}
	if err := tx.Where(model.Category{Name: name}).
		Attrs(model.Category{ID: uuid.NewString()}).
		FirstOrCreate(&cat).Error; err != nil {
		return fmt.Errorf("ensure category %s: %w", name, err)
	}

	return nil
}

// ensureTagsTx 按名字幂等建标签，返回去重后的标签行.
func ensureTagsTx(tx *gorm.DB, names []string) ([]model.Tag, error) {
	seen := make(map[string]struct{}, len(names))
	tags := make([]model.Tag, 0, len(names))

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}

		tag := model.Tag{}
		if err := tx.Where(model.Tag{Name: name}).
			Attrs(model.Tag{ID: uuid.NewString()}).
			FirstOrCreate(&tag).Error; err != nil {
			return nil, fmt.Errorf("ensure tag %s: %w", name, err)
		}

		tags = append(tags, tag)
	}

	return tags, nil
}

// replaceArticleTagsTx 以新标签集合整体替换文章的标签关联.
func replaceArticleTagsTx(tx *gorm.DB, articleID string, tags []model.Tag) error {
	if err := tx.Where("article_id = ?", articleID).
		Delete(&model.ArticleTag{}).Error; err != nil {
		return fmt.Errorf("clear article tags: %w", err)
	}

	if len(tags) == 0 {
		return nil
	}

	links := make([]model.ArticleTag, 0, len(tags))
	for _, t := range tags {
		links = append(links, model.ArticleTag{ArticleID: articleID, TagID: t.ID})
	}

	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("link article tags: %w", err)
	}

	return nil
}
