package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yeisme/pressvault/pkg/internal/errs"
	"github.com/yeisme/pressvault/pkg/internal/model"
	"github.com/yeisme/pressvault/pkg/internal/types"
	nlog "github.com/yeisme/pressvault/pkg/log"
	"github.com/yeisme/pressvault/pkg/queue"
)

// Create 创建文章。分类与标签在同一事务内幂等建字典并关联，
// 任一步失败整体回滚，不会留下半成品.
func (s *ArticleService) Create(ctx context.Context, req *types.CreateArticleRequest) (*types.ArticleDetail, error) {
	if err := validateArticleFields(req.Title, req.Summary, req.Content, req.Author, req.Category); err != nil {
		return nil, err
	}

	readTime := req.ReadTime
	if readTime <= 0 {
		readTime = DefaultReadTime
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	now := time.Now().UTC()
	art := model.Article{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Summary:     req.Summary,
		Content:     req.Content,
		Author:      strings.TrimSpace(req.Author),
		Category:    strings.TrimSpace(req.Category),
		ReadTime:    readTime,
		Published:   published,
		PublishDate: now,
	}

	err := s.gdb(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCategoryTx(tx, art.Category); err != nil {
			return err
		}

		tags, err := ensureTagsTx(tx, req.Tags)
		if err != nil {
			return err
		}

		if err := tx.Create(&art).Error; err != nil {
			return fmt.Errorf("insert article: %w", err)
		}

		return replaceArticleTagsTx(tx, art.ID, tags)
	})
	if err != nil {
		return nil, wrapTxErr("create article", err)
	}

	s.publishArticleEvent(ctx, queue.TopicArticleCreated, &art, req.Tags)

	// 写操作回读不做 published 过滤，草稿创建也能返回详情
	return s.getDetail(ctx, art.ID, false)
}

// Update 部分更新文章：只修改请求中显式提供的字段。
// 提供 tags 时整体替换标签关联，不提供则保持原有关联不动.
func (s *ArticleService) Update(ctx context.Context, id string, req *types.UpdateArticleRequest) (*types.ArticleDetail, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: article id is required", errs.ErrValidation)
	}

	if err := validateUpdateFields(req); err != nil {
		return nil, err
	}

	var art model.Article

	err := s.gdb(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&art, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: article %s", errs.ErrNotFound, id)
			}

			return fmt.Errorf("load article: %w", err)
		}

		if req.Category != nil {
			if err := ensureCategoryTx(tx, *req.Category); err != nil {
				return err
			}

			art.Category = strings.TrimSpace(*req.Category)
		}

		if req.Title != nil {
			art.Title = strings.TrimSpace(*req.Title)
		}

		if req.Summary != nil {
			art.Summary = *req.Summary
		}

		if req.Content != nil {
			art.Content = *req.Content
		}

		if req.Author != nil {
			art.Author = strings.TrimSpace(*req.Author)
		}

		if req.ReadTime != nil && *req.ReadTime > 0 {
			art.ReadTime = *req.ReadTime
		}

		if req.Published != nil {
			art.Published = *req.Published
		}

		if err := tx.Save(&art).Error; err != nil {
			return fmt.Errorf("update article: %w", err)
		}

		// 未提供 tags 时不碰关联
		if req.Tags == nil {
			return nil
		}

		tags, err := ensureTagsTx(tx, req.Tags)
		if err != nil {
			return err
		}

		return replaceArticleTagsTx(tx, art.ID, tags)
	})
	if err != nil {
		return nil, wrapTxErr("update article", err)
	}

	s.publishArticleEvent(ctx, queue.TopicArticleUpdated, &art, req.Tags)

	return s.getDetail(ctx, art.ID, false)
}

// Delete 删除文章：事务内删除标签关联、附件行与文章行，
// 提交后对附件 blob 做尽力删除（失败仅告警，不影响结果）.
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: article id is required", errs.ErrValidation)
	}

	var art model.Article

	var storageNames []string

	err := s.gdb(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&art, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: article %s", errs.ErrNotFound, id)
			}

			return fmt.Errorf("load article: %w", err)
		}

		if err := tx.Model(&model.Attachment{}).
			Where("article_id = ?", id).
			Pluck("storage_name", &storageNames).Error; err != nil {
			return fmt.Errorf("collect attachment names: %w", err)
		}

		if err := tx.Where("article_id = ?", id).Delete(&model.ArticleTag{}).Error; err != nil {
			return fmt.Errorf("delete article tags: %w", err)
		}

		if err := tx.Where("article_id = ?", id).Delete(&model.Attachment{}).Error; err != nil {
			return fmt.Errorf("delete attachment rows: %w", err)
		}

		if err := tx.Delete(&model.Article{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("delete article: %w", err)
		}

		return nil
	})
	if err != nil {
		return wrapTxErr("delete article", err)
	}

	// 行已删，blob 删除失败只会留下孤儿对象，由定时清扫兜底
	for _, name := range storageNames {
		if e := s.blobs.Remove(ctx, name); e != nil {
			nlog.Logger().Warn().Err(e).Str("object", name).Msg("remove attachment blob failed")
		}
	}

	s.publishArticleEvent(ctx, queue.TopicArticleDeleted, &art, nil)

	return nil
}

func validateArticleFields(title, summary, content, author, category string) error {
	switch {
	case strings.TrimSpace(title) == "":
		return fmt.Errorf("%w: title is required", errs.ErrValidation)
	case strings.TrimSpace(summary) == "":
		return fmt.Errorf("%w: summary is required", errs.ErrValidation)
	case strings.TrimSpace(content) == "":
		return fmt.Errorf("%w: content is required", errs.ErrValidation)
	case strings.TrimSpace(author) == "":
		return fmt.Errorf("%w: author is required", errs.ErrValidation)
	case strings.TrimSpace(category) == "":
		return fmt.Errorf("%w: category is required", errs.ErrValidation)
	}

	return nil
}

// validateUpdateFields 部分更新校验：提供了的字段不允许为空白.
func validateUpdateFields(req *types.UpdateArticleRequest) error {
	fields := []struct {
		name string
		val  *string
	}{
		{"title", req.Title},
		{"summary", req.Summary},
		{"content", req.Content},
		{"author", req.Author},
		{"category", req.Category},
	}

	for _, f := range fields {
		if f.val != nil && strings.TrimSpace(*f.val) == "" {
			return fmt.Errorf("%w: %s cannot be empty", errs.ErrValidation, f.name)
		}
	}

	return nil
}

// wrapTxErr 事务错误归类：已分类的错误原样返回，其余按存储故障处理.
func wrapTxErr(op string, err error) error {
	if errors.Is(err, errs.ErrValidation) || errors.Is(err, errs.ErrNotFound) {
		return err
	}

	return fmt.Errorf("%w: %s: %v", errs.ErrStore, op, err)
}
