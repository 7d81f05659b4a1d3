package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/yeisme/pressvault/pkg/configs"
	ctxPkg "github.com/yeisme/pressvault/pkg/context"
	"github.com/yeisme/pressvault/pkg/internal/errs"
	"github.com/yeisme/pressvault/pkg/internal/model"
	"github.com/yeisme/pressvault/pkg/internal/storage/db"
	"github.com/yeisme/pressvault/pkg/internal/storage/mq"
	"github.com/yeisme/pressvault/pkg/internal/types"
	"github.com/yeisme/pressvault/pkg/queue"
	nlog "github.com/yeisme/pressvault/pkg/log"
)

// BlobStore 抽象附件 blob 的读写，生产实现为 s3.Client.
type BlobStore interface {
	Write(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Remove(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
}

// UploadItem 一个待上传的附件.
type UploadItem struct {
	Name        string
	Size        int64
	ContentType string
	Reader      io.Reader
}

// DownloadResult 附件下载流与元数据。Content-Type 按粗分类反推.
type DownloadResult struct {
	Body         io.ReadCloser
	OriginalName string
	ContentType  string
	Size         int64
}

// AttachmentService 负责附件上传/下载/删除，维护行与 blob 的一致性.
type AttachmentService struct {
	dbClient *db.Client
	mqClient *mq.Client
	blobs    BlobStore
	bucket   string
	cfg      configs.UploadConfig
}

// NewAttachmentService 从 context 获取依赖实例。MQ 允许为 nil.
func NewAttachmentService(c context.Context) *AttachmentService {
	dbc := ctxPkg.GetDBClient(c)
	s3c := ctxPkg.GetS3Client(c)

	if dbc == nil || dbc.DB == nil || s3c == nil || s3c.Client == nil {
		nlog.Logger().Fatal().Msg("storage clients not initialized")
	}

	return &AttachmentService{
		dbClient: dbc,
		mqClient: ctxPkg.GetMQClient(c),
		blobs:    s3c,
		bucket:   s3c.Bucket(),
		cfg:      configs.GetConfig().Upload,
	}
}

func (s *AttachmentService) gdb(ctx context.Context) *gorm.DB {
	return s.dbClient.DB.WithContext(ctx)
}

// Upload 批量上传附件到指定文章。全部成功或整体失败：
// 任一文件校验或写入失败时，撤销本批已写入的 blob 并返回错误，
// 已存在的附件不受影响.
func (s *AttachmentService) Upload(ctx context.Context, articleID string, items []UploadItem) (*types.UploadAttachmentsResponse, error) {
	if strings.TrimSpace(articleID) == "" {
		return nil, fmt.Errorf("%w: article id is required", errs.ErrValidation)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no files provided", errs.ErrValidation)
	}

	if max := s.cfg.MaxFileCount; max > 0 && len(items) > max {
		return nil, fmt.Errorf("%w: at most %d files per upload", errs.ErrValidation, max)
	}

	var art model.Article
	if err := s.gdb(ctx).Select("id").First(&art, "id = ?", articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: article %s", errs.ErrNotFound, articleID)
		}

		return nil, fmt.Errorf("%w: load article: %v", errs.ErrStore, err)
	}

	for i := range items {
		if err := s.validateItem(&items[i]); err != nil {
			return nil, err
		}
	}

	// 先写 blob，失败则撤销本批已写入的对象
	written := make([]string, 0, len(items))
	rows := make([]model.Attachment, 0, len(items))
	now := time.Now().UTC()

	for i := range items {
		item := &items[i]
		storageName := newStorageName(item.Name)

		if err := s.blobs.Write(ctx, storageName, item.Reader, item.Size, item.ContentType); err != nil {
			s.cleanupBlobs(ctx, written)

			return nil, fmt.Errorf("%w: store %s: %v", errs.ErrStore, item.Name, err)
		}

		written = append(written, storageName)

		rows = append(rows, model.Attachment{
			ID:           uuid.NewString(),
			ArticleID:    articleID,
			OriginalName: item.Name,
			StorageName:  storageName,
			Size:         item.Size,
			ContentType:  item.ContentType,
			FileType:     CoarseFileType(item.ContentType),
			UploadedAt:   now,
		})
	}

	if err := s.gdb(ctx).Create(&rows).Error; err != nil {
		s.cleanupBlobs(ctx, written)

		return nil, fmt.Errorf("%w: insert attachments: %v", errs.ErrStore, err)
	}

	infos := make([]types.AttachmentInfo, 0, len(rows))

	for i := range rows {
		infos = append(infos, attachmentInfo(&rows[i]))
		s.publishAttachmentEvent(ctx, queue.TopicAttachmentStored, &rows[i], s.bucket)
	}

	return &types.UploadAttachmentsResponse{Attachments: infos, Total: len(infos)}, nil
}

// Download 打开附件下载流。行缺失或 blob 缺失都按不存在处理.
func (s *AttachmentService) Download(ctx context.Context, id string) (*DownloadResult, error) {
	att, err := s.loadAttachment(ctx, id)
	if err != nil {
		return nil, err
	}

	ok, err := s.blobs.Exists(ctx, att.StorageName)
	if err != nil {
		return nil, fmt.Errorf("%w: stat blob %s: %v", errs.ErrStore, att.StorageName, err)
	}

	if !ok {
		return nil, fmt.Errorf("%w: attachment blob %s", errs.ErrNotFound, id)
	}

	body, err := s.blobs.Open(ctx, att.StorageName)
	if err != nil {
		return nil, fmt.Errorf("%w: open blob %s: %v", errs.ErrStore, att.StorageName, err)
	}

	return &DownloadResult{
		Body:         body,
		OriginalName: att.OriginalName,
		ContentType:  MIMEForFileType(att.FileType),
		Size:         att.Size,
	}, nil
}

// Delete 删除附件：行先删（保证元数据立即消失），blob 尽力删除，
// 失败只告警，孤儿对象由定时清扫兜底.
func (s *AttachmentService) Delete(ctx context.Context, id string) error {
	att, err := s.loadAttachment(ctx, id)
	if err != nil {
		return err
	}

	if err := s.gdb(ctx).Delete(&model.Attachment{}, "id = ?", att.ID).Error; err != nil {
		return fmt.Errorf("%w: delete attachment row: %v", errs.ErrStore, err)
	}

	if e := s.blobs.Remove(ctx, att.StorageName); e != nil {
		nlog.Logger().Warn().Err(e).Str("object", att.StorageName).Msg("remove attachment blob failed")
	}

	s.publishAttachmentEvent(ctx, queue.TopicAttachmentDeleted, att, s.bucket)

	return nil
}

// ListForArticle 列出某篇文章的全部附件元数据.
func (s *AttachmentService) ListForArticle(ctx context.Context, articleID string) (*types.ListAttachmentsResponse, error) {
	if strings.TrimSpace(articleID) == "" {
		return nil, fmt.Errorf("%w: article id is required", errs.ErrValidation)
	}

	var rows []model.Attachment
	if err := s.gdb(ctx).
		Where("article_id = ?", articleID).
		Order("uploaded_at").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: list attachments: %v", errs.ErrStore, err)
	}

	infos := make([]types.AttachmentInfo, 0, len(rows))
	for i := range rows {
		infos = append(infos, attachmentInfo(&rows[i]))
	}

	return &types.ListAttachmentsResponse{Attachments: infos, Total: len(infos)}, nil
}

func (s *AttachmentService) loadAttachment(ctx context.Context, id string) (*model.Attachment, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: attachment id is required", errs.ErrValidation)
	}

	var att model.Attachment
	if err := s.gdb(ctx).First(&att, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: attachment %s", errs.ErrNotFound, id)
		}

		return nil, fmt.Errorf("%w: load attachment: %v", errs.ErrStore, err)
	}

	return &att, nil
}

func (s *AttachmentService) validateItem(item *UploadItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: file name is required", errs.ErrValidation)
	}

	if max := s.cfg.MaxFileSize; max > 0 && item.Size > max {
		return fmt.Errorf("%w: %s exceeds %s", errs.ErrPayloadTooLarge, item.Name, FormatFileSize(max))
	}

	if !s.cfg.IsAllowedType(item.ContentType) {
		return fmt.Errorf("%w: %s (%s)", errs.ErrUnsupportedMedia, item.Name, item.ContentType)
	}

	return nil
}

// cleanupBlobs 撤销本批已写入的对象，只影响传入的名字.
func (s *AttachmentService) cleanupBlobs(ctx context.Context, names []string) {
	for _, name := range names {
		if err := s.blobs.Remove(ctx, name); err != nil {
			nlog.Logger().Warn().Err(err).Str("object", name).Msg("cleanup uploaded blob failed")
		}
	}
}

// newStorageName 生成对象键：ULID + 原始扩展名，避免键冲突且可按时间排序.
func newStorageName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))

	return ulid.Make().String() + ext
}

func attachmentInfo(att *model.Attachment) types.AttachmentInfo {
	return types.AttachmentInfo{
		ID:           att.ID,
		ArticleID:    att.ArticleID,
		OriginalName: att.OriginalName,
		Size:         att.Size,
		SizeText:     FormatFileSize(att.Size),
		ContentType:  att.ContentType,
		FileType:     att.FileType,
		UploadedAt:   att.UploadedAt,
		DownloadURL:  "/api/v1/attachments/" + att.ID + "/download",
	}
}
