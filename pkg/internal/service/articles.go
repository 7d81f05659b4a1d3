package service

import (
	"context"

	"gorm.io/gorm"

	ctxPkg "github.com/yeisme/pressvault/pkg/context"
	"github.com/yeisme/pressvault/pkg/internal/storage/db"
	"github.com/yeisme/pressvault/pkg/internal/storage/mq"
	nlog "github.com/yeisme/pressvault/pkg/log"
)

const (
	// DefaultPageSize 列表默认每页条数.
	DefaultPageSize = 10
	// MaxPageSize 每页条数上限，防止一次拉取过多.
	MaxPageSize = 100
	// DefaultReadTime 未指定时的预计阅读时长（分钟）.
	DefaultReadTime = 5
	// CategoryAll 分类过滤的"全部"哨兵值，等价于不过滤.
	CategoryAll = "All"
)

// ArticleService 负责文章及其分类/标签的业务逻辑，不处理 HTTP 细节.
// 删除文章时还要清理附件 blob，因此持有 BlobStore.
type ArticleService struct {
	dbClient *db.Client
	mqClient *mq.Client
	blobs    BlobStore
}

// NewArticleService 从 context 获取依赖实例。MQ 允许为 nil（事件降级为不发布）.
func NewArticleService(c context.Context) *ArticleService {
	dbc := ctxPkg.GetDBClient(c)
	s3c := ctxPkg.GetS3Client(c)

	// 为了安全起见，应该直接 panic 而不是返回 nil，依赖此服务就不需要再检查
	if dbc == nil || dbc.DB == nil || s3c == nil || s3c.Client == nil {
		nlog.Logger().Fatal().Msg("storage clients not initialized")
	}

	return &ArticleService{
		dbClient: dbc,
		mqClient: ctxPkg.GetMQClient(c),
		blobs:    s3c,
	}
}

func (s *ArticleService) gdb(ctx context.Context) *gorm.DB {
	return s.dbClient.DB.WithContext(ctx)
}
