// Package jobs 负责注册与实现业务定时任务（基于 scheduler）。
package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	ctxPkg "github.com/yeisme/pressvault/pkg/context"
	"github.com/yeisme/pressvault/pkg/internal/model"
	"github.com/yeisme/pressvault/pkg/internal/storage"
	"github.com/yeisme/pressvault/pkg/log"
	"github.com/yeisme/pressvault/pkg/scheduler"
)

// orphanGracePeriod 新写入的对象可能行还没提交，一小时内的键不删.
// 对象键以 ULID 开头，自带毫秒时间戳，直接从键名解析写入时间.
const orphanGracePeriod = time.Hour

// RegisterCronJobs 配置业务定时任务：
//   - 每天 03:30 清理对象存储中的孤儿附件 blob
//     （行先删、blob 删除失败，或上传中途崩溃都可能留下孤儿对象）
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	// 将 storage manager 注入到 context，便于任务内访问客户端
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	_ = sched.AddCron(JobOrphanBlobSweep, CronOrphanBlobSweep, func(ctx context.Context) {
		runOrphanBlobSweep(ctx, mgr)
	}, baseCtx)

	return nil
}

// runOrphanBlobSweep 对比对象存储与附件表，删除没有行引用的对象.
func runOrphanBlobSweep(ctx context.Context, mgr *storage.Manager) {
	l := log.Logger().With().Str("job", JobOrphanBlobSweep).Logger()

	s3c := mgr.GetS3Client()
	dbc := mgr.GetDBClient()

	if s3c == nil || dbc == nil || dbc.DB == nil {
		l.Error().Msg("storage clients not initialized")
		return
	}

	names, err := s3c.ListNames(ctx)
	if err != nil {
		l.Error().Err(err).Msg("list objects failed")
		return
	}

	if len(names) == 0 {
		return
	}

	var referenced []string
	if err := dbc.DB.WithContext(ctx).Model(&model.Attachment{}).
		Pluck("storage_name", &referenced).Error; err != nil {
		l.Error().Err(err).Msg("list attachment rows failed")
		return
	}

	known := make(map[string]struct{}, len(referenced))
	for _, name := range referenced {
		known[name] = struct{}{}
	}

	removed := 0

	for _, name := range names {
		if _, ok := known[name]; ok {
			continue
		}

		if withinGracePeriod(name) {
			continue
		}

		if e := s3c.Remove(ctx, name); e != nil {
			l.Warn().Err(e).Str("object", name).Msg("remove orphan blob failed")
			continue
		}

		removed++
	}

	if removed > 0 {
		l.Info().Int("removed", removed).Int("scanned", len(names)).Msg("orphan blobs swept")
	}
}

// withinGracePeriod 从 ULID 前缀解析对象写入时间，解析失败按保守处理不删.
func withinGracePeriod(name string) bool {
	base := name
	if idx := strings.IndexByte(base, '.'); idx > 0 {
		base = base[:idx]
	}

	id, err := ulid.ParseStrict(base)
	if err != nil {
		return true
	}

	return time.Since(ulid.Time(id.Time())) < orphanGracePeriod
}
