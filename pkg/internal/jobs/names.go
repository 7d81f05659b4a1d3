package jobs

// 任务名称常量，便于统一管理与引用.
const (
	JobOrphanBlobSweep = "attachment.orphan_blob_sweep"
)

// Cron 表达式常量（可选，但推荐一并集中管理）.
const (
	// 每天 03:30 扫描对象存储中没有对应附件行的孤儿对象.
	CronOrphanBlobSweep = "30 3 * * *"
)
