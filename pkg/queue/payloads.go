package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
// 建议在发布消息时填充 TraceID、OccurredAt、Producer 等，便于追踪链路与审计.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
// T 即不同主题对应的负载结构体.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// -------------------------- 文章领域 --------------------------

// ArticleRef 标识一篇文章及其基础元数据.
type ArticleRef struct {
	ID       string   `json:"id"`
	Title    string   `json:"title,omitempty"`
	Author   string   `json:"author,omitempty"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// ArticleEventPayload 文章创建/更新/删除事件负载.
type ArticleEventPayload struct {
	Article ArticleRef `json:"article"`
	// Source 业务上下文，如触发来源（admin/api/import）.
	Source string `json:"source,omitempty"`
}

// -------------------------- 附件领域 --------------------------

// AttachmentRef 标识一个附件及其存储位置.
type AttachmentRef struct {
	ID           string `json:"id"`
	ArticleID    string `json:"article_id"`
	Bucket       string `json:"bucket,omitempty"`
	StorageName  string `json:"storage_name"`
	OriginalName string `json:"original_name,omitempty"`
	Size         int64  `json:"size,omitempty"`
	ContentType  string `json:"content_type,omitempty"`
	FileType     string `json:"file_type,omitempty"`
}

// AttachmentEventPayload 附件存储/删除事件负载.
type AttachmentEventPayload struct {
	Attachment AttachmentRef `json:"attachment"`
	Source     string        `json:"source,omitempty"`
}
