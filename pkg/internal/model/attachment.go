package model

import "time"

// Attachment 附件元数据。blob 本体存在对象存储中，StorageName 为对象键；
// 行与 blob 的生命周期由 service 层保证：行先删、blob 尽力删除.
type Attachment struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	ArticleID string `gorm:"size:36;index"      json:"article_id"`
	// 用户上传时的原始文件名，下载时用于 Content-Disposition
	OriginalName string `gorm:"size:512" json:"original_name"`
	// 对象存储中的唯一对象键（ULID + 原始扩展名）
	StorageName string `gorm:"size:128;uniqueIndex" json:"storage_name"`
	Size        int64  `gorm:"index"                json:"size"`
	ContentType string `gorm:"size:255"             json:"content_type"`
	// 粗分类：pdf / zip / image / other
	FileType   string    `gorm:"size:32;index" json:"file_type"`
	UploadedAt time.Time `gorm:"index"         json:"uploaded_at"`
}
