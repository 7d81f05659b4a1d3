package types

import "time"

// AttachmentInfo 附件元数据响应项.
type AttachmentInfo struct {
	ID           string    `json:"id"`
	ArticleID    string    `json:"article_id"`
	OriginalName string    `json:"original_name"`
	Size         int64     `json:"size"`
	// SizeText 人类可读大小，如 "2.19 MB"
	SizeText    string    `json:"size_text"`
	ContentType string    `json:"content_type"`
	FileType    string    `json:"file_type"` // pdf / zip / image / other
	UploadedAt  time.Time `json:"uploaded_at"`
	DownloadURL string    `json:"download_url"`
}

// UploadAttachmentsResponse 批量上传响应，全部成功或整体失败.
type UploadAttachmentsResponse struct {
	Attachments []AttachmentInfo `json:"attachments"`
	Total       int              `json:"total"`
}

// ListAttachmentsResponse 某篇文章的附件列表.
type ListAttachmentsResponse struct {
	Attachments []AttachmentInfo `json:"attachments"`
	Total       int              `json:"total"`
}
