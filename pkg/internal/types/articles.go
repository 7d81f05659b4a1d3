package types

import "time"

// ListArticlesRequest 文章列表查询参数（query string 绑定）.
// Tags 支持重复传参（?tags=a&tags=b），也接受逗号分隔；
// 要求文章同时具备全部标签.
type ListArticlesRequest struct {
	Page     int      `form:"page"`
	Limit    int      `form:"limit"`
	Category string   `form:"category"` // "All" 或空表示不过滤
	Search   string   `form:"search"`   // 模糊匹配标题/摘要/正文/作者（不区分大小写）
	Tags     []string `form:"tags"`
}

// ArticleSummary 列表项，不含正文.
type ArticleSummary struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Summary     string           `json:"summary"`
	Author      string           `json:"author"`
	Category    string           `json:"category"`
	ReadTime    int              `json:"read_time"`
	Published   bool             `json:"published"`
	PublishDate time.Time        `json:"publish_date"`
	Tags        []string         `json:"tags"`
	Attachments []AttachmentInfo `json:"attachments"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ArticleDetail 详情，含正文.
type ArticleDetail struct {
	ArticleSummary

	Content string `json:"content"`
}

// ListArticlesResponse 文章列表响应.
type ListArticlesResponse struct {
	Articles   []ArticleSummary `json:"articles"`
	Pagination Pagination       `json:"pagination"`
}

// CreateArticleRequest 创建文章请求.
type CreateArticleRequest struct {
	Title    string   `binding:"required" json:"title"`
	Summary  string   `binding:"required" json:"summary"`
	Content  string   `binding:"required" json:"content"`
	Author   string   `binding:"required" json:"author"`
	Category string   `binding:"required" json:"category"`
	Tags     []string `json:"tags"`
	ReadTime int      `json:"read_time"` // 缺省 5 分钟
	// Published 缺省 true；显式传 false 保存为草稿
	Published *bool `json:"published,omitempty"`
}

// UpdateArticleRequest 部分更新请求：只修改显式提供的字段。
// Tags 为 nil 表示不动标签关联；提供时整体替换关联集合.
type UpdateArticleRequest struct {
	Title     *string  `json:"title,omitempty"`
	Summary   *string  `json:"summary,omitempty"`
	Content   *string  `json:"content,omitempty"`
	Author    *string  `json:"author,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	ReadTime  *int     `json:"read_time,omitempty"`
	Published *bool    `json:"published,omitempty"`
}
