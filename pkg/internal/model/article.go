// Package model 定义数据库模型（GORM），以 DB 为内容真源.
package model

import (
	"time"
)

// Article 文章模型。ID 为 UUID 字符串，由 service 层生成.
type Article struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	Title   string `gorm:"size:512;index"     json:"title"`
	Summary string `gorm:"type:text"          json:"summary"`
	Content string `gorm:"type:text"          json:"content"`
	Author  string `gorm:"size:255;index"     json:"author"`
	// 分类名直接冗余在文章行上，同时在 categories 表中维护唯一名字典
	Category string `gorm:"size:128;index" json:"category"`
	// 预计阅读时长（分钟），缺省 5
	ReadTime int `gorm:"default:5" json:"read_time"`
	// 不能给列默认值：bool 的零值 false 会被 gorm 当作未赋值而写入默认值，
	// 草稿（published=false）插入时会被悄悄改成 true。缺省由 service 层补齐
	Published   bool      `gorm:"index" json:"published"`
	PublishDate time.Time `gorm:"index" json:"publish_date"`

	// 关联：标签多对多，附件一对多（删除文章时级联清理由 service 层在事务中完成）
	Tags        []Tag        `gorm:"many2many:article_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Attachments []Attachment `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"   json:"attachments,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Tag 标签字典，名字全局唯一.
type Tag struct {
	ID        string    `gorm:"primaryKey;size:36"        json:"id"`
	Name      string    `gorm:"size:128;uniqueIndex"      json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Category 分类字典，名字全局唯一.
type Category struct {
	ID        string    `gorm:"primaryKey;size:36"   json:"id"`
	Name      string    `gorm:"size:128;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ArticleTag 文章-标签关联表（显式声明以便复合主键与级联约束）.
type ArticleTag struct {
	ArticleID string `gorm:"primaryKey;size:36;index" json:"article_id"`
	TagID     string `gorm:"primaryKey;size:36;index" json:"tag_id"`
}
