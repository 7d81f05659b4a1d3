// Package queue 定义消息主题常量与通配模式，供发布/订阅使用.
package queue

// 主题命名规范：pv.<域>.<动作>，尽量稳定且向后兼容.
// 域：article(文章)、attachment(附件)
// 动作：created/updated/deleted/stored

const (
	// 文章领域.
	TopicArticleCreated = "pv.article.created" // 文章创建完成（含分类与标签关联）
	TopicArticleUpdated = "pv.article.updated" // 文章内容或标签集合更新
	TopicArticleDeleted = "pv.article.deleted" // 文章删除（级联删除标签关联与附件行）

	// 附件领域.
	TopicAttachmentStored  = "pv.attachment.stored"  // 附件写入对象存储且元数据入库
	TopicAttachmentDeleted = "pv.attachment.deleted" // 附件删除（行先删，blob 尽力删除）
)

// 主题分组，用于批量操作或权限控制.
var (
	// 文章相关主题集合.
	ArticleTopics = []string{
		TopicArticleCreated, TopicArticleUpdated, TopicArticleDeleted,
	}

	// 附件相关主题集合.
	AttachmentTopics = []string{
		TopicAttachmentStored, TopicAttachmentDeleted,
	}
)
