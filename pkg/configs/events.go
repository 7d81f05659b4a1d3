package configs

import "github.com/spf13/viper"

// EventsConfig 控制领域事件发布的开关（全局与分主题）。
type EventsConfig struct {
	Enabled    bool                   `mapstructure:"enabled"` // 总开关
	Article    ArticleEventsConfig    `mapstructure:"article"`
	Attachment AttachmentEventsConfig `mapstructure:"attachment"`
}

// ArticleEventsConfig 文章领域的事件开关。
type ArticleEventsConfig struct {
	Created bool `mapstructure:"created"`
	Updated bool `mapstructure:"updated"`
	Deleted bool `mapstructure:"deleted"`
}

// AttachmentEventsConfig 附件领域的事件开关。
type AttachmentEventsConfig struct {
	Stored  bool `mapstructure:"stored"`
	Deleted bool `mapstructure:"deleted"`
}

func (c *EventsConfig) setDefaults(v *viper.Viper) {
	// 总开关：默认启用事件系统
	v.SetDefault("events.enabled", true)

	// 文章领域事件：默认全部开启
	v.SetDefault("events.article.created", true)
	v.SetDefault("events.article.updated", true)
	v.SetDefault("events.article.deleted", true)

	// 附件领域事件
	v.SetDefault("events.attachment.stored", true)
	v.SetDefault("events.attachment.deleted", true)
}
