package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishArticleEvent 发布文章领域事件（created/updated/deleted）。
// 可通过可选项 opts 注入 TraceID、Producer 等头部信息。
func PublishArticleEvent(pub message.Publisher, topic string, payload ArticleEventPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(topic, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(topic, msg)
}

// PublishAttachmentEvent 发布附件领域事件（stored/deleted）。
func PublishAttachmentEvent(pub message.Publisher, topic string, payload AttachmentEventPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(topic, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(topic, msg)
}

// ParseArticleEvent 将 Watermill 消息解析为强类型 Envelope（ArticleEventPayload）。
func ParseArticleEvent(msg *message.Message) (Message[ArticleEventPayload], error) {
	return ParseWatermillMessage[ArticleEventPayload](msg)
}

// ParseAttachmentEvent 将 Watermill 消息解析为强类型 Envelope（AttachmentEventPayload）。
func ParseAttachmentEvent(msg *message.Message) (Message[AttachmentEventPayload], error) {
	return ParseWatermillMessage[AttachmentEventPayload](msg)
}
