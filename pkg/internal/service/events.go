package service

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/yeisme/pressvault/pkg/configs"
	"github.com/yeisme/pressvault/pkg/internal/model"
	"github.com/yeisme/pressvault/pkg/internal/storage/mq"
	nlog "github.com/yeisme/pressvault/pkg/log"
	"github.com/yeisme/pressvault/pkg/queue"
)

// EventProducer 事件头中的生产者标识.
const EventProducer = "pressvault"

// publishArticleEvent 发布文章领域事件。MQ 未初始化或配置关闭时静默跳过，
// 发布失败只告警，不影响主流程.
func (s *ArticleService) publishArticleEvent(ctx context.Context, topic string, art *model.Article, tags []string) {
	if !articleTopicEnabled(topic) {
		return
	}

	payload := queue.ArticleEventPayload{
		Article: queue.ArticleRef{
			ID:       art.ID,
			Title:    art.Title,
			Author:   art.Author,
			Category: art.Category,
			Tags:     tags,
		},
		Source: "api",
	}

	publishEvent(ctx, s.mqClient, topic, func() (*message.Message, error) {
		return queue.NewWatermillMessage(topic, payload, queue.WithProducer(EventProducer))
	})
}

// publishAttachmentEvent 发布附件领域事件.
func (s *AttachmentService) publishAttachmentEvent(ctx context.Context, topic string, att *model.Attachment, bucket string) {
	if !attachmentTopicEnabled(topic) {
		return
	}

	payload := queue.AttachmentEventPayload{
		Attachment: queue.AttachmentRef{
			ID:           att.ID,
			ArticleID:    att.ArticleID,
			Bucket:       bucket,
			StorageName:  att.StorageName,
			OriginalName: att.OriginalName,
			Size:         att.Size,
			ContentType:  att.ContentType,
			FileType:     att.FileType,
		},
		Source: "api",
	}

	publishEvent(ctx, s.mqClient, topic, func() (*message.Message, error) {
		return queue.NewWatermillMessage(topic, payload, queue.WithProducer(EventProducer))
	})
}

func articleTopicEnabled(topic string) bool {
	events := configs.GetConfig().Events
	if !events.Enabled {
		return false
	}

	ev := events.Article

	switch topic {
	case queue.TopicArticleCreated:
		return ev.Created
	case queue.TopicArticleUpdated:
		return ev.Updated
	case queue.TopicArticleDeleted:
		return ev.Deleted
	default:
		return false
	}
}

func attachmentTopicEnabled(topic string) bool {
	events := configs.GetConfig().Events
	if !events.Enabled {
		return false
	}

	ev := events.Attachment

	switch topic {
	case queue.TopicAttachmentStored:
		return ev.Stored
	case queue.TopicAttachmentDeleted:
		return ev.Deleted
	default:
		return false
	}
}

func publishEvent(ctx context.Context, client *mq.Client, topic string, build func() (*message.Message, error)) {
	if client == nil {
		return
	}

	msg, err := build()
	if err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", topic).Msg("encode event failed")
		return
	}

	if err := client.Publish(ctx, topic, msg); err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", topic).Msg("publish event failed")
	}
}
