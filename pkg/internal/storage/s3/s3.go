// Package s3 处理S3存储操作，为附件提供 blob 读写能力.
package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yeisme/pressvault/pkg/configs"
	nlog "github.com/yeisme/pressvault/pkg/log"
)

// Client 包装 MinIO 客户端，绑定到配置的附件桶.
type Client struct {
	*minio.Client

	bucket string
}

// New 初始化 MinIO 客户端，若 bucket 不存在则尝试创建.
func New(ctx context.Context) (*Client, error) {
	cfg := configs.GetConfig().S3
	endpoint := cfg.Endpoint
	// 允许用户传完整 schema endpoint（http:// 或 https://）
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		endpoint = u.Host
		if u.Scheme == "https" {
			cfg.UseSSL = true
		}
	}

	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	cli.SetAppInfo("pressvault", configs.AppVersion)

	exists, err := cli.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.BucketName, err)
	}

	if !exists {
		if err := cli.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.BucketName, err)
		}

		nlog.Logger().Info().Str("bucket", cfg.BucketName).Msg("bucket created")
	}

	nlog.Logger().Info().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.BucketName).Msg("s3 connected")

	return &Client{Client: cli, bucket: cfg.BucketName}, nil
}

// Bucket 返回附件桶名称.
func (c *Client) Bucket() string {
	return c.bucket
}

// Write 将数据流写入指定对象名.
func (c *Client) Write(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	_, err := c.PutObject(ctx, c.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", name, err)
	}

	return nil
}

// Open 打开对象读取流. 对象不存在时返回 minio 的 NoSuchKey 错误.
func (c *Client) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := c.GetObject(ctx, c.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", name, err)
	}

	// GetObject 是惰性的，Stat 触发一次请求以便尽早暴露 NoSuchKey
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()

		return nil, fmt.Errorf("stat object %s: %w", name, err)
	}

	return obj, nil
}

// Remove 删除对象. 对象不存在时 MinIO 视为成功.
func (c *Client) Remove(ctx context.Context, name string) error {
	if err := c.RemoveObject(ctx, c.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %w", name, err)
	}

	return nil
}

// Exists 检查对象是否存在.
func (c *Client) Exists(ctx context.Context, name string) (bool, error) {
	_, err := c.StatObject(ctx, c.bucket, name, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return false, nil
		}

		return false, fmt.Errorf("stat object %s: %w", name, err)
	}

	return true, nil
}

// ListNames 列出桶内对象名，用于孤儿清理任务.
func (c *Client) ListNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0)

	for obj := range c.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects: %w", obj.Err)
		}

		names = append(names, obj.Key)
	}

	return names, nil
}

// HealthCheck 简单的健康检查，通过列出桶来验证连接.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.ListBuckets(ctx)
	return err
}

// Close 关闭 S3 客户端连接（无实际操作，接口兼容）.
func (c *Client) Close() error {
	return nil
}
