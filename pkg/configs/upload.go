package configs

import "github.com/spf13/viper"

const (
	DefaultMaxFileSize  = 10 * 1024 * 1024 // 单个附件最大字节数 (10MB)
	DefaultMaxFileCount = 10               // 单次请求最大附件数
)

// UploadConfig 附件上传配置.
type UploadConfig struct {
	MaxFileSize  int64    `mapstructure:"max_file_size"  rule:"min=1"`
	MaxFileCount int      `mapstructure:"max_file_count" rule:"min=1,max=100"`
	AllowedTypes []string `mapstructure:"allowed_types"`
}

// IsAllowedType 判断内容类型是否在白名单内.
func (c *UploadConfig) IsAllowedType(contentType string) bool {
	for _, t := range c.AllowedTypes {
		if t == contentType {
			return true
		}
	}

	return false
}

func (c *UploadConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("upload.max_file_size", DefaultMaxFileSize)
	v.SetDefault("upload.max_file_count", DefaultMaxFileCount)
	v.SetDefault("upload.allowed_types", []string{
		"application/pdf",
		"application/zip",
		"application/x-zip-compressed",
		"image/jpeg",
		"image/png",
		"image/gif",
		"text/plain",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	})
}
