package configs

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultJWTSecret     = "pressvault-dev-secret" // 仅用于开发环境，生产必须覆盖
	DefaultTokenExpiry   = 24                      // 令牌有效期（小时）
	DefaultBcryptCost    = 12                      // bcrypt 哈希成本
	DefaultAdminUsername = "admin"
)

// AuthConfig 管理员认证配置，基于 JWT（HS256）与 bcrypt 口令哈希。
type AuthConfig struct {
	JWTSecret   string   `mapstructure:"jwt_secret"   rule:"required"`
	TokenExpiry int      `mapstructure:"token_expiry" rule:"min=1,max=720"` // 小时
	BcryptCost  int      `mapstructure:"bcrypt_cost"  rule:"min=4,max=31"`
	SkipPaths   []string `mapstructure:"skip_paths"` // 跳过认证的路径前缀（如 /metrics、/api/v1/health）
}

// GetTokenExpiryDuration 返回令牌有效期.
func (c *AuthConfig) GetTokenExpiryDuration() time.Duration {
	return time.Duration(c.TokenExpiry) * time.Hour
}

func (c *AuthConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("auth.jwt_secret", DefaultJWTSecret)
	v.SetDefault("auth.token_expiry", DefaultTokenExpiry)
	v.SetDefault("auth.bcrypt_cost", DefaultBcryptCost)
	v.SetDefault("auth.skip_paths", []string{
		"/metrics",
		"/debug/pprof",
		"/api/v1/health",
		"/swagger",
	})
}
