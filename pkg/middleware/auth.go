// Package middleware 提供中间件
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/yeisme/pressvault/pkg/configs"
)

const (
	// AdminRole 管理端角色标识.
	AdminRole = "admin"
	// ContextUserKey gin context 中保存当前用户名的键.
	ContextUserKey = "auth_username"
	// ContextRoleKey gin context 中保存当前角色的键.
	ContextRoleKey = "auth_role"
)

// AdminClaims JWT 负载，包含用户名与角色.
type AdminClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// ParseAdminToken 解析并校验 HS256 令牌.
func ParseAdminToken(conf configs.AuthConfig, tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(conf.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// AdminAuthMiddleware 基于 Bearer JWT 的管理端认证校验。
//   - Authorization: Bearer <token>，HS256 签名
//   - 支持通过配置跳过某些路径（如 /metrics, /api/v1/health）
//   - 令牌缺失或无效返回 401，角色不是 admin 返回 403.
func AdminAuthMiddleware(conf configs.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isSkippedPath(c.Request.URL.Path, conf.SkipPaths) {
			c.Next()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed authorization header"})

			return
		}

		claims, err := ParseAdminToken(conf, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})

			return
		}

		if claims.Role != AdminRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})

			return
		}

		c.Set(ContextUserKey, claims.Username)
		c.Set(ContextRoleKey, claims.Role)

		c.Next()
	}
}

// GetAuthUsername 从 gin.Context 获取当前认证用户名.
func GetAuthUsername(c *gin.Context) string {
	if v, ok := c.Get(ContextUserKey); ok {
		if s, ok2 := v.(string); ok2 {
			return s
		}
	}

	return ""
}

func isSkippedPath(path string, skips []string) bool {
	if path == "" || len(skips) == 0 {
		return false
	}

	for _, p := range skips {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}
