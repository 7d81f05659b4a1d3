package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/yeisme/pressvault/pkg/configs"
)

func testAuthConfig() configs.AuthConfig {
	return configs.AuthConfig{
		JWTSecret:   "unit-test-secret",
		TokenExpiry: 1,
		SkipPaths:   []string{"/public"},
	}
}

func signToken(t *testing.T, conf configs.AuthConfig, role string, expiry time.Duration) string {
	t.Helper()

	claims := AdminClaims{
		Username: "admin",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(conf.JWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	return token
}

func newAuthTestRouter(conf configs.AuthConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	e := gin.New()
	e.Use(AdminAuthMiddleware(conf))
	e.GET("/admin/resource", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": GetAuthUsername(c)})
	})
	e.GET("/public/resource", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return e
}

func request(e *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	return w
}

func TestAdminAuthMiddleware(t *testing.T) {
	conf := testAuthConfig()
	e := newAuthTestRouter(conf)

	// 缺失或格式错误的头 -> 401
	if w := request(e, "/admin/resource", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("missing header = %d", w.Code)
	}

	if w := request(e, "/admin/resource", "Token abc"); w.Code != http.StatusUnauthorized {
		t.Errorf("malformed header = %d", w.Code)
	}

	// 有效令牌放行并注入用户名
	token := signToken(t, conf, AdminRole, time.Hour)
	if w := request(e, "/admin/resource", "Bearer "+token); w.Code != http.StatusOK {
		t.Errorf("valid token = %d %s", w.Code, w.Body.String())
	}

	// 非 admin 角色 -> 403
	reader := signToken(t, conf, "reader", time.Hour)
	if w := request(e, "/admin/resource", "Bearer "+reader); w.Code != http.StatusForbidden {
		t.Errorf("wrong role = %d", w.Code)
	}

	// 过期令牌 -> 401
	expired := signToken(t, conf, AdminRole, -time.Minute)
	if w := request(e, "/admin/resource", "Bearer "+expired); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token = %d", w.Code)
	}

	// 错误密钥签名 -> 401
	other := signToken(t, configs.AuthConfig{JWTSecret: "other"}, AdminRole, time.Hour)
	if w := request(e, "/admin/resource", "Bearer "+other); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong secret = %d", w.Code)
	}

	// 跳过路径不需要令牌
	if w := request(e, "/public/resource", ""); w.Code != http.StatusOK {
		t.Errorf("skip path = %d", w.Code)
	}
}

func TestParseAdminToken(t *testing.T) {
	conf := testAuthConfig()

	token := signToken(t, conf, AdminRole, time.Hour)

	claims, err := ParseAdminToken(conf, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if claims.Username != "admin" || claims.Role != AdminRole {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := ParseAdminToken(conf, "not-a-token"); err == nil {
		t.Error("expected error for garbage token")
	}
}
