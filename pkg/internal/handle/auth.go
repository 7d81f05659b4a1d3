package handle

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/pressvault/pkg/internal/service"
	"github.com/yeisme/pressvault/pkg/internal/types"
	"github.com/yeisme/pressvault/pkg/middleware"
)

// Register 注册管理员，仅在尚无账号时可用.
func Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)

		return
	}

	svc := service.NewAdminService(c.Request.Context())

	if err := svc.Register(c.Request.Context(), &req); err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "admin registered"})
}

// Login 登录并签发令牌.
func Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)

		return
	}

	svc := service.NewAdminService(c.Request.Context())

	resp, err := svc.Login(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// Verify 校验 Authorization 头中的令牌.
func Verify(c *gin.Context) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed authorization header"})

		return
	}

	svc := service.NewAdminService(c.Request.Context())

	resp, err := svc.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// ChangePassword 修改当前登录管理员的密码.
func ChangePassword(c *gin.Context) {
	username := middleware.GetAuthUsername(c)
	if username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})

		return
	}

	var req types.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)

		return
	}

	svc := service.NewAdminService(c.Request.Context())

	if err := svc.ChangePassword(c.Request.Context(), username, &req); err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}
