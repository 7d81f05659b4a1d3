package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeisme/pressvault/pkg/configs"
	ctxPkg "github.com/yeisme/pressvault/pkg/context"
	"github.com/yeisme/pressvault/pkg/internal/errs"
	"github.com/yeisme/pressvault/pkg/internal/model"
	"github.com/yeisme/pressvault/pkg/internal/storage/db"
	"github.com/yeisme/pressvault/pkg/internal/types"
	nlog "github.com/yeisme/pressvault/pkg/log"
	"github.com/yeisme/pressvault/pkg/middleware"
)

// MinPasswordLength 密码最短长度.
const MinPasswordLength = 8

// AdminService 管理端账号与令牌签发。系统只维护一个 admin 账号.
type AdminService struct {
	dbClient *db.Client
	cfg      configs.AuthConfig
}

// NewAdminService 从 context 获取依赖实例.
func NewAdminService(c context.Context) *AdminService {
	dbc := ctxPkg.GetDBClient(c)
	if dbc == nil || dbc.DB == nil {
		nlog.Logger().Fatal().Msg("db client not initialized")
	}

	return &AdminService{
		dbClient: dbc,
		cfg:      configs.GetConfig().Auth,
	}
}

func (s *AdminService) gdb(ctx context.Context) *gorm.DB {
	return s.dbClient.DB.WithContext(ctx)
}

// EnsureAdmin 幂等初始化 admin 账号：已有任意账号则什么都不做。
// 供启动命令使用，重复执行安全.
func (s *AdminService) EnsureAdmin(ctx context.Context, username, password string) error {
	var count int64
	if err := s.gdb(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("%w: count users: %v", errs.ErrStore, err)
	}

	if count > 0 {
		return nil
	}

	return s.createAdmin(ctx, username, password)
}

// Register 注册 admin 账号，仅在尚无任何账号时允许.
func (s *AdminService) Register(ctx context.Context, req *types.RegisterRequest) error {
	var count int64
	if err := s.gdb(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("%w: count users: %v", errs.ErrStore, err)
	}

	if count > 0 {
		return fmt.Errorf("%w: registration is closed", errs.ErrForbidden)
	}

	return s.createAdmin(ctx, req.Username, req.Password)
}

// Login 校验用户名密码并签发 HS256 令牌.
func (s *AdminService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	user, err := s.findUser(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, fmt.Errorf("%w: invalid credentials", errs.ErrAuth)
	}

	expiresAt := time.Now().UTC().Add(s.cfg.GetTokenExpiryDuration())

	claims := middleware.AdminClaims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("%w: sign token: %v", errs.ErrStore, err)
	}

	return &types.LoginResponse{
		Token:     token,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify 校验令牌有效性并返回其身份信息.
func (s *AdminService) Verify(tokenString string) (*types.VerifyResponse, error) {
	claims, err := middleware.ParseAdminToken(s.cfg, tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrAuth, err)
	}

	return &types.VerifyResponse{
		Valid:    true,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}

// ChangePassword 校验旧密码后更新为新密码.
func (s *AdminService) ChangePassword(ctx context.Context, username string, req *types.ChangePasswordRequest) error {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)) != nil {
		return fmt.Errorf("%w: old password mismatch", errs.ErrAuth)
	}

	hash, err := s.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.gdb(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Update("password_hash", hash).Error; err != nil {
		return fmt.Errorf("%w: update password: %v", errs.ErrStore, err)
	}

	return nil
}

func (s *AdminService) createAdmin(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("%w: username is required", errs.ErrValidation)
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}

	user := model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         middleware.AdminRole,
	}

	if err := s.gdb(ctx).Create(&user).Error; err != nil {
		return fmt.Errorf("%w: create admin: %v", errs.ErrStore, err)
	}

	return nil
}

func (s *AdminService) findUser(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := s.gdb(ctx).First(&user, "username = ?", strings.TrimSpace(username)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 不区分"用户不存在"与"密码错误"，避免账号枚举
			return nil, fmt.Errorf("%w: invalid credentials", errs.ErrAuth)
		}

		return nil, fmt.Errorf("%w: load user: %v", errs.ErrStore, err)
	}

	return &user, nil
}

func (s *AdminService) hashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", errs.ErrValidation, MinPasswordLength)
	}

	cost := s.cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("%w: hash password: %v", errs.ErrStore, err)
	}

	return string(hash), nil
}
