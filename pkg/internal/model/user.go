package model

import "time"

// User 管理端账号。系统只允许存在一个 admin 账号，
// 注册接口仅在表为空时生效（见 service.AdminService）.
type User struct {
	ID           string    `gorm:"primaryKey;size:36"   json:"id"`
	Username     string    `gorm:"size:128;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"size:128"             json:"-"`
	Role         string    `gorm:"size:32;default:admin" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AllModels 返回需要 AutoMigrate 的全部模型，供迁移命令使用.
func AllModels() []any {
	return []any{
		&Article{}, &Tag{}, &Category{}, &ArticleTag{}, &Attachment{}, &User{},
	}
}
