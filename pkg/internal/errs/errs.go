// Package errs 定义服务层错误分类哨兵，handle 层据此映射 HTTP 状态码.
//
// service 返回的错误统一以 fmt.Errorf("%w: ...", errs.ErrXxx) 包装，
// handle 层用 errors.Is 判断类别，细节只进日志不出响应.
package errs

import "errors"

var (
	// ErrValidation 输入不合法（缺字段、超长、格式错误等），对应 400.
	ErrValidation = errors.New("validation failed")
	// ErrAuth 未认证或凭证无效，对应 401.
	ErrAuth = errors.New("authentication failed")
	// ErrForbidden 已认证但权限不足，对应 403.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound 资源不存在（行缺失或 blob 缺失都算），对应 404.
	ErrNotFound = errors.New("not found")
	// ErrPayloadTooLarge 上传超出大小限制，对应 413.
	ErrPayloadTooLarge = errors.New("payload too large")
	// ErrUnsupportedMedia 上传类型不在允许列表，对应 400.
	ErrUnsupportedMedia = errors.New("unsupported media type")
	// ErrStore 数据库或对象存储故障，对应 500.
	ErrStore = errors.New("store failure")
)
