package repository

import "errors"

// 仓库层统一错误，供上层通过 errors.Is 区分失败场景
var (
	// ErrNotFound 查询目标不存在
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail 邮箱已被注册
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateTitle 电影标题已存在
	ErrDuplicateTitle = errors.New("movie title already exists")

	// ErrValidation 输入校验失败（必填字段为空或超长）
	ErrValidation = errors.New("validation failed")

	// ErrAlreadyInitialized 系统已有管理员，一次性引导入口关闭
	ErrAlreadyInitialized = errors.New("admin already initialized")

	// ErrStorage 未分类的存储层错误
	ErrStorage = errors.New("storage error")
)
