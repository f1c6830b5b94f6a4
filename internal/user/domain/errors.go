package domain

import "errors"

var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail 邮箱已被注册
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials 邮箱或密码错误
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidResetToken 重置令牌无效或已过期
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)
