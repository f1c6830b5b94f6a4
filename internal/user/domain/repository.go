package domain

import "context"

// UserRepository 用户仓储接口
type UserRepository interface {
	// Save 插入新用户，邮箱冲突时返回 ErrDuplicateEmail
	Save(ctx context.Context, user *User) error
	// Update 整体更新用户文档
	Update(ctx context.Context, user *User) error
	// GetByID 按 ID 查询，不存在时返回 ErrUserNotFound
	GetByID(ctx context.Context, id string) (*User, error)
	// GetByEmail 按邮箱查询，不存在时返回 ErrUserNotFound
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByResetToken 按重置令牌查询，不存在时返回 ErrUserNotFound
	GetByResetToken(ctx context.Context, token string) (*User, error)
}
