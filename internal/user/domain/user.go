package domain

import (
	"time"

	authdomain "github.com/wyfcoding/storefront/internal/auth/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 密码重置令牌有效期
const ResetTokenTTL = time.Hour

// User 用户聚合根
// PasswordHash 与重置令牌字段绝不出现在对外 JSON 中
type User struct {
	ID                  primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name                string              `bson:"name" json:"name"`
	Email               string              `bson:"email" json:"email"`
	PasswordHash        string              `bson:"password_hash" json:"-"`
	Role                authdomain.UserRole `bson:"role" json:"role"`
	ResetPasswordToken  string              `bson:"reset_password_token,omitempty" json:"-"`
	ResetPasswordExpiry time.Time           `bson:"reset_password_expiry,omitempty" json:"-"`
	CreatedAt           time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time           `bson:"updated_at" json:"updated_at"`
}

// NewUser 创建普通用户
func NewUser(name, email, passwordHash string) *User {
	now := time.Now()
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         authdomain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// SetResetToken 记录密码重置令牌及其过期时间
func (u *User) SetResetToken(token string, now time.Time) {
	u.ResetPasswordToken = token
	u.ResetPasswordExpiry = now.Add(ResetTokenTTL)
	u.UpdatedAt = now
}

// ClearResetToken 令牌使用后立即作废
func (u *User) ClearResetToken(now time.Time) {
	u.ResetPasswordToken = ""
	u.ResetPasswordExpiry = time.Time{}
	u.UpdatedAt = now
}

// ResetTokenValid 令牌在给定时刻是否仍然有效
func (u *User) ResetTokenValid(now time.Time) bool {
	return u.ResetPasswordToken != "" && now.Before(u.ResetPasswordExpiry)
}
