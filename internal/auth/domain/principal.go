package domain

// UserRole 用户角色
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Principal 一次请求解析出的调用者身份
// 由认证中间件解析一次后显式传入各服务操作，服务内部不做隐式查找
type Principal struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
}

// IsAdmin 是否为管理员
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
