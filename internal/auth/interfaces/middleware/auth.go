// Package middleware 提供基于 JWT 的认证与角色鉴权中间件
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/storefront/internal/auth/application"
	"github.com/wyfcoding/storefront/internal/auth/domain"
	"github.com/wyfcoding/storefront/pkg/response"
)

// PrincipalKey gin context 中存放调用者身份的键
const PrincipalKey = "principal"

// RequireAuth 要求请求携带有效的 Bearer 令牌，解析出 Principal 存入 context
func RequireAuth(tokens *application.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.ErrorWithStatus(c, http.StatusUnauthorized, "authorization header required", "")
			c.Abort()
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			response.ErrorWithStatus(c, http.StatusUnauthorized, "invalid authorization header", "")
			c.Abort()
			return
		}

		principal, err := tokens.Verify(tokenString)
		if err != nil {
			response.ErrorWithStatus(c, http.StatusUnauthorized, "invalid or expired token", "")
			c.Abort()
			return
		}

		c.Set(PrincipalKey, *principal)
		c.Next()
	}
}

// RequireAdmin 在 RequireAuth 之后使用，要求调用者具备管理员角色
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			response.ErrorWithStatus(c, http.StatusUnauthorized, "authentication required", "")
			c.Abort()
			return
		}
		if !principal.IsAdmin() {
			response.ErrorWithStatus(c, http.StatusForbidden, "admin role required", "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetPrincipal 从 gin context 中取出调用者身份
func GetPrincipal(c *gin.Context) (domain.Principal, bool) {
	v, exists := c.Get(PrincipalKey)
	if !exists {
		return domain.Principal{}, false
	}
	principal, ok := v.(domain.Principal)
	return principal, ok
}
