// Package http 用户与认证 HTTP 处理器
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authmw "github.com/wyfcoding/storefront/internal/auth/interfaces/middleware"
	"github.com/wyfcoding/storefront/internal/user/application"
	"github.com/wyfcoding/storefront/internal/user/domain"
	"github.com/wyfcoding/storefront/pkg/logger"
	"github.com/wyfcoding/storefront/pkg/response"
)

// UserHandler HTTP 处理器
type UserHandler struct {
	cmd   *application.UserCommandService
	query *application.UserQueryService
}

// NewUserHandler 创建 HTTP 处理器实例
func NewUserHandler(cmd *application.UserCommandService, query *application.UserQueryService) *UserHandler {
	return &UserHandler{cmd: cmd, query: query}
}

// RegisterRoutes 注册路由。注册/登录/找回密码匿名可达，
// 个人资料路由挂在已认证分组下。
func (h *UserHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	auth := public.Group("/auth")
	{
		auth.POST("/register", h.Register) // 注册
		auth.POST("/login", h.Login)       // 登录
	}
	users := public.Group("/users")
	{
		users.POST("/forgot-password", h.ForgotPassword) // 发起找回密码
		users.POST("/reset-password", h.ResetPassword)   // 用令牌重设密码
	}
	me := authed.Group("/users")
	{
		me.GET("/me", h.GetProfile) // 当前用户资料
	}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register 注册新用户
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	result, err := h.cmd.Register(c.Request.Context(), application.RegisterCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Created(c, result)
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login 登录
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	result, err := h.cmd.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, result)
}

// ForgotPasswordRequest 找回密码请求
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword 为邮箱生成重置令牌并发送邮件
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	if err := h.cmd.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "reset mail sent"})
}

// ResetPasswordRequest 重设密码请求
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// ResetPassword 用令牌重设密码
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	if err := h.cmd.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "password updated"})
}

// GetProfile 当前用户资料
func (h *UserHandler) GetProfile(c *gin.Context) {
	principal, _ := authmw.GetPrincipal(c)

	user, err := h.query.GetProfile(c.Request.Context(), principal.UserID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, user)
}

// writeError 将领域错误映射为 HTTP 状态码
func (h *UserHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrInvalidResetToken):
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, domain.ErrInvalidCredentials):
		response.ErrorWithStatus(c, http.StatusUnauthorized, err.Error(), "")
	default:
		logger.Error(c.Request.Context(), "User request failed", "error", err)
		response.InternalError(c)
	}
}
