// Package application 用户模块应用服务
package application

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	authapp "github.com/wyfcoding/storefront/internal/auth/application"
	"github.com/wyfcoding/storefront/internal/user/domain"
	"github.com/wyfcoding/storefront/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// ResetMailer 密码重置邮件发送接口，由通知模块实现
type ResetMailer interface {
	SendPasswordReset(ctx context.Context, to, token string) error
}

// RegisterCommand 注册命令
type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}

// AuthResult 登录/注册成功后的凭证
type AuthResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

// UserCommandService 用户命令服务
type UserCommandService struct {
	repo      domain.UserRepository
	tokens    *authapp.TokenService
	publisher domain.EventPublisher
	mailer    ResetMailer
}

// NewUserCommandService 创建用户命令服务实例
func NewUserCommandService(
	repo domain.UserRepository,
	tokens *authapp.TokenService,
	publisher domain.EventPublisher,
	mailer ResetMailer,
) *UserCommandService {
	return &UserCommandService{
		repo:      repo,
		tokens:    tokens,
		publisher: publisher,
		mailer:    mailer,
	}
}

// Register 注册新用户并直接签发访问令牌
func (s *UserCommandService) Register(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.NewUser(cmd.Name, cmd.Email, string(hash))
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := domain.UserRegisteredEvent{
			UserID:       user.ID.Hex(),
			Email:        user.Email,
			RegisteredAt: user.CreatedAt,
		}
		if err := s.publisher.PublishUserRegistered(ctx, event); err != nil {
			logger.Warn(ctx, "Failed to publish user registered event", "user_id", user.ID.Hex(), "error", err)
		}
	}

	return s.issueFor(user)
}

// Login 校验凭证并签发访问令牌
func (s *UserCommandService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueFor(user)
}

// ForgotPassword 生成一次性重置令牌并通过邮件投递
func (s *UserCommandService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}

	user.SetResetToken(token, time.Now())
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	if s.mailer == nil {
		return errors.New("reset mailer not configured")
	}
	return s.mailer.SendPasswordReset(ctx, user.Email, token)
}

// ResetPassword 用有效令牌重设密码，令牌单次使用
func (s *UserCommandService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.repo.GetByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidResetToken
		}
		return err
	}

	now := time.Now()
	if !user.ResetTokenValid(now) {
		return domain.ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	user.ClearResetToken(now)
	return s.repo.Update(ctx, user)
}

func (s *UserCommandService) issueFor(user *domain.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// generateResetToken 生成 256 位随机令牌的十六进制表示
func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
