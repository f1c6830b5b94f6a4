package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wyfcoding/storefront/internal/auth/domain"
)

// ErrInvalidToken 令牌无效或已过期
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims JWT 载荷
type Claims struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Role   domain.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenService 签发与校验访问令牌
type TokenService struct {
	secret []byte
	issuer string
	expiry time.Duration
}

// NewTokenService 创建令牌服务实例
func NewTokenService(secret, issuer string, expiry time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		expiry: expiry,
	}
}

// Issue 为用户签发访问令牌，返回令牌与过期时间
func (s *TokenService) Issue(userID, email string, role domain.UserRole) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.expiry)
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify 校验令牌并解析出调用者身份
func (s *TokenService) Verify(tokenString string) (*domain.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &domain.Principal{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
