package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vidcat-go/internal/api/dto"
	"vidcat-go/internal/config"
	infraRedis "vidcat-go/internal/infra/redis"
	"vidcat-go/pkg/utils"
)

var ErrInvalidCredential = errors.New("用户名或密码错误")

// AuthService 静态凭证认证：用户表来自配置文件（用户名 -> bcrypt 哈希）
//
// 只负责解析出调用方用户名，没有角色与权限概念。
type AuthService struct {
	users map[string]string
}

func NewAuthService(users map[string]string) *AuthService {
	return &AuthService{users: users}
}

// Login 校验凭证并签发 Token
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenData, error) {
	hash, ok := s.users[req.Username]
	if !ok || !utils.VerifyPassword(req.Password, hash) {
		return nil, ErrInvalidCredential
	}

	token, err := utils.GenerateToken(req.Username)
	if err != nil {
		return nil, err
	}

	return &dto.TokenData{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: int(config.GetJWT().ExpireDuration().Seconds()),
		Username:  req.Username,
	}, nil
}

// Logout 将 Token 的 jti 写入吊销名单，TTL 为其剩余有效期
func (s *AuthService) Logout(ctx context.Context, claims *utils.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := infraRedis.Get().Set(ctx, revokedKey(claims.ID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsTokenRevoked 查询 jti 是否已被吊销；Redis 不可达时放行
func (s *AuthService) IsTokenRevoked(ctx context.Context, jti string) bool {
	n, err := infraRedis.Get().Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false
	}
	return n > 0
}

func revokedKey(jti string) string {
	return "auth:revoked:" + jti
}
