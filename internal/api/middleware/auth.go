package middleware

import (
	"context"
	"strings"

	"vidcat-go/internal/api/response"
	"vidcat-go/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextKeyUsername = "currentUsername"
	ContextKeyClaims   = "currentClaims"
)

// TokenRevokedFunc 查询 jti 是否已被登出吊销
type TokenRevokedFunc func(ctx context.Context, jti string) bool

// AuthRequired JWT 认证中间件，要求请求必须携带有效 Token
//
// 解析出的用户名存入上下文，供点赞等需要调用方身份的 Handler 读取。
func AuthRequired(revoked TokenRevokedFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "缺少认证令牌")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			response.Unauthorized(c, "无效或过期的认证令牌")
			c.Abort()
			return
		}

		if revoked != nil && revoked(c.Request.Context(), claims.ID) {
			response.Unauthorized(c, "认证令牌已失效，请重新登录")
			c.Abort()
			return
		}

		c.Set(ContextKeyUsername, claims.Username)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// GetCurrentUsername 从 Gin Context 中获取当前登录用户名
func GetCurrentUsername(c *gin.Context) (string, bool) {
	val, exists := c.Get(ContextKeyUsername)
	if !exists {
		return "", false
	}
	username, ok := val.(string)
	return username, ok
}

// GetCurrentClaims 从 Gin Context 中获取当前 Token 的 Claims
func GetCurrentClaims(c *gin.Context) (*utils.Claims, bool) {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := val.(*utils.Claims)
	return claims, ok
}

// extractToken 从 Authorization 头中提取 Bearer Token
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
