// Package jwt 处理共享密钥签名的访问令牌
//
// 令牌由账号系统签发，本服务只做校验：载荷携带用户 ID（subject）
// 和管理员标记，订阅查询接口据此做"本人或管理员"的访问控制
package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"gamepay/pkg/config"
)

var (
	// ErrTokenInvalid 令牌无效或校验失败
	ErrTokenInvalid = errors.New("invalid token")
)

// CustomClaims 自定义载荷
type CustomClaims struct {
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
	jwtlib.RegisteredClaims
}

// ParseToken 解析并校验令牌
// 任何解析、签名或过期错误统一归一为 ErrTokenInvalid
func ParseToken(tokenStr string) (*CustomClaims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &CustomClaims{}, func(token *jwtlib.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(config.GetString("jwt.secret")), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// IssueToken 签发令牌，供测试和运维脚本使用
func IssueToken(userID string, isAdmin bool) (string, error) {
	ttl := time.Duration(config.GetInt64("jwt.expire_time", 120)) * time.Minute
	claims := CustomClaims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(ttl)),
			Issuer:    config.GetString("app.name"),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetString("jwt.secret")))
}
