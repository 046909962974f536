package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"gamepay/pkg/jwt"
	"gamepay/pkg/response"
)

// AuthJWT 校验 Bearer 令牌
// 校验通过后把用户 ID 和管理员标记写入请求上下文，
// "本人或管理员"的判断留给各控制器
func AuthJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Abort401(c, "Authorization header missing or invalid")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := jwt.ParseToken(tokenStr)
		if err != nil {
			response.Abort401(c, "Invalid token")
			return
		}

		// 保存 claims 到上下文
		c.Set("user_id", claims.UserID)
		c.Set("is_admin", claims.IsAdmin)
		c.Next()
	}
}
