package config

import (
	"gamepay/pkg/config"
)

func init() {
	config.Add("jwt", func() map[string]interface{} {
		return map[string]interface{}{

			// 共享签名密钥，必须与账号系统签发端保持一致
			"secret": config.Env("JWT_SECRET", ""),

			// 过期时间，单位分钟，只用于 IssueToken（测试/运维脚本）
			"expire_time": config.Env("JWT_EXPIRE_TIME", 120),
		}
	})
}
