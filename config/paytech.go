package config

import (
	"gamepay/pkg/config"
)

func init() {
	config.Add("paytech", func() map[string]interface{} {
		return map[string]interface{}{
			// API 地址
			"base_url": config.Env("PAYTECH_BASE_URL", "https://paytech.sn/api"),

			// 商户密钥，控制台获取
			"api_key":    config.Env("PAYTECH_API_KEY", ""),
			"api_secret": config.Env("PAYTECH_API_SECRET", ""),

			// 网关环境标识，"test" 或 "prod"，切换测试/真实扣款
			"env": config.Env("PAYTECH_ENV", "test"),

			// 出站请求超时，单位秒
			"timeout": config.Env("PAYTECH_TIMEOUT", 30),
		}
	})
}
