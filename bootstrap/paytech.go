package bootstrap

import (
	"gamepay/pkg/config"
	"gamepay/pkg/paytech"
)

// SetupPayTech 初始化 PayTech 网关客户端
// 配置缺失时返回 nil，由调用方决定是否中止启动
func SetupPayTech() *paytech.Service {
	return paytech.NewService(paytech.Config{
		BaseURL:   config.GetString("paytech.base_url"),
		APIKey:    config.GetString("paytech.api_key"),
		APISecret: config.GetString("paytech.api_secret"),
		Env:       config.GetString("paytech.env"),
		Timeout:   config.GetInt("paytech.timeout"),
	})
}
