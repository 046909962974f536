// Package config 站点配置信息
package config

import "gamepay/pkg/config"

func init() {
	config.Add("app", func() map[string]interface{} {
		return map[string]interface{}{

			// 应用名称
			"name": config.Env("APP_NAME", "GamePay"),

			// 当前环境，用以区分多环境，一般为 local, stage, production, testing
			"env": config.Env("APP_ENV", "production"),

			// 是否进入调试模式
			"debug": config.Env("APP_DEBUG", false),

			// 应用服务端口
			"port": config.Env("APP_PORT", "3000"),

			// 对外可达的站点地址，用于拼接支付成功/取消的跳转页面
			"url": config.Env("APP_URL", "http://localhost:3000"),

			// 设置时区，日志记录和数据库连接里会使用到
			"timezone": config.Env("TIMEZONE", "Africa/Dakar"),
		}
	})
}
