package migrations

import (
	"gamepay/app/models/payment"
	"gamepay/app/models/session"
	"gamepay/app/models/subscription"
)

// RegisterTables 返回需要迁移的表的模型列表
// 线上的数据表由 Supabase 托管，自动迁移只用于本地开发和测试环境
func RegisterTables() []interface{} {
	return []interface{}{
		&payment.Payment{},
		&session.GamingSession{},
		&subscription.Subscription{},
	}
}
