// Package subscription 订阅模型
package subscription

import (
	"time"

	"gamepay/app/models"
)

// 订阅状态
const (
	StatusPending = "pending" // 待支付
	StatusActive  = "active"  // 支付完成后激活
)

// Subscription 订阅模型，主键是 Supabase 侧生成的 UUID
type Subscription struct {
	ID        string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string     `gorm:"type:varchar(36);index" json:"user_id"`
	Plan      string     `gorm:"type:varchar(50)" json:"plan"`
	Status    string     `gorm:"type:varchar(20);index" json:"status"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	models.CommonTimestampsField
}

// TableName 指定表名
func (Subscription) TableName() string {
	return "subscriptions"
}
