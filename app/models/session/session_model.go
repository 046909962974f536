// Package session 游戏场次模型
package session

import (
	"time"

	"gamepay/app/models"
)

// 场次状态，状态流转由客户端和支付回调驱动
const (
	StatusPending   = "pending"   // 预订待支付
	StatusConfirmed = "confirmed" // 支付完成后确认
)

// GamingSession 游戏场次模型，主键是 Supabase 侧生成的 UUID
type GamingSession struct {
	ID        string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string     `gorm:"type:varchar(36);index" json:"user_id"`
	Status    string     `gorm:"type:varchar(20);index" json:"status"`
	StartTime time.Time  `gorm:"index" json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	models.CommonTimestampsField
}

// TableName 指定表名
func (GamingSession) TableName() string {
	return "gaming_sessions"
}
