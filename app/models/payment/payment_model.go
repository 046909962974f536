package payment

import (
	"gamepay/app/models"
)

// Payment 支付记录模型
//
// 金额保持字符串原样存储：服务只负责把客户端提交的金额透传给 PayTech，
// 既不做数值校验，入库时也不做转换
type Payment struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         string `gorm:"type:varchar(36);index" json:"user_id"`
	Amount         string `gorm:"type:varchar(32)" json:"amount"`
	Currency       string `gorm:"type:varchar(10)" json:"currency"`
	PaymentMethod  string `gorm:"type:varchar(20)" json:"payment_method"`
	Status         string `gorm:"type:varchar(20);index" json:"status"`
	Reference      string `gorm:"type:varchar(64);uniqueIndex" json:"reference"`
	SessionID      string `gorm:"type:varchar(36);index;default:null" json:"session_id,omitempty"`
	SubscriptionID string `gorm:"type:varchar(36);index;default:null" json:"subscription_id,omitempty"`

	models.CommonTimestampsField
}

// TableName 指定表名
func (Payment) TableName() string {
	return "payments"
}
