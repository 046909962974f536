// Package models 模型通用属性和方法
package models

import "time"

// CommonTimestampsField 时间戳
type CommonTimestampsField struct {
	CreatedAt time.Time `gorm:"column:created_at;index;" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;index;" json:"updated_at"`
}
