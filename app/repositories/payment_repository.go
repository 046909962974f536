// Package repositories 数据仓储层
package repositories

import (
	"context"

	"gorm.io/gorm"

	"gamepay/app/models/payment"
	"gamepay/pkg/database"
	"gamepay/pkg/logger"
)

// PaymentRepository 支付记录仓库
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository 创建仓库实例
func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		db: database.DB,
	}
}

// NewPaymentRepositoryWithDB 使用指定的数据库连接创建仓库实例
func NewPaymentRepositoryWithDB(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create 创建支付记录
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// UpdateStatusByReference 根据支付引用号更新支付状态
// 回调处理中的次要写入：失败只记日志，绝不向网关暴露错误
func (r *PaymentRepository) UpdateStatusByReference(ctx context.Context, reference string, status payment.Status) {
	err := r.db.WithContext(ctx).
		Model(&payment.Payment{}).
		Where("reference = ?", reference).
		Update("status", string(status)).Error
	if err != nil {
		logger.ErrorString("支付", "更新状态", "reference="+reference+" err="+err.Error())
	}
}

// GetByReference 根据支付引用号获取支付记录
func (r *PaymentRepository) GetByReference(ctx context.Context, reference string) (*payment.Payment, error) {
	var p payment.Payment
	err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
