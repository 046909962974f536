package repositories

import (
	"context"

	"gorm.io/gorm"

	"gamepay/app/models/subscription"
	"gamepay/pkg/database"
	"gamepay/pkg/logger"
)

// SubscriptionRepository 订阅仓库
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository 创建仓库实例
func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{
		db: database.DB,
	}
}

// NewSubscriptionRepositoryWithDB 使用指定的数据库连接创建仓库实例
func NewSubscriptionRepositoryWithDB(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// GetUserID 查询订阅归属的用户 ID
// 查询出错与记录不存在同样处理：记日志并返回空值，调用方按"未找到"处理
func (r *SubscriptionRepository) GetUserID(ctx context.Context, subscriptionID string) string {
	var sub subscription.Subscription
	err := r.db.WithContext(ctx).
		Select("user_id").
		Where("id = ?", subscriptionID).
		First(&sub).Error
	if err != nil {
		logger.WarnString("订阅", "查询用户", "subscription_id="+subscriptionID+" err="+err.Error())
		return ""
	}
	return sub.UserID
}

// UpdateStatus 按 ID 更新单条订阅状态，失败只记日志
func (r *SubscriptionRepository) UpdateStatus(ctx context.Context, subscriptionID, status string) {
	err := r.db.WithContext(ctx).
		Model(&subscription.Subscription{}).
		Where("id = ?", subscriptionID).
		Update("status", status).Error
	if err != nil {
		logger.ErrorString("订阅", "更新状态", "subscription_id="+subscriptionID+" err="+err.Error())
	}
}

// ListByUser 获取指定用户的订阅，按创建时间降序
func (r *SubscriptionRepository) ListByUser(ctx context.Context, userID string) ([]subscription.Subscription, error) {
	var subs []subscription.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}
