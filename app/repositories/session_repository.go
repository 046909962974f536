package repositories

import (
	"context"

	"gorm.io/gorm"

	"gamepay/app/models/session"
	"gamepay/pkg/database"
	"gamepay/pkg/logger"
)

// SessionRepository 游戏场次仓库
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository 创建仓库实例
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		db: database.DB,
	}
}

// NewSessionRepositoryWithDB 使用指定的数据库连接创建仓库实例
func NewSessionRepositoryWithDB(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// GetUserID 查询场次归属的用户 ID
// 查询出错与记录不存在同样处理：记日志并返回空值，调用方按"未找到"处理
func (r *SessionRepository) GetUserID(ctx context.Context, sessionID string) string {
	var s session.GamingSession
	err := r.db.WithContext(ctx).
		Select("user_id").
		Where("id = ?", sessionID).
		First(&s).Error
	if err != nil {
		logger.WarnString("场次", "查询用户", "session_id="+sessionID+" err="+err.Error())
		return ""
	}
	return s.UserID
}

// UpdateStatus 按 ID 更新单条场次状态，失败只记日志
func (r *SessionRepository) UpdateStatus(ctx context.Context, sessionID, status string) {
	err := r.db.WithContext(ctx).
		Model(&session.GamingSession{}).
		Where("id = ?", sessionID).
		Update("status", status).Error
	if err != nil {
		logger.ErrorString("场次", "更新状态", "session_id="+sessionID+" err="+err.Error())
	}
}

// List 获取全部场次，按开始时间升序
func (r *SessionRepository) List(ctx context.Context) ([]session.GamingSession, error) {
	var sessions []session.GamingSession
	err := r.db.WithContext(ctx).
		Order("start_time ASC").
		Find(&sessions).Error
	return sessions, err
}
