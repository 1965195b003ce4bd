// Package notifier 负责通知的写入。通知永远是尽力而为：
// 写失败只记日志，绝不让触发它的主操作失败。
package notifier

import (
	"context"

	"noteshare/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Notifier interface {
	// Notify 给单个用户发一条消息，失败不向上抛
	Notify(ctx context.Context, userID uint, message string)
}

type DBNotifier struct {
	db *gorm.DB
}

var _ Notifier = (*DBNotifier)(nil)

func New(db *gorm.DB) *DBNotifier {
	return &DBNotifier{db: db}
}

func (n *DBNotifier) Notify(ctx context.Context, userID uint, message string) {
	notification := models.Notification{
		UserID:  userID,
		Message: message,
	}
	if err := n.db.WithContext(ctx).Create(&notification).Error; err != nil {
		zap.L().Error("failed to create notification",
			zap.Error(err),
			zap.Uint("user_id", userID))
	}
}
