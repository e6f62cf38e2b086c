package repository

import (
	"context"

	"gorm.io/gorm"

	"classtrackerbot/internal/model"
)

// DailyPracticeLogRepository — append-only дневник практик.
type DailyPracticeLogRepository struct {
	db *gorm.DB
}

func NewDailyPracticeLogRepository(db *gorm.DB) *DailyPracticeLogRepository {
	return &DailyPracticeLogRepository{db: db}
}

func (r *DailyPracticeLogRepository) Create(ctx context.Context, minutes uint16, userID int64) (*model.DailyPracticeLog, error) {
	entry := model.DailyPracticeLog{Minutes: minutes, UserID: userID}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *DailyPracticeLogRepository) GetAll(ctx context.Context, userID int64) ([]model.DailyPracticeLog, error) {
	var entries []model.DailyPracticeLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("daily_practice_log_id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
