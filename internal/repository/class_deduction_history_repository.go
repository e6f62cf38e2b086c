package repository

import (
	"context"

	"gorm.io/gorm"

	"classtrackerbot/internal/model"
)

// ClassDeductionHistoryRepository — append-only история списаний.
type ClassDeductionHistoryRepository struct {
	db *gorm.DB
}

func NewClassDeductionHistoryRepository(db *gorm.DB) *ClassDeductionHistoryRepository {
	return &ClassDeductionHistoryRepository{db: db}
}

func (r *ClassDeductionHistoryRepository) Create(ctx context.Context, classID, userID int64) (*model.ClassDeductionHistory, error) {
	history := model.ClassDeductionHistory{ClassID: classID, UserID: userID}
	if err := r.db.WithContext(ctx).Create(&history).Error; err != nil {
		return nil, err
	}
	return &history, nil
}

func (r *ClassDeductionHistoryRepository) GetHistories(ctx context.Context, classID, userID int64) ([]model.ClassDeductionHistory, error) {
	var histories []model.ClassDeductionHistory
	err := r.db.WithContext(ctx).
		Where("class_id = ? AND user_id = ?", classID, userID).
		Order("class_deduction_history_id ASC").
		Find(&histories).Error
	if err != nil {
		return nil, err
	}
	return histories, nil
}
