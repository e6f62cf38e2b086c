package service

import (
	"context"

	"gorm.io/gorm"

	"classtrackerbot/internal/infrastructure/logger"
	"classtrackerbot/internal/model"
	"classtrackerbot/internal/repository"
)

// DailyPracticeLogService — дневник практик.
type DailyPracticeLogService struct {
	db *gorm.DB
}

func NewDailyPracticeLogService(db *gorm.DB) *DailyPracticeLogService {
	return &DailyPracticeLogService{db: db}
}

// AddDailyPracticeEntry добавляет запись за сегодня.
func (s *DailyPracticeLogService) AddDailyPracticeEntry(ctx context.Context, minutes uint16, telegramID int64) (*model.DailyPracticeLog, error) {
	uow, err := repository.NewTransactional(s.db)
	if err != nil {
		logger.Error("не удалось открыть транзакцию: ", err)
		return nil, ErrSomethingWentWrong
	}
	defer uow.Close()

	userID, err := resolveUserID(ctx, uow, telegramID)
	if err != nil {
		return nil, err
	}

	entry, err := uow.PracticeLogs().Create(ctx, minutes, userID)
	if err != nil {
		logger.Error("не удалось добавить запись практики: ", err)
		return nil, ErrSomethingWentWrong
	}

	if err := uow.Commit(); err != nil {
		logger.Error("не удалось зафиксировать транзакцию: ", err)
		return nil, ErrSomethingWentWrong
	}
	return entry, nil
}

// GetDailyPracticeLogHistory возвращает записи в порядке добавления.
func (s *DailyPracticeLogService) GetDailyPracticeLogHistory(ctx context.Context, telegramID int64) ([]model.DailyPracticeLog, error) {
	uow := repository.NewReadOnly(s.db)
	defer uow.Close()

	userID, err := resolveUserID(ctx, uow, telegramID)
	if err != nil {
		return nil, err
	}

	entries, err := uow.PracticeLogs().GetAll(ctx, userID)
	if err != nil {
		logger.Error("не удалось получить дневник практик: ", err)
		return nil, ErrSomethingWentWrong
	}
	return entries, nil
}
