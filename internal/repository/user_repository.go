package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"classtrackerbot/internal/model"
)

// UserRepository — CRUD по таблице user. Handle (пул или транзакцию)
// поставляет UnitOfWork.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, telegramID int64, username string) (*model.User, error) {
	user := model.User{TelegramID: telegramID, Username: username}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByTelegramID возвращает nil, nil если пользователь не зарегистрирован.
func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
