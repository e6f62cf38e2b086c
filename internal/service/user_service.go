package service

import (
	"context"

	"gorm.io/gorm"

	"classtrackerbot/internal/infrastructure/logger"
	"classtrackerbot/internal/repository"
)

// UserService регистрирует пользователей. Остальные сервисы пользователей
// не создают — только /start.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// AddUser идемпотентно создает пользователя по telegram_id.
// Проверка и вставка выполняются в одной транзакции.
func (s *UserService) AddUser(ctx context.Context, telegramID int64, username string) error {
	uow, err := repository.NewTransactional(s.db)
	if err != nil {
		logger.Error("не удалось открыть транзакцию: ", err)
		return ErrSomethingWentWrong
	}
	defer uow.Close()

	existing, err := uow.Users().GetByTelegramID(ctx, telegramID)
	if err != nil {
		logger.Error("не удалось проверить пользователя: ", err)
		return ErrSomethingWentWrong
	}
	if existing != nil {
		return nil
	}

	if _, err := uow.Users().Create(ctx, telegramID, username); err != nil {
		logger.Error("не удалось создать пользователя: ", err)
		return ErrSomethingWentWrong
	}

	if err := uow.Commit(); err != nil {
		logger.Error("не удалось зафиксировать транзакцию: ", err)
		return ErrSomethingWentWrong
	}
	return nil
}

// resolveUserID переводит внешний telegram_id во внутренний user_id.
func resolveUserID(ctx context.Context, uow *repository.UnitOfWork, telegramID int64) (int64, error) {
	user, err := uow.Users().GetByTelegramID(ctx, telegramID)
	if err != nil {
		logger.Error("не удалось найти пользователя: ", err)
		return 0, ErrSomethingWentWrong
	}
	if user == nil {
		return 0, ErrUserNotFound
	}
	return user.UserID, nil
}
