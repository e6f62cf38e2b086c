package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"classtrackerbot/internal/infrastructure/logger"
	"classtrackerbot/internal/model"
	"classtrackerbot/internal/repository"
)

// ClassService — операции над занятиями и историей списаний.
type ClassService struct {
	db *gorm.DB
}

func NewClassService(db *gorm.DB) *ClassService {
	return &ClassService{db: db}
}

// AddClass создает занятие (name, quantity) для пользователя.
func (s *ClassService) AddClass(ctx context.Context, name string, quantity uint8, telegramID int64) (*model.Class, error) {
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

	class, err := uow.Classes().Create(ctx, name, quantity, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateClassName
		}
		logger.Error("не удалось создать занятие: ", err)
		return nil, ErrSomethingWentWrong
	}

	if err := uow.Commit(); err != nil {
		logger.Error("не удалось зафиксировать транзакцию: ", err)
		return nil, ErrSomethingWentWrong
	}
	return class, nil
}

// DeductClass списывает одно посещение: quantity := quantity - 1.
// Запись в историю — отдельный сервис AddClassDeductionHistory; вызывающая
// сторона обязана вызвать оба и показывать успех только после обоих.
func (s *ClassService) DeductClass(ctx context.Context, classID, telegramID int64) (*model.Class, error) {
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

	class, err := uow.Classes().GetUserClassByID(ctx, classID, userID)
	if err != nil {
		logger.Error("не удалось загрузить занятие: ", err)
		return nil, ErrSomethingWentWrong
	}
	if class == nil {
		return nil, ErrClassNotFound
	}
	if class.Quantity == 0 {
		return nil, &NotEnoughQuantityError{Remaining: class.Quantity}
	}

	updated, err := uow.Classes().UpdateQuantity(ctx, class.ClassID, class.Quantity-1)
	if err != nil {
		logger.Error("не удалось обновить остаток: ", err)
		return nil, ErrSomethingWentWrong
	}

	if err := uow.Commit(); err != nil {
		logger.Error("не удалось зафиксировать транзакцию: ", err)
		return nil, ErrSomethingWentWrong
	}
	return updated, nil
}

// AddClassDeductionHistory добавляет запись о списании.
func (s *ClassService) AddClassDeductionHistory(ctx context.Context, classID, telegramID int64) error {
	uow, err := repository.NewTransactional(s.db)
	if err != nil {
		logger.Error("не удалось открыть транзакцию: ", err)
		return ErrSomethingWentWrong
	}
	defer uow.Close()

	userID, err := resolveUserID(ctx, uow, telegramID)
	if err != nil {
		return err
	}

	if _, err := uow.DeductionHistories().Create(ctx, classID, userID); err != nil {
		logger.Error("не удалось записать историю списания: ", err)
		return ErrSomethingWentWrong
	}

	if err := uow.Commit(); err != nil {
		logger.Error("не удалось зафиксировать транзакцию: ", err)
		return ErrSomethingWentWrong
	}
	return nil
}

// UpdateClassQuantity выставляет остаток занятия в указанное значение.
// Нижней границы, кроме диапазона u8, нет.
func (s *ClassService) UpdateClassQuantity(ctx context.Context, classID, telegramID int64, quantity uint8) (*model.Class, error) {
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

	class, err := uow.Classes().GetUserClassByID(ctx, classID, userID)
	if err != nil {
		logger.Error("не удалось загрузить занятие: ", err)
		return nil, ErrSomethingWentWrong
	}
	if class == nil {
		return nil, ErrClassNotFound
	}

	updated, err := uow.Classes().UpdateQuantity(ctx, class.ClassID, quantity)
	if err != nil {
		logger.Error("не удалось обновить остаток: ", err)
		return nil, ErrSomethingWentWrong
	}

	if err := uow.Commit(); err != nil {
		logger.Error("не удалось зафиксировать транзакцию: ", err)
		return nil, ErrSomethingWentWrong
	}
	return updated, nil
}

// GetClasses возвращает занятия пользователя в порядке добавления.
func (s *ClassService) GetClasses(ctx context.Context, telegramID int64) ([]model.Class, error) {
	uow := repository.NewReadOnly(s.db)
	defer uow.Close()

	userID, err := resolveUserID(ctx, uow, telegramID)
	if err != nil {
		return nil, err
	}

	classes, err := uow.Classes().GetUserClasses(ctx, userID)
	if err != nil {
		logger.Error("не удалось получить занятия: ", err)
		return nil, ErrSomethingWentWrong
	}
	return classes, nil
}

// GetDeductionHistories возвращает историю списаний занятия.
func (s *ClassService) GetDeductionHistories(ctx context.Context, classID, telegramID int64) ([]model.ClassDeductionHistory, error) {
	uow := repository.NewReadOnly(s.db)
	defer uow.Close()

	userID, err := resolveUserID(ctx, uow, telegramID)
	if err != nil {
		return nil, err
	}

	histories, err := uow.DeductionHistories().GetHistories(ctx, classID, userID)
	if err != nil {
		logger.Error("не удалось получить историю списаний: ", err)
		return nil, ErrSomethingWentWrong
	}
	return histories, nil
}
