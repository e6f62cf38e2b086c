package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"classtrackerbot/internal/model"
)

// ClassRepository — CRUD по таблице class.
type ClassRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

func (r *ClassRepository) Create(ctx context.Context, name string, quantity uint8, userID int64) (*model.Class, error) {
	class := model.Class{Name: name, Quantity: quantity, UserID: userID}
	if err := r.db.WithContext(ctx).Create(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

// GetUserClassByID возвращает nil, nil если занятие не принадлежит пользователю.
func (r *ClassRepository) GetUserClassByID(ctx context.Context, classID, userID int64) (*model.Class, error) {
	var class model.Class
	err := r.db.WithContext(ctx).
		Where("class_id = ? AND user_id = ?", classID, userID).
		First(&class).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *ClassRepository) GetUserClasses(ctx context.Context, userID int64) ([]model.Class, error) {
	var classes []model.Class
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("class_id ASC").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *ClassRepository) UpdateQuantity(ctx context.Context, classID int64, quantity uint8) (*model.Class, error) {
	err := r.db.WithContext(ctx).
		Model(&model.Class{}).
		Where("class_id = ?", classID).
		Update("quantity", quantity).Error
	if err != nil {
		return nil, err
	}

	var class model.Class
	if err := r.db.WithContext(ctx).Where("class_id = ?", classID).First(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}
