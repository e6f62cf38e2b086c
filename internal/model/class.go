package model

import "fmt"

// Class — занятие с остатком предоплаченных посещений.
// Имя уникально в пределах одного пользователя.
type Class struct {
	ClassID  int64  `gorm:"column:class_id;primaryKey;autoIncrement"`
	UserID   int64  `gorm:"column:user_id;not null;uniqueIndex:idx_class_user_name"`
	Name     string `gorm:"column:name;not null;uniqueIndex:idx_class_user_name"`
	Quantity uint8  `gorm:"column:quantity;not null"`
}

func (Class) TableName() string {
	return "class"
}

func (c Class) String() string {
	return fmt.Sprintf("%s (%d)", c.Name, c.Quantity)
}
