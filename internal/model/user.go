package model

// User — зарегистрированный пользователь бота. Одна строка на telegram_id.
type User struct {
	UserID     int64  `gorm:"column:user_id;primaryKey;autoIncrement"`
	TelegramID int64  `gorm:"column:telegram_id;uniqueIndex;not null"`
	Username   string `gorm:"column:username"`
}

func (User) TableName() string {
	return "user"
}
