package model

import (
	"fmt"
	"time"

	"classtrackerbot/internal/utils"
)

// DailyPracticeLog — запись дневника практик в минутах. Только добавление.
type DailyPracticeLog struct {
	DailyPracticeLogID int64     `gorm:"column:daily_practice_log_id;primaryKey;autoIncrement"`
	UserID             int64     `gorm:"column:user_id;not null"`
	Minutes            uint16    `gorm:"column:minutes;not null"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (DailyPracticeLog) TableName() string {
	return "daily_practice_log"
}

// String рендерит запись как "dd.mm.YYYY (Пн) - N мин".
func (l DailyPracticeLog) String() string {
	return fmt.Sprintf(
		"%s (%s) - %d мин",
		l.CreatedAt.Format("02.01.2006"),
		utils.RussianWeekday(l.CreatedAt.Weekday(), true),
		l.Minutes,
	)
}
