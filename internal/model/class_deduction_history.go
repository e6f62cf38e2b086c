package model

import (
	"fmt"
	"time"

	"classtrackerbot/internal/utils"
)

// ClassDeductionHistory — запись о списании одного занятия. Только добавление.
type ClassDeductionHistory struct {
	ClassDeductionHistoryID int64     `gorm:"column:class_deduction_history_id;primaryKey;autoIncrement"`
	ClassID                 int64     `gorm:"column:class_id;not null"`
	UserID                  int64     `gorm:"column:user_id;not null"`
	CreatedAt               time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ClassDeductionHistory) TableName() string {
	return "class_deduction_history"
}

// String рендерит запись как "dd.mm.YYYY HH:MM (Пн)".
func (h ClassDeductionHistory) String() string {
	return fmt.Sprintf(
		"%s (%s)",
		h.CreatedAt.Format("02.01.2006 15:04"),
		utils.RussianWeekday(h.CreatedAt.Weekday(), true),
	)
}
