package service

import (
	"errors"
	"fmt"
)

// Доменные ошибки. Текст ошибки показывается пользователю как есть,
// поэтому сырые ошибки хранилища наружу не выходят — сервисы переводят
// их на этой границе.
var (
	ErrSomethingWentWrong = errors.New("Произошла непредвиденная ошибка")
	ErrUserNotFound       = errors.New("Не удалось найти пользователя")
	ErrClassNotFound      = errors.New("Не удалось найти занятие")
	ErrDuplicateClassName = errors.New("Занятие с таким именем уже существует. Пожалуйста, выберите другое имя.")
)

// NotEnoughQuantityError возвращается при попытке списать занятие
// с нулевым остатком. Несет наблюдаемый остаток.
type NotEnoughQuantityError struct {
	Remaining uint8
}

func (e *NotEnoughQuantityError) Error() string {
	return fmt.Sprintf("Не удалось списать занятие. Количество доступных занятий %d", e.Remaining)
}
