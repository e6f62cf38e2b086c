package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRussianWeekdayShort(t *testing.T) {
	assert.Equal(t, "Пн", RussianWeekday(time.Monday, true))
	assert.Equal(t, "Ср", RussianWeekday(time.Wednesday, true))
	assert.Equal(t, "Вс", RussianWeekday(time.Sunday, true))
}

func TestRussianWeekdayFull(t *testing.T) {
	assert.Equal(t, "Понедельник", RussianWeekday(time.Monday, false))
	assert.Equal(t, "Суббота", RussianWeekday(time.Saturday, false))
}
