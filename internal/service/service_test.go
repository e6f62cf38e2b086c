package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"classtrackerbot/internal/model"
	"classtrackerbot/internal/repository"
)

const (
	aliceTelegramID = int64(1001)
	bobTelegramID   = int64(1002)
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := repository.NewDB(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

func setupServices(t *testing.T) (*gorm.DB, *UserService, *ClassService, *DailyPracticeLogService) {
	t.Helper()
	db := setupDB(t)
	return db, NewUserService(db), NewClassService(db), NewDailyPracticeLogService(db)
}

func TestAddUserIsIdempotent(t *testing.T) {
	db, users, _, _ := setupServices(t)
	ctx := context.Background()

	require.NoError(t, users.AddUser(ctx, aliceTelegramID, "alice"))
	require.NoError(t, users.AddUser(ctx, aliceTelegramID, "alice"))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("telegram_id = ?", aliceTelegramID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddClassRequiresRegisteredUser(t *testing.T) {
	_, _, classes, _ := setupServices(t)

	_, err := classes.AddClass(context.Background(), "Йога", 5, aliceTelegramID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddClassRoundTrip(t *testing.T) {
	_, users, classes, _ := setupServices(t)
	ctx := context.Background()

	require.NoError(t, users.AddUser(ctx, aliceTelegramID, "alice"))
	_, err := classes.AddClass(ctx, "Йога", 5, aliceTelegramID)
	require.NoError(t, err)

	list, err := classes.GetClasses(ctx, aliceTelegramID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Йога", list[0].Name)
	assert.EqualValues(t, 5, list[0].Quantity)
}

func TestAddClassDuplicateName(t *testing.T) {
	_, users, classes, _ := setupServices(t)
	ctx := context.Background()

	require.NoError(t, users.AddUser(ctx, aliceTelegramID, "alice"))
	_, err := classes.AddClass(ctx, "Йога", 5, aliceTelegramID)
	require.NoError(t, err)

	_, err = classes.AddClass(ctx, "Йога", 8, aliceTelegramID)
	assert.ErrorIs(t, err, ErrDuplicateClassName)

	// У другого пользователя такое же имя допустимо
	require.NoError(t, users.AddUser(ctx, bobTelegramID, "bob"))
	_, err = classes.AddClass(ctx, "Йога", 3, bobTelegramID)
	assert.NoError(t, err)
}

func TestDeductClassDecrementsAndHistoryAppends(t *testing.T) {
	_, users, classes, _ := setupServices(t)
	ctx := context.Background()

	require.NoError(t, users.AddUser(ctx, aliceTelegramID, "alice"))
	class, err := classes.AddClass(ctx, "Йога", 5, aliceTelegramID)
	require.NoError(t, err)

	updated, err := classes.DeductClass(ctx, class.ClassID, aliceTelegramID)
	require.NoError(t, err)
	assert.EqualValues(t, 4, updated.Quantity)

	require.NoError(t, classes.AddClassDeductionHistory(ctx, class.ClassID, aliceTelegramID))

	histories, err := classes.GetDeductionHistories(ctx, class.ClassID, aliceTelegramID)
	require.NoError(t, err)
	assert.Len(t, histories, 1)
	assert.Equal(t, class.ClassID, histories[0].ClassID)
}

func TestDeductClassToZeroThenFails(t *testing.T) {
	_, users, classes, _ := setupServices(t)
	ctx := context.Background()

	require.NoError(t, users.AddUser(ctx, aliceTelegramID, "alice"))
	class, err := classes.AddClass(ctx, "Йога", 2, aliceTelegramID)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := classes.DeductClass(ctx, class.ClassID, aliceTelegramID)
		require.NoError(t, err)
	}

	_, err = classes.DeductClass(ctx, class.ClassID, aliceTelegramID)
	var notEnough *NotEnoughQuantityError
	require.ErrorAs(t, err, &notEnough)
	assert.EqualValues(t, 0, notEnough.Remaining)

	// Остаток не ушел в минус
	list, err := classes.GetClasses(ctx, aliceTelegramID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, list[0].Quantity)
}

func TestDeductClassNotFound(t *testing.T) {
	_, users, classes, _ := setupServices(t)
	ctx := context.Background()

	require.NoError(t, users.AddUser(ctx, aliceTelegramID, "alice"))
	_, err := classes.DeductClass(ctx, 777, aliceTelegramID)
	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestUpdateClassQuantitySetsValueWithoutHistory(t *testing.T) {
	_, users, classes, _ := setupServices(t)
	ctx := context.Background()

	require.NoError(t, users.AddUser(ctx, aliceTelegramID, "alice"))
	class, err := classes.AddClass(ctx, "Йога", 5, aliceTelegramID)
	require.NoError(t, err)

	updated, err := classes.UpdateClassQuantity(ctx, class.ClassID, aliceTelegramID, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 10, updated.Quantity)

	// Ноль допустим: нижней границы нет
	updated, err = classes.UpdateClassQuantity(ctx, class.ClassID, aliceTelegramID, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, updated.Quantity)

	histories, err := classes.GetDeductionHistories(ctx, class.ClassID, aliceTelegramID)
	require.NoError(t, err)
	assert.Empty(t, histories)
}

func TestOwnershipScoping(t *testing.T) {
	_, users, classes, _ := setupServices(t)
	ctx := context.Background()

	require.NoError(t, users.AddUser(ctx, aliceTelegramID, "alice"))
	require.NoError(t, users.AddUser(ctx, bobTelegramID, "bob"))

	class, err := classes.AddClass(ctx, "Йога", 5, aliceTelegramID)
	require.NoError(t, err)

	// Чужое занятие недоступно ни на чтение, ни на запись
	_, err = classes.DeductClass(ctx, class.ClassID, bobTelegramID)
	assert.ErrorIs(t, err, ErrClassNotFound)

	_, err = classes.UpdateClassQuantity(ctx, class.ClassID, bobTelegramID, 1)
	assert.ErrorIs(t, err, ErrClassNotFound)

	list, err := classes.GetClasses(ctx, bobTelegramID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDailyPracticeRoundTrip(t *testing.T) {
	_, users, _, practices := setupServices(t)
	ctx := context.Background()

	require.NoError(t, users.AddUser(ctx, aliceTelegramID, "alice"))

	_, err := practices.AddDailyPracticeEntry(ctx, 45, aliceTelegramID)
	require.NoError(t, err)
	_, err = practices.AddDailyPracticeEntry(ctx, 30, aliceTelegramID)
	require.NoError(t, err)

	entries, err := practices.GetDailyPracticeLogHistory(ctx, aliceTelegramID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.EqualValues(t, 45, entries[0].Minutes)
	assert.EqualValues(t, 30, entries[1].Minutes)
}

func TestDailyPracticeRequiresRegisteredUser(t *testing.T) {
	_, _, _, practices := setupServices(t)

	_, err := practices.AddDailyPracticeEntry(context.Background(), 45, aliceTelegramID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
