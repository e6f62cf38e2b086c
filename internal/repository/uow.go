package repository

import "gorm.io/gorm"

// UnitOfWork обрамляет одну бизнес-операцию и владеет временем жизни
// соединения. Два режима:
//   - read-only: работает через пул без транзакции;
//   - transactional: транзакция открывается сразу, Commit — явный,
//     Close без Commit делает Rollback.
type UnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	committed bool
}

// NewReadOnly создает UnitOfWork без транзакции.
func NewReadOnly(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// NewTransactional создает UnitOfWork с немедленно открытой транзакцией.
func NewTransactional(db *gorm.DB) (*UnitOfWork, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &UnitOfWork{db: db, tx: tx}, nil
}

// conn возвращает общий handle: транзакцию либо пул.
func (u *UnitOfWork) conn() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Commit фиксирует транзакцию. Для read-only режима — no-op.
func (u *UnitOfWork) Commit() error {
	if u.tx == nil {
		return nil
	}
	if err := u.tx.Commit().Error; err != nil {
		return err
	}
	u.committed = true
	return nil
}

// Close откатывает незафиксированную транзакцию. Безопасен для defer
// в обоих режимах и после Commit.
func (u *UnitOfWork) Close() {
	if u.tx != nil && !u.committed {
		u.tx.Rollback()
	}
}

func (u *UnitOfWork) Users() *UserRepository {
	return NewUserRepository(u.conn())
}

func (u *UnitOfWork) Classes() *ClassRepository {
	return NewClassRepository(u.conn())
}

func (u *UnitOfWork) DeductionHistories() *ClassDeductionHistoryRepository {
	return NewClassDeductionHistoryRepository(u.conn())
}

func (u *UnitOfWork) PracticeLogs() *DailyPracticeLogRepository {
	return NewDailyPracticeLogRepository(u.conn())
}
