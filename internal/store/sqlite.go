package store

import (
	"errors"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	apperrors "pocketledger/internal/errors"
)

// entry is one key-value row in the backing database.
type entry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// TableName overrides the GORM table name.
func (entry) TableName() string { return "entries" }

// SQLiteBackend is a durable Backend storing each namespaced value as a row
// in a single SQLite table.
type SQLiteBackend struct {
	db    *gorm.DB
	quota int64
	mu    sync.Mutex
}

// NewSQLiteBackend opens (or creates) the database at path and migrates the
// entries table. A quota of zero disables the limit.
func NewSQLiteBackend(path string, quota int64) (*SQLiteBackend, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	return &SQLiteBackend{db: db, quota: quota}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteBackend) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get returns the stored value and whether the key was present.
func (s *SQLiteBackend) Get(key string) (string, bool, error) {
	var e entry
	err := s.db.First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return e.Value, true, nil
}

// Set stores value under key, enforcing the quota over total stored bytes.
func (s *SQLiteBackend) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quota > 0 {
		used, err := s.usedBytes()
		if err != nil {
			return err
		}
		var old int64
		s.db.Model(&entry{}).Select("COALESCE(SUM(LENGTH(value)), 0)").
			Where("key = ?", key).Scan(&old)
		if used-old+int64(len(value)) > s.quota {
			return apperrors.ErrStorageQuotaExceeded
		}
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry{Key: key, Value: value}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

// Delete removes the key entirely.
func (s *SQLiteBackend) Delete(key string) error {
	if err := s.db.Delete(&entry{}, "key = ?", key).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

// UsedBytes reports the total size of all stored values.
func (s *SQLiteBackend) UsedBytes() (int64, error) {
	return s.usedBytes()
}

// Quota reports the backend's capacity in bytes.
func (s *SQLiteBackend) Quota() int64 { return s.quota }

func (s *SQLiteBackend) usedBytes() (int64, error) {
	var total int64
	err := s.db.Model(&entry{}).Select("COALESCE(SUM(LENGTH(value)), 0)").Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return total, nil
}
