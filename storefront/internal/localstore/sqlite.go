package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Snapshot is one namespaced JSON document.
type Snapshot struct {
	Namespace string `gorm:"primaryKey"`
	Data      string `gorm:"not null"`
	UpdatedAt time.Time
}

// SQLite keeps snapshots in a local database file. The last Save for a
// namespace wins.
type SQLite struct {
	db *gorm.DB
}

// Open opens (creating if needed) the database at path. Use ":memory:"
// for a throwaway store.
func Open(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// one connection, so ":memory:" stays a single database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate local store: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Load decodes the snapshot for namespace into v. It reports false when
// nothing has been saved yet.
func (s *SQLite) Load(ctx context.Context, namespace string, v interface{}) (bool, error) {
	var snap Snapshot
	err := s.db.WithContext(ctx).First(&snap, "namespace = ?", namespace).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(snap.Data), v); err != nil {
		return false, fmt.Errorf("corrupt %s snapshot: %w", namespace, err)
	}
	return true, nil
}

func (s *SQLite) Save(ctx context.Context, namespace string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	snap := Snapshot{Namespace: namespace, Data: string(data), UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&snap).Error
}

// Delete drops the snapshot for namespace.
func (s *SQLite) Delete(ctx context.Context, namespace string) error {
	return s.db.WithContext(ctx).Delete(&Snapshot{}, "namespace = ?", namespace).Error
}

func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
