package data

import (
	"context"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/verilens/factcheck-api/src/api/types"
)

func MustMySQL(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.AutoMigrate(&types.CheckRecord{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	return db
}

// CheckStore persists completed checks.
type CheckStore struct {
	db *gorm.DB
}

func NewCheckStore(db *gorm.DB) *CheckStore {
	if db == nil {
		return nil
	}
	return &CheckStore{db: db}
}

// Record inserts asynchronously; history is best-effort and must never
// slow down or fail the response path.
func (s *CheckStore) Record(rec types.CheckRecord) {
	if s == nil {
		return
	}
	go func() {
		if err := s.db.Create(&rec).Error; err != nil {
			log.Printf("check store: %v", err)
		}
	}()
}

// Recent returns the latest checks, newest first.
func (s *CheckStore) Recent(ctx context.Context, limit int) ([]types.CheckRecord, error) {
	var recs []types.CheckRecord
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}
