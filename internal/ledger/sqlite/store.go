package sqlite

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rizalfh/payment-sandbox/internal/ledger"
)

// LedgerBlob is a single row in the ledger_blobs table. The whole payment
// history lives in one row, keyed by the configured blob key.
type LedgerBlob struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Data      []byte    `gorm:"column:data;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (LedgerBlob) TableName() string {
	return "ledger_blobs"
}

type BlobStore struct {
	db  *gorm.DB
	key string
}

func NewBlobStore(db *gorm.DB, key string) ledger.BlobStore {
	return &BlobStore{db: db, key: key}
}

func (s *BlobStore) Read(ctx context.Context) ([]byte, error) {
	var blob LedgerBlob
	err := s.db.WithContext(ctx).Where("key = ?", s.key).First(&blob).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrBlobNotFound
		}
		return nil, err
	}
	return blob.Data, nil
}

func (s *BlobStore) Write(ctx context.Context, data []byte) error {
	blob := LedgerBlob{
		Key:       s.key,
		Data:      data,
		UpdatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&blob).Error
}

func (s *BlobStore) Delete(ctx context.Context) error {
	return s.db.WithContext(ctx).Where("key = ?", s.key).Delete(&LedgerBlob{}).Error
}
