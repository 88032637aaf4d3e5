package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"certmaster/models"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const (
	localStoreKey = "certificamaster_data"
	schemaVersion = "1.0"
)

// localBackup is the on-device envelope. A schema version mismatch on read is
// "no usable data", not an error and not a migration.
type localBackup struct {
	ID            uint           `gorm:"primarykey"`
	Key           string         `gorm:"uniqueIndex;not null"`
	SchemaVersion string         `gorm:"not null"`
	SavedAt       int64          `gorm:"not null"` // epoch millis
	Payload       datatypes.JSON `gorm:"not null"`
}

// LocalStore is the write-through backup in a SQLite file next to the
// process. It keeps editing possible when the remote store is unreachable.
type LocalStore struct {
	db *gorm.DB
}

func NewLocalStore(path string) (*LocalStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	if err := db.AutoMigrate(&localBackup{}); err != nil {
		return nil, fmt.Errorf("migrate local store: %w", err)
	}
	return &LocalStore{db: db}, nil
}

func (s *LocalStore) Load(ctx context.Context) (models.CertificateDocument, bool, error) {
	var backup localBackup
	err := s.db.WithContext(ctx).Where("key = ?", localStoreKey).First(&backup).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CertificateDocument{}, false, nil
	}
	if err != nil {
		return models.CertificateDocument{}, false, err
	}
	if backup.SchemaVersion != schemaVersion {
		return models.CertificateDocument{}, false, nil
	}

	var doc models.CertificateDocument
	if err := json.Unmarshal(backup.Payload, &doc); err != nil {
		return models.CertificateDocument{}, false, fmt.Errorf("decode local backup: %w", err)
	}
	return doc, true, nil
}

func (s *LocalStore) Save(ctx context.Context, doc models.CertificateDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	backup := localBackup{
		Key:           localStoreKey,
		SchemaVersion: schemaVersion,
		SavedAt:       time.Now().UnixMilli(),
		Payload:       payload,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"schema_version", "saved_at", "payload"}),
	}).Create(&backup).Error
}
