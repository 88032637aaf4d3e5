// Package persistence mirrors the document aggregate to a remote store with a
// local on-device fallback. Both stores are opaque key-value holders keyed by
// the shared tenant id; neither is the source of truth during a session.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"certmaster/models"

	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RemoteStore is the cloud side of the bridge. Load with no stored record is
// not an error.
type RemoteStore interface {
	Load(ctx context.Context, tenantID string) (models.CertificateDocument, bool, error)
	Save(ctx context.Context, tenantID string, doc models.CertificateDocument) error
}

// GormStore keeps one DocumentRecord row per tenant in Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(ctx context.Context, tenantID string) (models.CertificateDocument, bool, error) {
	var record models.DocumentRecord
	err := s.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CertificateDocument{}, false, nil
	}
	if err != nil {
		return models.CertificateDocument{}, false, err
	}

	var doc models.CertificateDocument
	if err := json.Unmarshal(record.Content, &doc); err != nil {
		return models.CertificateDocument{}, false, fmt.Errorf("decode stored document: %w", err)
	}
	return doc, true, nil
}

func (s *GormStore) Save(ctx context.Context, tenantID string, doc models.CertificateDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	record := models.DocumentRecord{
		TenantID:  tenantID,
		Content:   payload,
		UpdatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&record).Error
}

// SupabaseStore talks to a PostgREST user_data table, the backend the hosted
// deployment uses. One logical record, upsert-by-key.
type SupabaseStore struct {
	client *resty.Client
}

func NewSupabaseStore(baseURL, apiKey string) *SupabaseStore {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("apikey", apiKey).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json")
	return &SupabaseStore{client: client}
}

func (s *SupabaseStore) Load(ctx context.Context, tenantID string) (models.CertificateDocument, bool, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("user_id", "eq."+tenantID).
		SetQueryParam("select", "content").
		Get("/rest/v1/user_data")
	if err != nil {
		return models.CertificateDocument{}, false, err
	}
	if resp.StatusCode() != 200 {
		return models.CertificateDocument{}, false, fmt.Errorf("remote store read failed: %s", resp.Status())
	}

	var rows []struct {
		Content models.CertificateDocument `json:"content"`
	}
	if err := json.Unmarshal(resp.Body(), &rows); err != nil {
		return models.CertificateDocument{}, false, fmt.Errorf("decode remote payload: %w", err)
	}
	if len(rows) == 0 {
		return models.CertificateDocument{}, false, nil
	}
	return rows[0].Content, true, nil
}

func (s *SupabaseStore) Save(ctx context.Context, tenantID string, doc models.CertificateDocument) error {
	body := []map[string]interface{}{{
		"user_id":    tenantID,
		"content":    doc,
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "resolution=merge-duplicates").
		SetBody(body).
		Post("/rest/v1/user_data")
	if err != nil {
		return err
	}
	if resp.StatusCode() >= 300 {
		return fmt.Errorf("remote store write failed: %s", resp.Status())
	}
	return nil
}
