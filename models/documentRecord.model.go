package models

import (
	"time"

	"gorm.io/datatypes"
)

// DocumentRecord is the remote-store row: one serialized document per tenant.
// Multi-tenancy is not implemented; every operator of a deployment shares the
// fixed tenant id, so the table effectively holds a single row.
type DocumentRecord struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	TenantID  string         `json:"tenant_id" gorm:"uniqueIndex;not null"`
	Content   datatypes.JSON `json:"content"`
	UpdatedAt time.Time      `json:"updated_at"`
}
