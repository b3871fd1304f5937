package model

import (
	"time"

	"gorm.io/datatypes"
)

// DocumentModel is the GORM-specific struct for the 'kv_documents' table.
// Each row holds one whole JSON document.
type DocumentModel struct {
	Key       string         `gorm:"column:key;primaryKey;type:text"`
	Value     datatypes.JSON `gorm:"column:value;type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null"`
}

// TableName explicitly sets the table name for GORM.
func (DocumentModel) TableName() string {
	return "kv_documents"
}
