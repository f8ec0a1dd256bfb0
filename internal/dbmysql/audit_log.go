package dbmysql

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// AuditMetadata is free-form structured context for an audit entry, stored as
// a JSON column.
type AuditMetadata map[string]interface{}

func (m AuditMetadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *AuditMetadata) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into AuditMetadata", value)
	}
	return json.Unmarshal(raw, m)
}

// AuditLog is append-only: rows are created as a side effect of mutations,
// inside the mutation's own transaction, and never updated or deleted.
type AuditLog struct {
	AuditID     int64         `gorm:"primaryKey;autoIncrement;column:audit_id" json:"audit_id"`
	UserID      int64         `gorm:"column:user_id;index" json:"user_id"`
	Action      string        `gorm:"column:action;size:50;index" json:"action"`
	Description string        `gorm:"column:description;size:255" json:"description"`
	Metadata    AuditMetadata `gorm:"column:metadata;type:json" json:"metadata"`
	CreatedAt   time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (AuditLog) TableName() string {
	return "audit_log"
}
