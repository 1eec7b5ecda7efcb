package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"project-calendar-service/pkg/filter"

	"github.com/google/uuid"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Audit actions
const (
	AuditActionCalendarCreate = "project_calendar.create"
	AuditActionCalendarUpdate = "project_calendar.update"
	AuditActionCalendarDelete = "project_calendar.delete"
)

const (
	AuditLogFieldID        = "id"
	AuditLogFieldAction    = "action"
	AuditLogFieldUserID    = "userId"
	AuditLogFieldCreatedAt = "createdAt"
)

type AuditLogCriteria struct {
	ID        *filter.LongFilter
	Action    *filter.StringFilter
	UserID    *filter.UUIDFilter
	CreatedAt *filter.InstantFilter
}

func (c *AuditLogCriteria) String() string {
	if c == nil {
		return "AuditLogCriteria{}"
	}
	var parts []string
	if c.ID != nil {
		parts = append(parts, fmt.Sprintf("id=%s", c.ID))
	}
	if c.Action != nil {
		parts = append(parts, fmt.Sprintf("action=%s", c.Action))
	}
	if c.UserID != nil {
		parts = append(parts, fmt.Sprintf("userId=%s", c.UserID))
	}
	if c.CreatedAt != nil {
		parts = append(parts, fmt.Sprintf("createdAt=%s", c.CreatedAt))
	}
	return "AuditLogCriteria{" + strings.Join(parts, ", ") + "}"
}
