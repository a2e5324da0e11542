package entities

import "time"

type AuditEventType string

const (
	AuditEventCreate AuditEventType = "create"
	AuditEventUpdate AuditEventType = "update"
	AuditEventDelete AuditEventType = "delete"
	AuditEventExport AuditEventType = "export"
)

type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailed  AuditStatus = "failed"
)

// AuditEvent records the outcome of one library operation, including the
// failed ones that ended in an empty commit.
type AuditEvent struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	OperationID string         `gorm:"index;size:36" json:"operation_id"`
	EventType   AuditEventType `gorm:"index;size:20" json:"event_type"`
	Action      string         `gorm:"size:100" json:"action"`      // e.g., "author_add", "book_update_title"
	EntityType  string         `gorm:"size:20" json:"entity_type"`  // "author" or "book"
	EntityKey   string         `gorm:"size:512" json:"entity_key"`  // author name or book title
	Description string         `gorm:"size:500" json:"description"` // Human-readable summary
	Status      AuditStatus    `gorm:"size:20" json:"status"`
	ErrorMsg    string         `gorm:"size:500" json:"error_msg,omitempty"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
}

func (AuditEvent) TableName() string {
	return "audit_events"
}
