package audit

import "time"

// AuditLog records one mutating operation with before/after snapshots.
type AuditLog struct {
	ID           uint      `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	Actor        string    `json:"actor" gorm:"column:actor;size:128"`
	Action       string    `json:"action" gorm:"not null;column:action;size:64"`
	ResourceType string    `json:"resource_type" gorm:"not null;column:resource_type;size:64"`
	ResourceID   string    `json:"resource_id" gorm:"column:resource_id;size:64"`
	OldData      []byte    `json:"old_data,omitempty" gorm:"type:jsonb;column:old_data"`
	NewData      []byte    `json:"new_data,omitempty" gorm:"type:jsonb;column:new_data"`
	IPAddress    string    `json:"ip_address" gorm:"column:ip_address;size:64"`
	UserAgent    string    `json:"user_agent" gorm:"column:user_agent;size:256"`
	Description  string    `json:"description" gorm:"type:text;column:description"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
