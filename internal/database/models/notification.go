package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Notification is a per-user inbox entry. Metadata is opaque JSON; when it
// carries a "shiftId" the notification is only visible while the user is
// still bound to that inspector group.
type Notification struct {
	BaseModel
	UserID   uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index"`
	Title    string           `json:"title" gorm:"not null;size:200"`
	Message  string           `json:"message" gorm:"type:text;not null"`
	Type     NotificationType `json:"type" gorm:"type:varchar(50);not null"`
	Metadata json.RawMessage  `json:"metadata,omitempty" gorm:"type:jsonb"`
	IsRead   bool             `json:"is_read" gorm:"not null;index"`

	// Relationships
	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

// NotificationMetadata is the known subset of Notification.Metadata.
// RejectedShiftID points the assignment's creator at a turned-down shift and
// is not subject to the membership check that ShiftID gets.
type NotificationMetadata struct {
	ShiftID         *uuid.UUID `json:"shiftId,omitempty"`
	RejectedShiftID *uuid.UUID `json:"rejectedShiftId,omitempty"`
	InspectorID     *uuid.UUID `json:"inspectorId,omitempty"`
	RequestID       *uuid.UUID `json:"requestId,omitempty"`
}

// ShiftID returns the shift the notification is tied to, if any. Metadata
// that is absent, malformed, or has no shiftId yields false.
func (n *Notification) ShiftID() (uuid.UUID, bool) {
	if len(n.Metadata) == 0 {
		return uuid.Nil, false
	}
	var meta NotificationMetadata
	if err := json.Unmarshal(n.Metadata, &meta); err != nil {
		return uuid.Nil, false
	}
	if meta.ShiftID == nil || *meta.ShiftID == uuid.Nil {
		return uuid.Nil, false
	}
	return *meta.ShiftID, true
}
