package models

import (
	"time"

	"github.com/google/uuid"
)

// Request is a leave or shift-swap request. LEAVE rows carry the date range,
// SHIFT_SWAP rows carry the shift ids (inspector group ids, not foreign keys).
type Request struct {
	BaseModel
	RequesterID   uuid.UUID     `json:"requester_id" gorm:"type:uuid;not null;index"`
	Type          RequestType   `json:"type" gorm:"type:varchar(20);not null"`
	ShiftID       *uuid.UUID    `json:"shift_id,omitempty" gorm:"type:uuid"`
	TargetShiftID *uuid.UUID    `json:"target_shift_id,omitempty" gorm:"type:uuid"`
	StartDate     *time.Time    `json:"start_date,omitempty" gorm:"type:date"`
	EndDate       *time.Time    `json:"end_date,omitempty" gorm:"type:date"`
	Reason        string        `json:"reason" gorm:"type:text"`
	Status        RequestStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	ManagerID     *uuid.UUID    `json:"manager_id,omitempty" gorm:"type:uuid;index"`
	ReviewerID    *uuid.UUID    `json:"reviewer_id,omitempty" gorm:"type:uuid"`
	ReviewedAt    *time.Time    `json:"reviewed_at,omitempty"`

	// Relationships
	Requester *User `json:"requester,omitempty" gorm:"foreignKey:RequesterID"`
	Manager   *User `json:"manager,omitempty" gorm:"foreignKey:ManagerID;constraint:OnDelete:SET NULL"`
	Reviewer  *User `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Request
func (Request) TableName() string {
	return "requests"
}
