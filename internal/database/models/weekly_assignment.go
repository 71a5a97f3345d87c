package models

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyShiftAssignment covers one building for one ISO week (YYYY-Www) and
// exclusively owns its inspector groups.
type WeeklyShiftAssignment struct {
	BaseModel
	BuildingID      uuid.UUID        `json:"building_id" gorm:"type:uuid;not null;uniqueIndex:idx_weekly_assignment_building_week"`
	Week            string           `json:"week" gorm:"size:8;not null;uniqueIndex:idx_weekly_assignment_building_week;index"`
	Status          AssignmentStatus `json:"status" gorm:"type:varchar(20);not null"`
	RejectionReason *string          `json:"rejection_reason,omitempty" gorm:"type:text"`
	CreatedBy       *uuid.UUID       `json:"created_by,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Building        *Building        `json:"building,omitempty" gorm:"foreignKey:BuildingID"`
	Creator         *User            `json:"-" gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL"`
	InspectorGroups []InspectorGroup `json:"inspector_groups" gorm:"foreignKey:WeeklyShiftAssignmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for WeeklyShiftAssignment
func (WeeklyShiftAssignment) TableName() string {
	return "weekly_shift_assignments"
}

// InspectorGroup is what the API calls a "shift": a role plus the inspectors
// sharing a set of per-day shift-type bindings within one weekly assignment.
type InspectorGroup struct {
	BaseModel
	WeeklyShiftAssignmentID uuid.UUID `json:"weekly_shift_assignment_id" gorm:"type:uuid;not null;index"`
	RoleID                  uuid.UUID `json:"role_id" gorm:"type:uuid;not null;index"`

	// Relationships
	WeeklyShiftAssignment *WeeklyShiftAssignment `json:"weekly_shift_assignment,omitempty" gorm:"foreignKey:WeeklyShiftAssignmentID"`
	Role                  *Role                  `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Inspectors            []GroupInspector       `json:"inspectors" gorm:"foreignKey:WeeklyInspectorGroupID;constraint:OnDelete:CASCADE"`
	Days                  []DailyShiftType       `json:"days" gorm:"foreignKey:WeeklyInspectorGroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for InspectorGroup
func (InspectorGroup) TableName() string {
	return "weekly_inspector_groups"
}

// GroupInspector binds an inspector to a group and records their response.
// At most one primary per group is expected but not enforced.
type GroupInspector struct {
	BaseModel
	WeeklyInspectorGroupID uuid.UUID        `json:"weekly_inspector_group_id" gorm:"type:uuid;not null;index"`
	InspectorID            uuid.UUID        `json:"inspector_id" gorm:"type:uuid;not null;index"`
	IsPrimary              bool             `json:"is_primary" gorm:"not null"`
	Status                 AssignmentStatus `json:"status" gorm:"type:varchar(20);not null"`
	RejectionReason        *string          `json:"rejection_reason,omitempty" gorm:"type:text"`
	RespondedAt            *time.Time       `json:"responded_at,omitempty"`

	// Relationships
	Inspector *User `json:"inspector,omitempty" gorm:"foreignKey:InspectorID"`
}

// TableName returns the table name for GroupInspector
func (GroupInspector) TableName() string {
	return "weekly_group_inspectors"
}

// DailyShiftType binds a day of the week (0=Sunday..6=Saturday) to a shift type
// for one group. One binding per day is implied, not enforced.
type DailyShiftType struct {
	BaseModel
	WeeklyInspectorGroupID uuid.UUID `json:"weekly_inspector_group_id" gorm:"type:uuid;not null;index"`
	DayOfWeek              int       `json:"day_of_week" gorm:"not null"`
	ShiftTypeID            uuid.UUID `json:"shift_type_id" gorm:"type:uuid;not null;index"`

	// Relationships
	ShiftType *ShiftType `json:"shift_type,omitempty" gorm:"foreignKey:ShiftTypeID"`
}

// TableName returns the table name for DailyShiftType
func (DailyShiftType) TableName() string {
	return "weekly_daily_shift_types"
}
