package models

import (
	"github.com/google/uuid"
)

// ShiftType is a named wall-clock window. EndTime may be earlier than
// StartTime for overnight shifts.
type ShiftType struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100"`
	StartTime   string `json:"start_time" gorm:"not null;size:5"`
	EndTime     string `json:"end_time" gorm:"not null;size:5"`
	Description string `json:"description" gorm:"size:500"`
}

// TableName returns the table name for ShiftType
func (ShiftType) TableName() string {
	return "shift_types"
}

// Building is an inspection site with a supervisor and per-shift-type coordinators
type Building struct {
	BaseModel
	Name         string     `json:"name" gorm:"not null;size:200"`
	Code         string     `json:"code" gorm:"uniqueIndex;not null;size:50"`
	Area         string     `json:"area" gorm:"size:200"`
	SupervisorID *uuid.UUID `json:"supervisor_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Supervisor        *User                   `json:"supervisor,omitempty" gorm:"foreignKey:SupervisorID;constraint:OnDelete:SET NULL"`
	Coordinators      []BuildingCoordinator   `json:"coordinators" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
	WeeklyAssignments []WeeklyShiftAssignment `json:"weekly_assignments,omitempty" gorm:"foreignKey:BuildingID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Building
func (Building) TableName() string {
	return "buildings"
}

// BuildingCoordinator binds a coordinator to a building for one shift type.
// More than one coordinator per shift type is allowed.
type BuildingCoordinator struct {
	BaseModel
	BuildingID    uuid.UUID `json:"building_id" gorm:"type:uuid;not null;index"`
	CoordinatorID uuid.UUID `json:"coordinator_id" gorm:"type:uuid;not null;index"`
	ShiftTypeID   uuid.UUID `json:"shift_type_id" gorm:"type:uuid;not null;index"`

	// Relationships
	Coordinator *User      `json:"coordinator,omitempty" gorm:"foreignKey:CoordinatorID;constraint:OnDelete:CASCADE"`
	ShiftType   *ShiftType `json:"shift_type,omitempty" gorm:"foreignKey:ShiftTypeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for BuildingCoordinator
func (BuildingCoordinator) TableName() string {
	return "building_coordinators"
}
