package models

import (
	"github.com/google/uuid"
)

// User is an account. Access is granted by the boolean flags; a user with no
// flag set is a plain employee.
type User struct {
	BaseModel
	Username     string     `json:"username" gorm:"uniqueIndex;not null;size:255"`
	FullName     string     `json:"full_name" gorm:"not null;size:200"`
	PasswordHash string     `json:"-" gorm:"not null;size:100"`
	IsAdmin      bool       `json:"is_admin" gorm:"not null"`
	IsManager    bool       `json:"is_manager" gorm:"not null"`
	IsInspector  bool       `json:"is_inspector" gorm:"not null"`
	AgencyID     *uuid.UUID `json:"agency_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Agency *Agency `json:"agency,omitempty" gorm:"foreignKey:AgencyID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// HasAnyRole reports whether the user holds at least one of the given access flags
func (u *User) HasAnyRole(roles ...UserRole) bool {
	for _, r := range roles {
		switch r {
		case UserRoleAdmin:
			if u.IsAdmin {
				return true
			}
		case UserRoleManager:
			if u.IsManager {
				return true
			}
		case UserRoleInspector:
			if u.IsInspector {
				return true
			}
		case UserRoleEmployee:
			if !u.IsAdmin && !u.IsManager && !u.IsInspector {
				return true
			}
		}
	}
	return false
}
