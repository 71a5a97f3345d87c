package models

// AssignmentStatus is the response state of a weekly assignment and of each
// inspector bound to one of its groups.
type AssignmentStatus string

const (
	AssignmentStatusPending  AssignmentStatus = "PENDING"
	AssignmentStatusAccepted AssignmentStatus = "ACCEPTED"
	AssignmentStatusRejected AssignmentStatus = "REJECTED"
)

// IsValid checks if the AssignmentStatus is valid
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusPending, AssignmentStatusAccepted, AssignmentStatusRejected:
		return true
	}
	return false
}

// RequestType discriminates the payload of a Request
type RequestType string

const (
	RequestTypeLeave     RequestType = "LEAVE"
	RequestTypeShiftSwap RequestType = "SHIFT_SWAP"
)

// IsValid checks if the RequestType is valid
func (t RequestType) IsValid() bool {
	switch t {
	case RequestTypeLeave, RequestTypeShiftSwap:
		return true
	}
	return false
}

// RequestStatus is the review state of a Request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// IsValid checks if the RequestStatus is valid
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

// IsFinal reports whether a request in this status can no longer be resolved
func (s RequestStatus) IsFinal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// NotificationType tags what produced a notification
type NotificationType string

const (
	NotificationShiftAssigned   NotificationType = "SHIFT_ASSIGNED"
	NotificationShiftRejected   NotificationType = "SHIFT_REJECTED"
	NotificationRequestAssigned NotificationType = "REQUEST_ASSIGNED"
	NotificationRequestResolved NotificationType = "REQUEST_RESOLVED"
)

// UserRole names the access flag used to filter user lists.
// It is derived from the flags on User, never stored.
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleManager   UserRole = "manager"
	UserRoleInspector UserRole = "inspector"
	UserRoleEmployee  UserRole = "employee"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleInspector, UserRoleEmployee:
		return true
	}
	return false
}
