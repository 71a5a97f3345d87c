package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // e.g. "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConflictError is returned when the current state of a row forbids the
// requested transition, or when a referenced row blocks a delete.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound             = &NotFoundError{Entity: "user"}
	ErrBuildingNotFound         = &NotFoundError{Entity: "building"}
	ErrShiftTypeNotFound        = &NotFoundError{Entity: "shift type"}
	ErrRoleNotFound             = &NotFoundError{Entity: "role"}
	ErrAgencyNotFound           = &NotFoundError{Entity: "agency"}
	ErrTaskTypeNotFound         = &NotFoundError{Entity: "task type"}
	ErrWeeklyAssignmentNotFound = &NotFoundError{Entity: "weekly shift assignment"}
	ErrShiftNotFound            = &NotFoundError{Entity: "shift"}
	ErrShiftInspectorNotFound   = &NotFoundError{Entity: "shift inspector"}
	ErrRequestNotFound          = &NotFoundError{Entity: "request"}
	ErrNotificationNotFound     = &NotFoundError{Entity: "notification"}
)

// Already Exists Errors
var (
	ErrUserExists             = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrBuildingExists         = &AlreadyExistsError{Entity: "building", Context: "with this code"}
	ErrShiftTypeExists        = &AlreadyExistsError{Entity: "shift type", Context: "with this name"}
	ErrRoleExists             = &AlreadyExistsError{Entity: "role", Context: "with this name"}
	ErrAgencyExists           = &AlreadyExistsError{Entity: "agency", Context: "with this name"}
	ErrTaskTypeExists         = &AlreadyExistsError{Entity: "task type", Context: "with this name"}
	ErrWeeklyAssignmentExists = &AlreadyExistsError{Entity: "weekly shift assignment", Context: "for this building and week"}
)

// Business Logic Errors
var (
	ErrRejectionReasonRequired = &ValidationError{Field: "rejection_reason", Message: "a reason is required when rejecting a shift"}
	ErrInvalidWeek             = &ValidationError{Field: "week", Message: "week must use the YYYY-Www format"}
	ErrInvalidDateRange        = &ValidationError{Field: "end_date", Message: "end date must not be before start date"}
	ErrNotAManager             = &ValidationError{Field: "manager_id", Message: "user is not a manager"}
	ErrRequestAlreadyResolved  = &ConflictError{Message: "request has already been resolved"}
	ErrReferencedEntity        = &ConflictError{Message: "entity is still referenced by other records"}
	ErrCannotDeleteSelf        = &ConflictError{Message: "you cannot delete your own account"}
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid username or password"}
	ErrNotAuthenticated    = &AuthenticationError{Message: "authentication required"}
	ErrNotAuthorized       = &AuthorizationError{Message: "insufficient permissions"}
	ErrNotRequestReviewer  = &AuthorizationError{Message: "only an admin or the assigned manager can resolve this request"}
	ErrRequestAccessDenied = &AuthorizationError{Message: "you do not have access to this request"}
)

// Configuration Errors
var (
	ErrDirectoryNotConfigured = &ConfigurationError{Message: "LDAP directory is not configured: LDAP_HOST is empty"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
