package service

import (
	"context"

	"inspection-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Register(req *RegisterRequest) (*models.User, error)
	Create(req *CreateUserRequest) (*models.User, error)
	GetByID(id uuid.UUID) (*models.User, error)
	List(query string, role models.UserRole, page, pageSize int) (*UserListResponse, error)
	ListInspectors() ([]models.User, error)
	ListManagers() ([]models.User, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*models.User, error)
	Delete(id, callerID uuid.UUID) error
}

// CatalogServiceInterface defines the interface shared by the lookup-table services
type CatalogServiceInterface[T any] interface {
	Create(req *CatalogRequest) (*T, error)
	GetByID(id uuid.UUID) (*T, error)
	GetAll() ([]T, error)
	Update(id uuid.UUID, req *CatalogRequest) (*T, error)
	Delete(id uuid.UUID) error
}

// ShiftTypeServiceInterface defines the interface for shift type service
type ShiftTypeServiceInterface interface {
	Create(req *ShiftTypeRequest) (*models.ShiftType, error)
	GetByID(id uuid.UUID) (*models.ShiftType, error)
	GetAll() ([]models.ShiftType, error)
	Update(id uuid.UUID, req *ShiftTypeRequest) (*models.ShiftType, error)
	Delete(id uuid.UUID) error
}

// BuildingServiceInterface defines the interface for building service
type BuildingServiceInterface interface {
	Create(req *BuildingRequest) (*models.Building, error)
	GetByID(id uuid.UUID) (*models.Building, error)
	GetAll(page, pageSize int) (*BuildingListResponse, error)
	Update(id uuid.UUID, req *BuildingRequest) (*models.Building, error)
	Delete(id uuid.UUID) error
	GetWithShifts(week string) ([]BuildingWithShifts, error)
}

// WeeklyAssignmentServiceInterface defines the interface for weekly assignment service
type WeeklyAssignmentServiceInterface interface {
	Create(ctx context.Context, req *CreateWeeklyAssignmentRequest, createdBy uuid.UUID) (*models.WeeklyShiftAssignment, error)
	GetByID(id uuid.UUID) (*models.WeeklyShiftAssignment, error)
	List(buildingID *uuid.UUID, week string, page, pageSize int) (*WeeklyAssignmentListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateWeeklyAssignmentRequest) (*models.WeeklyShiftAssignment, error)
	Delete(id uuid.UUID) error
}

// ShiftServiceInterface defines the interface for shift service
type ShiftServiceInterface interface {
	ListForInspector(inspectorID uuid.UUID) ([]InspectorShift, error)
	Respond(ctx context.Context, shiftID, inspectorID uuid.UUID, req *RespondRequest) (models.AssignmentStatus, error)
	GetByID(id uuid.UUID) (*models.InspectorGroup, error)
	List(buildingID *uuid.UUID, week string, page, pageSize int) (*ShiftListResponse, error)
	Create(ctx context.Context, req *CreateShiftRequest, createdBy uuid.UUID) (*models.InspectorGroup, error)
	Replace(ctx context.Context, id uuid.UUID, req *ReplaceShiftRequest) (*models.InspectorGroup, error)
	Delete(id uuid.UUID) error
}

// RequestServiceInterface defines the interface for request service
type RequestServiceInterface interface {
	Create(requesterID uuid.UUID, req *CreateRequestRequest) (*models.Request, error)
	List(caller *models.User, scope string, status models.RequestStatus, page, pageSize int) (*RequestListResponse, error)
	Get(caller *models.User, id uuid.UUID) (*models.Request, error)
	Resolve(ctx context.Context, caller *models.User, id uuid.UUID, req *ResolveRequestRequest) (*models.Request, error)
	AssignManager(ctx context.Context, id uuid.UUID, req *AssignManagerRequest) (*models.Request, error)
}

// NotificationServiceInterface defines the interface for notification service
type NotificationServiceInterface interface {
	List(userID uuid.UUID) ([]models.Notification, error)
	UnreadCount(userID uuid.UUID) (int64, error)
	MarkRead(id, userID uuid.UUID) error
	MarkAllRead(userID uuid.UUID) (int64, error)
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	Get() (*DashboardResponse, error)
}

// DirectoryServiceInterface defines the interface for corporate directory lookups
type DirectoryServiceInterface interface {
	SearchByCN(cn string) ([]DirectoryUser, error)
}

// EmailServiceInterface defines the interface for outbound email
type EmailServiceInterface interface {
	SendShiftAssignment(ctx context.Context, to string, details ShiftAssignmentEmail) bool
}
