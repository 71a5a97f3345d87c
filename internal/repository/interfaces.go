package repository

import (
	"time"

	"inspection-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserFilter narrows user listings. Zero values match everything.
type UserFilter struct {
	Query string
	Role  models.UserRole
}

// AssignmentFilter narrows weekly assignment and shift listings
type AssignmentFilter struct {
	BuildingID *uuid.UUID
	Week       string
}

// RequestFilter narrows request listings. Nil ids and an empty status match everything.
type RequestFilter struct {
	RequesterID *uuid.UUID
	ManagerID   *uuid.UUID
	Status      models.RequestStatus
}

// DashboardCounts is the row-count snapshot behind the admin dashboard
type DashboardCounts struct {
	Users             int64
	Admins            int64
	Managers          int64
	Inspectors        int64
	Buildings         int64
	WeeklyAssignments int64
	PendingRequests   int64
	ResponsesByStatus map[models.AssignmentStatus]int64
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByIDs(ids []uuid.UUID) ([]models.User, error)
	GetAll(filter UserFilter, limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// CatalogRepositoryInterface defines the operations shared by the name/description lookup tables
type CatalogRepositoryInterface[T any] interface {
	Create(entry *T) error
	GetByID(id uuid.UUID) (*T, error)
	GetAll() ([]T, error)
	Update(entry *T) error
	Delete(id uuid.UUID) error
}

// ShiftTypeRepositoryInterface defines the interface for shift type repository operations
type ShiftTypeRepositoryInterface interface {
	Create(shiftType *models.ShiftType) error
	GetByID(id uuid.UUID) (*models.ShiftType, error)
	GetAll() ([]models.ShiftType, error)
	Update(shiftType *models.ShiftType) error
	Delete(id uuid.UUID) error
}

// BuildingRepositoryInterface defines the interface for building repository operations
type BuildingRepositoryInterface interface {
	Create(building *models.Building) error
	GetByID(id uuid.UUID) (*models.Building, error)
	GetAll(limit, offset int) ([]models.Building, int64, error)
	Update(building *models.Building) error
	Delete(id uuid.UUID) error
	GetWithShifts(week string) ([]models.Building, error)
}

// WeeklyAssignmentRepositoryInterface defines the write and read paths of the weekly assignment aggregate
type WeeklyAssignmentRepositoryInterface interface {
	Create(assignment *models.WeeklyShiftAssignment) error
	GetByID(id uuid.UUID) (*models.WeeklyShiftAssignment, error)
	List(filter AssignmentFilter, limit, offset int) ([]models.WeeklyShiftAssignment, int64, error)
	Update(assignment *models.WeeklyShiftAssignment, groups []models.InspectorGroup) error
	Delete(id uuid.UUID) error
}

// InspectorGroupRepositoryInterface defines single-group (shift) operations on the aggregate
type InspectorGroupRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.InspectorGroup, error)
	Create(assignment *models.WeeklyShiftAssignment, group *models.InspectorGroup) error
	Replace(group *models.InspectorGroup) error
	Delete(id uuid.UUID) error
	List(filter AssignmentFilter, limit, offset int) ([]models.InspectorGroup, int64, error)
	ListForInspector(inspectorID uuid.UUID) ([]models.InspectorGroup, error)
	UpdateInspectorResponse(groupID, inspectorID uuid.UUID, status models.AssignmentStatus, reason *string, respondedAt time.Time) (bool, error)
	IsInspectorOfGroup(groupID, inspectorID uuid.UUID) (bool, error)
}

// RequestRepositoryInterface defines the interface for request repository operations
type RequestRepositoryInterface interface {
	Create(request *models.Request) error
	GetByID(id uuid.UUID) (*models.Request, error)
	List(filter RequestFilter, limit, offset int) ([]models.Request, int64, error)
	Resolve(id uuid.UUID, status models.RequestStatus, reviewerID uuid.UUID, reviewedAt time.Time, managerID *uuid.UUID) (bool, error)
	AssignManager(id, managerID uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	CreateBatch(notifications []models.Notification) error
	GetByUserID(userID uuid.UUID) ([]models.Notification, error)
	MarkRead(id, userID uuid.UUID) (bool, error)
	MarkAllRead(userID uuid.UUID) (int64, error)
}

// DashboardRepositoryInterface defines the aggregate counts read by the dashboard
type DashboardRepositoryInterface interface {
	Counts(week string) (*DashboardCounts, error)
}
