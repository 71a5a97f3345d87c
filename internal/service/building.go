package service

import (
	"errors"
	"fmt"
	"strings"

	"inspection-scheduler-backend/internal/database"
	"inspection-scheduler-backend/internal/database/models"
	apperrors "inspection-scheduler-backend/internal/errors"
	"inspection-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BuildingService handles business logic for the building directory
type BuildingService struct {
	repo      repository.BuildingRepositoryInterface
	validator *validator.Validate
}

// NewBuildingService creates a new building service
func NewBuildingService(repo repository.BuildingRepositoryInterface, validator *validator.Validate) *BuildingService {
	return &BuildingService{
		repo:      repo,
		validator: validator,
	}
}

// CoordinatorInput binds a coordinator to the building for one shift type
type CoordinatorInput struct {
	CoordinatorID uuid.UUID `json:"coordinator_id" validate:"required"`
	ShiftTypeID   uuid.UUID `json:"shift_type_id" validate:"required"`
}

// BuildingRequest is the create/update payload. Coordinators replace the
// existing list wholesale.
type BuildingRequest struct {
	Name         string             `json:"name" validate:"required,max=200" example:"North Terminal"`
	Code         string             `json:"code" validate:"required,max=50" example:"NT-01"`
	Area         string             `json:"area" validate:"max=200" example:"North"`
	SupervisorID *uuid.UUID         `json:"supervisor_id,omitempty"`
	Coordinators []CoordinatorInput `json:"coordinators" validate:"dive"`
}

// BuildingListResponse represents a paginated list of buildings
type BuildingListResponse struct {
	Buildings []models.Building `json:"buildings"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// BuildingWithShifts is the denormalized schedule view of one building
type BuildingWithShifts struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Code        string               `json:"code"`
	Area        string               `json:"area"`
	Assignments []AssignmentOverview `json:"assignments"`
}

// AssignmentOverview is one weekly assignment in the schedule view
type AssignmentOverview struct {
	ID     uuid.UUID               `json:"id"`
	Week   string                  `json:"week"`
	Status models.AssignmentStatus `json:"status"`
	Groups []GroupOverview         `json:"groups"`
}

// GroupOverview is one inspector group (shift) in the schedule view
type GroupOverview struct {
	ID         uuid.UUID           `json:"id"`
	RoleID     uuid.UUID           `json:"role_id"`
	RoleName   string              `json:"role_name"`
	Days       []DayOverview       `json:"days"`
	Inspectors []InspectorOverview `json:"inspectors"`
}

// DayOverview is a day binding with its shift type resolved
type DayOverview struct {
	DayOfWeek     int       `json:"day_of_week"`
	DayName       string    `json:"day_name"`
	ShiftTypeID   uuid.UUID `json:"shift_type_id"`
	ShiftTypeName string    `json:"shift_type_name"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
}

// InspectorOverview is an inspector binding with the inspector's name resolved
type InspectorOverview struct {
	InspectorID     uuid.UUID               `json:"inspector_id"`
	FullName        string                  `json:"full_name"`
	IsPrimary       bool                    `json:"is_primary"`
	Status          models.AssignmentStatus `json:"status"`
	RejectionReason *string                 `json:"rejection_reason,omitempty"`
}

// Create creates a building with its coordinators
func (s *BuildingService) Create(req *BuildingRequest) (*models.Building, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	building := &models.Building{}
	applyBuildingRequest(building, req)
	if err := s.repo.Create(building); err != nil {
		return nil, mapBuildingWriteError(err, "create")
	}
	return s.GetByID(building.ID)
}

// GetByID retrieves a building with its supervisor and coordinators
func (s *BuildingService) GetByID(id uuid.UUID) (*models.Building, error) {
	building, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildingNotFound
		}
		return nil, fmt.Errorf("failed to get building: %w", err)
	}
	return building, nil
}

// GetAll retrieves buildings with pagination
func (s *BuildingService) GetAll(page, pageSize int) (*BuildingListResponse, error) {
	page, pageSize, offset := normalizePagination(page, pageSize)

	buildings, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}

	return &BuildingListResponse{
		Buildings: buildings,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update replaces the building fields and its coordinator list
func (s *BuildingService) Update(id uuid.UUID, req *BuildingRequest) (*models.Building, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	building := &models.Building{}
	building.ID = id
	applyBuildingRequest(building, req)
	if err := s.repo.Update(building); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildingNotFound
		}
		return nil, mapBuildingWriteError(err, "update")
	}
	return s.GetByID(id)
}

// Delete removes a building that has no weekly assignments
func (s *BuildingService) Delete(id uuid.UUID) error {
	return deleteEntity(s.repo.Delete, id, apperrors.ErrBuildingNotFound)
}

// GetWithShifts returns every building with its assignments for week (all
// weeks when empty) flattened for the schedule view
func (s *BuildingService) GetWithShifts(week string) ([]BuildingWithShifts, error) {
	if week != "" {
		if err := validateWeek(week); err != nil {
			return nil, err
		}
	}

	buildings, err := s.repo.GetWithShifts(week)
	if err != nil {
		return nil, fmt.Errorf("failed to load buildings with shifts: %w", err)
	}

	out := make([]BuildingWithShifts, 0, len(buildings))
	for _, b := range buildings {
		item := BuildingWithShifts{
			ID:          b.ID,
			Name:        b.Name,
			Code:        b.Code,
			Area:        b.Area,
			Assignments: make([]AssignmentOverview, 0, len(b.WeeklyAssignments)),
		}
		for _, a := range b.WeeklyAssignments {
			item.Assignments = append(item.Assignments, toAssignmentOverview(a))
		}
		out = append(out, item)
	}
	return out, nil
}

func toAssignmentOverview(a models.WeeklyShiftAssignment) AssignmentOverview {
	overview := AssignmentOverview{
		ID:     a.ID,
		Week:   a.Week,
		Status: a.Status,
		Groups: make([]GroupOverview, 0, len(a.InspectorGroups)),
	}
	for _, g := range a.InspectorGroups {
		overview.Groups = append(overview.Groups, toGroupOverview(g))
	}
	return overview
}

func toGroupOverview(g models.InspectorGroup) GroupOverview {
	group := GroupOverview{
		ID:         g.ID,
		RoleID:     g.RoleID,
		Days:       make([]DayOverview, 0, len(g.Days)),
		Inspectors: make([]InspectorOverview, 0, len(g.Inspectors)),
	}
	if g.Role != nil {
		group.RoleName = g.Role.Name
	}
	for _, d := range g.Days {
		day := DayOverview{
			DayOfWeek:   d.DayOfWeek,
			DayName:     dayName(d.DayOfWeek),
			ShiftTypeID: d.ShiftTypeID,
		}
		if d.ShiftType != nil {
			day.ShiftTypeName = d.ShiftType.Name
			day.StartTime = d.ShiftType.StartTime
			day.EndTime = d.ShiftType.EndTime
		}
		group.Days = append(group.Days, day)
	}
	for _, i := range g.Inspectors {
		inspector := InspectorOverview{
			InspectorID:     i.InspectorID,
			IsPrimary:       i.IsPrimary,
			Status:          i.Status,
			RejectionReason: i.RejectionReason,
		}
		if i.Inspector != nil {
			inspector.FullName = i.Inspector.FullName
		}
		group.Inspectors = append(group.Inspectors, inspector)
	}
	return group
}

func applyBuildingRequest(building *models.Building, req *BuildingRequest) {
	building.Name = strings.TrimSpace(req.Name)
	building.Code = strings.TrimSpace(req.Code)
	building.Area = strings.TrimSpace(req.Area)
	building.SupervisorID = req.SupervisorID
	building.Coordinators = make([]models.BuildingCoordinator, 0, len(req.Coordinators))
	for _, c := range req.Coordinators {
		building.Coordinators = append(building.Coordinators, models.BuildingCoordinator{
			CoordinatorID: c.CoordinatorID,
			ShiftTypeID:   c.ShiftTypeID,
		})
	}
}

func mapBuildingWriteError(err error, op string) error {
	switch {
	case database.IsUniqueViolation(err):
		return apperrors.ErrBuildingExists
	case database.IsForeignKeyViolation(err):
		return apperrors.NewValidationError("coordinators", "supervisor, coordinator or shift type does not exist")
	}
	return fmt.Errorf("failed to %s building: %w", op, err)
}
