package service

import (
	"context"
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

// WeeklyAssignmentService handles the weekly shift assignment aggregate
type WeeklyAssignmentService struct {
	repo      repository.WeeklyAssignmentRepositoryInterface
	notifier  *shiftNotifier
	validator *validator.Validate
}

// NewWeeklyAssignmentService creates a new weekly assignment service
func NewWeeklyAssignmentService(repo repository.WeeklyAssignmentRepositoryInterface, notificationRepo repository.NotificationRepositoryInterface, mailer EmailServiceInterface, validator *validator.Validate) *WeeklyAssignmentService {
	return &WeeklyAssignmentService{
		repo:      repo,
		notifier:  &shiftNotifier{notificationRepo: notificationRepo, mailer: mailer},
		validator: validator,
	}
}

// GroupInspectorInput binds one inspector to a group
type GroupInspectorInput struct {
	InspectorID uuid.UUID `json:"inspector_id" validate:"required"`
	IsPrimary   bool      `json:"is_primary"`
}

// DayBindingInput binds a day of the week (0=Sunday..6=Saturday) to a shift type
type DayBindingInput struct {
	DayOfWeek   int       `json:"day_of_week" validate:"min=0,max=6" example:"1"`
	ShiftTypeID uuid.UUID `json:"shift_type_id" validate:"required"`
}

// InspectorGroupInput is one group of an aggregate write. On update a group
// carrying an id is replaced; a group without one is inserted.
type InspectorGroupInput struct {
	ID         *uuid.UUID            `json:"id,omitempty"`
	RoleID     uuid.UUID             `json:"role_id" validate:"required"`
	Inspectors []GroupInspectorInput `json:"inspectors" validate:"dive"`
	Days       []DayBindingInput     `json:"days" validate:"dive"`
}

// CreateWeeklyAssignmentRequest creates an assignment with all of its groups
type CreateWeeklyAssignmentRequest struct {
	BuildingID uuid.UUID             `json:"building_id" validate:"required"`
	Week       string                `json:"week" validate:"required" example:"2024-W12"`
	Groups     []InspectorGroupInput `json:"groups" validate:"dive"`
}

// UpdateWeeklyAssignmentRequest is a partial update of the assignment row
// plus full replacement of the groups it carries
type UpdateWeeklyAssignmentRequest struct {
	Week            *string                  `json:"week,omitempty" example:"2024-W13"`
	Status          *models.AssignmentStatus `json:"status,omitempty" example:"ACCEPTED"`
	RejectionReason *string                  `json:"rejection_reason,omitempty"`
	Groups          []InspectorGroupInput    `json:"groups" validate:"dive"`
}

// WeeklyAssignmentListResponse represents a paginated list of assignments
type WeeklyAssignmentListResponse struct {
	Assignments []models.WeeklyShiftAssignment `json:"assignments"`
	Total       int64                          `json:"total"`
	Page        int                            `json:"page"`
	PageSize    int                            `json:"page_size"`
}

// Create persists the assignment and its groups atomically, then notifies
// and emails every assigned inspector
func (s *WeeklyAssignmentService) Create(ctx context.Context, req *CreateWeeklyAssignmentRequest, createdBy uuid.UUID) (*models.WeeklyShiftAssignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateWeek(req.Week); err != nil {
		return nil, err
	}

	assignment := &models.WeeklyShiftAssignment{
		BuildingID: req.BuildingID,
		Week:       req.Week,
		Status:     models.AssignmentStatusPending,
		CreatedBy:  &createdBy,
	}
	for _, g := range req.Groups {
		assignment.InspectorGroups = append(assignment.InspectorGroups, toInspectorGroup(g))
	}

	if err := s.repo.Create(assignment); err != nil {
		return nil, mapAggregateWriteError(err, "create")
	}

	created, err := s.GetByID(assignment.ID)
	if err != nil {
		return nil, err
	}
	s.notifier.notifyAssigned(ctx, created.Building, created.Week, created.InspectorGroups)
	return created, nil
}

// GetByID retrieves the full aggregate
func (s *WeeklyAssignmentService) GetByID(id uuid.UUID) (*models.WeeklyShiftAssignment, error) {
	assignment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWeeklyAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get weekly assignment: %w", err)
	}
	return assignment, nil
}

// List retrieves assignments, optionally for one building and/or week
func (s *WeeklyAssignmentService) List(buildingID *uuid.UUID, week string, page, pageSize int) (*WeeklyAssignmentListResponse, error) {
	if week != "" {
		if err := validateWeek(week); err != nil {
			return nil, err
		}
	}
	page, pageSize, offset := normalizePagination(page, pageSize)

	assignments, total, err := s.repo.List(repository.AssignmentFilter{BuildingID: buildingID, Week: week}, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly assignments: %w", err)
	}

	return &WeeklyAssignmentListResponse{
		Assignments: assignments,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Update applies the assignment fields present in req and replaces or inserts
// the groups it carries. Groups it omits are untouched. Inspectors of the
// written groups are notified again since their responses reset to PENDING.
func (s *WeeklyAssignmentService) Update(ctx context.Context, id uuid.UUID, req *UpdateWeeklyAssignmentRequest) (*models.WeeklyShiftAssignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	assignment, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Week != nil {
		if err := validateWeek(*req.Week); err != nil {
			return nil, err
		}
		assignment.Week = *req.Week
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", "status must be one of PENDING, ACCEPTED, REJECTED")
		}
		assignment.Status = *req.Status
	}
	if req.RejectionReason != nil {
		reason := strings.TrimSpace(*req.RejectionReason)
		if reason == "" {
			assignment.RejectionReason = nil
		} else {
			assignment.RejectionReason = &reason
		}
	}

	groups := make([]models.InspectorGroup, 0, len(req.Groups))
	for _, g := range req.Groups {
		groups = append(groups, toInspectorGroup(g))
	}

	if err := s.repo.Update(assignment, groups); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, mapAggregateWriteError(err, "update")
	}

	updated, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	written := make(map[uuid.UUID]bool, len(groups))
	for _, g := range groups {
		written[g.ID] = true
	}
	var touched []models.InspectorGroup
	for _, g := range updated.InspectorGroups {
		if written[g.ID] {
			touched = append(touched, g)
		}
	}
	s.notifier.notifyAssigned(ctx, updated.Building, updated.Week, touched)
	return updated, nil
}

// Delete removes the assignment and everything below it
func (s *WeeklyAssignmentService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWeeklyAssignmentNotFound
		}
		return fmt.Errorf("failed to delete weekly assignment: %w", err)
	}
	return nil
}

func toInspectorGroup(in InspectorGroupInput) models.InspectorGroup {
	group := models.InspectorGroup{
		RoleID:     in.RoleID,
		Inspectors: toGroupInspectors(in.Inspectors),
		Days:       toDailyShiftTypes(in.Days),
	}
	if in.ID != nil {
		group.ID = *in.ID
	}
	return group
}

func toGroupInspectors(in []GroupInspectorInput) []models.GroupInspector {
	out := make([]models.GroupInspector, 0, len(in))
	for _, i := range in {
		out = append(out, models.GroupInspector{
			InspectorID: i.InspectorID,
			IsPrimary:   i.IsPrimary,
			Status:      models.AssignmentStatusPending,
		})
	}
	return out
}

func toDailyShiftTypes(in []DayBindingInput) []models.DailyShiftType {
	out := make([]models.DailyShiftType, 0, len(in))
	for _, d := range in {
		out = append(out, models.DailyShiftType{
			DayOfWeek:   d.DayOfWeek,
			ShiftTypeID: d.ShiftTypeID,
		})
	}
	return out
}

func mapAggregateWriteError(err error, op string) error {
	switch {
	case database.IsUniqueViolation(err):
		return apperrors.ErrWeeklyAssignmentExists
	case database.IsForeignKeyViolation(err):
		return apperrors.NewValidationError("groups", "building, role, inspector or shift type does not exist")
	}
	return fmt.Errorf("failed to %s weekly assignment: %w", op, err)
}
