package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inspection-scheduler-backend/internal/database/models"
	apperrors "inspection-scheduler-backend/internal/errors"
	"inspection-scheduler-backend/internal/logger"
	"inspection-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inspector responses to a shift
const (
	ShiftActionAccept = "ACCEPT"
	ShiftActionReject = "REJECT"
)

// ShiftService handles shifts (inspector groups): the inspector's own view and
// response workflow, and the admin single-group operations
type ShiftService struct {
	repo      repository.InspectorGroupRepositoryInterface
	notifier  *shiftNotifier
	validator *validator.Validate
	now       func() time.Time
}

// NewShiftService creates a new shift service
func NewShiftService(repo repository.InspectorGroupRepositoryInterface, notificationRepo repository.NotificationRepositoryInterface, mailer EmailServiceInterface, validator *validator.Validate) *ShiftService {
	return &ShiftService{
		repo:      repo,
		notifier:  &shiftNotifier{notificationRepo: notificationRepo, mailer: mailer},
		validator: validator,
		now:       time.Now,
	}
}

// RespondRequest is an inspector's answer to a shift
type RespondRequest struct {
	Action          string `json:"action" validate:"required,oneof=ACCEPT REJECT" example:"REJECT"`
	RejectionReason string `json:"rejection_reason,omitempty" example:"On leave that week"`
}

// CreateShiftRequest creates one group. The assignment is taken from
// weekly_assignment_id, or found or created for building_id and week.
type CreateShiftRequest struct {
	WeeklyAssignmentID *uuid.UUID            `json:"weekly_assignment_id,omitempty"`
	BuildingID         *uuid.UUID            `json:"building_id,omitempty" validate:"required_without=WeeklyAssignmentID"`
	Week               string                `json:"week,omitempty" validate:"required_without=WeeklyAssignmentID" example:"2024-W12"`
	RoleID             uuid.UUID             `json:"role_id" validate:"required"`
	Inspectors         []GroupInspectorInput `json:"inspectors" validate:"dive"`
	Days               []DayBindingInput     `json:"days" validate:"dive"`
}

// ReplaceShiftRequest replaces a group's role, inspectors and days
type ReplaceShiftRequest struct {
	RoleID     uuid.UUID             `json:"role_id" validate:"required"`
	Inspectors []GroupInspectorInput `json:"inspectors" validate:"dive"`
	Days       []DayBindingInput     `json:"days" validate:"dive"`
}

// InspectorShift is a shift as seen by one of its inspectors
type InspectorShift struct {
	ID                      uuid.UUID               `json:"id"`
	WeeklyShiftAssignmentID uuid.UUID               `json:"weekly_shift_assignment_id"`
	BuildingID              uuid.UUID               `json:"building_id"`
	BuildingName            string                  `json:"building_name"`
	BuildingCode            string                  `json:"building_code"`
	Week                    string                  `json:"week"`
	RoleID                  uuid.UUID               `json:"role_id"`
	RoleName                string                  `json:"role_name"`
	Days                    []DayOverview           `json:"days"`
	IsPrimary               bool                    `json:"is_primary"`
	Status                  models.AssignmentStatus `json:"status"`
	RejectionReason         *string                 `json:"rejection_reason,omitempty"`
	RespondedAt             *time.Time              `json:"responded_at,omitempty"`
	Inspectors              []InspectorOverview     `json:"inspectors"`
}

// ShiftListResponse represents a paginated list of shifts
type ShiftListResponse struct {
	Shifts   []models.InspectorGroup `json:"shifts"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

// ListForInspector returns every shift the inspector is bound to with their own response
func (s *ShiftService) ListForInspector(inspectorID uuid.UUID) ([]InspectorShift, error) {
	groups, err := s.repo.ListForInspector(inspectorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	out := make([]InspectorShift, 0, len(groups))
	for _, g := range groups {
		overview := toGroupOverview(g)
		shift := InspectorShift{
			ID:                      g.ID,
			WeeklyShiftAssignmentID: g.WeeklyShiftAssignmentID,
			RoleID:                  g.RoleID,
			RoleName:                overview.RoleName,
			Days:                    overview.Days,
			Inspectors:              overview.Inspectors,
		}
		if a := g.WeeklyShiftAssignment; a != nil {
			shift.BuildingID = a.BuildingID
			shift.Week = a.Week
			if a.Building != nil {
				shift.BuildingName = a.Building.Name
				shift.BuildingCode = a.Building.Code
			}
		}
		for _, gi := range g.Inspectors {
			if gi.InspectorID == inspectorID {
				shift.IsPrimary = gi.IsPrimary
				shift.Status = gi.Status
				shift.RejectionReason = gi.RejectionReason
				shift.RespondedAt = gi.RespondedAt
				break
			}
		}
		out = append(out, shift)
	}
	return out, nil
}

// Respond records the inspector's ACCEPT or REJECT. A rejection needs a
// non-blank reason and notifies whoever created the assignment.
func (s *ShiftService) Respond(ctx context.Context, shiftID, inspectorID uuid.UUID, req *RespondRequest) (models.AssignmentStatus, error) {
	req.Action = strings.ToUpper(strings.TrimSpace(req.Action))
	if err := s.validator.Struct(req); err != nil {
		return "", fmt.Errorf("validation failed: %w", err)
	}

	status := models.AssignmentStatusAccepted
	var reason *string
	if req.Action == ShiftActionReject {
		trimmed := strings.TrimSpace(req.RejectionReason)
		if trimmed == "" {
			return "", apperrors.ErrRejectionReasonRequired
		}
		status = models.AssignmentStatusRejected
		reason = &trimmed
	}

	updated, err := s.repo.UpdateInspectorResponse(shiftID, inspectorID, status, reason, s.now())
	if err != nil {
		return "", fmt.Errorf("failed to record response: %w", err)
	}
	if !updated {
		return "", apperrors.ErrShiftInspectorNotFound
	}

	if status == models.AssignmentStatusRejected {
		group, err := s.repo.GetByID(shiftID)
		if err != nil {
			logger.WithContext(ctx).WithError(err).WithField("shift_id", shiftID).Warn("failed to load shift for rejection notice")
		} else {
			s.notifier.notifyRejected(ctx, group, inspectorID, *reason)
		}
	}
	return status, nil
}

// GetByID retrieves one shift with its assignment, role, inspectors and days
func (s *ShiftService) GetByID(id uuid.UUID) (*models.InspectorGroup, error) {
	group, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return group, nil
}

// List retrieves shifts, optionally for one building and/or week
func (s *ShiftService) List(buildingID *uuid.UUID, week string, page, pageSize int) (*ShiftListResponse, error) {
	if week != "" {
		if err := validateWeek(week); err != nil {
			return nil, err
		}
	}
	page, pageSize, offset := normalizePagination(page, pageSize)

	groups, total, err := s.repo.List(repository.AssignmentFilter{BuildingID: buildingID, Week: week}, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	return &ShiftListResponse{
		Shifts:   groups,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Create adds one group to an assignment, creating the assignment for
// (building, week) when it does not exist, then notifies its inspectors
func (s *ShiftService) Create(ctx context.Context, req *CreateShiftRequest, createdBy uuid.UUID) (*models.InspectorGroup, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	assignment := &models.WeeklyShiftAssignment{}
	if req.WeeklyAssignmentID != nil {
		assignment.ID = *req.WeeklyAssignmentID
	} else {
		if err := validateWeek(req.Week); err != nil {
			return nil, err
		}
		assignment.BuildingID = *req.BuildingID
		assignment.Week = req.Week
		assignment.Status = models.AssignmentStatusPending
		assignment.CreatedBy = &createdBy
	}

	group := &models.InspectorGroup{
		RoleID:     req.RoleID,
		Inspectors: toGroupInspectors(req.Inspectors),
		Days:       toDailyShiftTypes(req.Days),
	}
	if err := s.repo.Create(assignment, group); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWeeklyAssignmentNotFound
		}
		return nil, mapAggregateWriteError(err, "create shift for")
	}

	created, err := s.GetByID(group.ID)
	if err != nil {
		return nil, err
	}
	if a := created.WeeklyShiftAssignment; a != nil {
		s.notifier.notifyAssigned(ctx, a.Building, a.Week, []models.InspectorGroup{*created})
	}
	return created, nil
}

// Replace swaps a group's role, inspectors and days. Every inspector response
// starts over as PENDING.
func (s *ShiftService) Replace(ctx context.Context, id uuid.UUID, req *ReplaceShiftRequest) (*models.InspectorGroup, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	group := &models.InspectorGroup{
		RoleID:     req.RoleID,
		Inspectors: toGroupInspectors(req.Inspectors),
		Days:       toDailyShiftTypes(req.Days),
	}
	group.ID = id
	group.WeeklyShiftAssignmentID = existing.WeeklyShiftAssignmentID

	if err := s.repo.Replace(group); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, mapAggregateWriteError(err, "replace shift of")
	}

	replaced, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a := replaced.WeeklyShiftAssignment; a != nil {
		s.notifier.notifyAssigned(ctx, a.Building, a.Week, []models.InspectorGroup{*replaced})
	}
	return replaced, nil
}

// Delete removes a group and its inspector and day bindings
func (s *ShiftService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}
