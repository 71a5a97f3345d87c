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

const dateLayout = "2006-01-02"

// Request list scopes
const (
	RequestScopeOwn      = "own"
	RequestScopeAssigned = "assigned"
	RequestScopeAll      = "all"
)

// RequestService handles leave and shift-swap requests and their review
type RequestService struct {
	repo             repository.RequestRepositoryInterface
	userRepo         repository.UserRepositoryInterface
	notificationRepo repository.NotificationRepositoryInterface
	validator        *validator.Validate
	now              func() time.Time
}

// NewRequestService creates a new request service
func NewRequestService(repo repository.RequestRepositoryInterface, userRepo repository.UserRepositoryInterface, notificationRepo repository.NotificationRepositoryInterface, validator *validator.Validate) *RequestService {
	return &RequestService{
		repo:             repo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		validator:        validator,
		now:              time.Now,
	}
}

// CreateRequestRequest is a tagged union on Type: LEAVE needs the date range,
// SHIFT_SWAP needs shift_id.
type CreateRequestRequest struct {
	Type          models.RequestType `json:"type" validate:"required,oneof=LEAVE SHIFT_SWAP" example:"LEAVE"`
	StartDate     string             `json:"start_date,omitempty" example:"2024-03-18"`
	EndDate       string             `json:"end_date,omitempty" example:"2024-03-22"`
	ShiftID       *uuid.UUID         `json:"shift_id,omitempty"`
	TargetShiftID *uuid.UUID         `json:"target_shift_id,omitempty"`
	Reason        string             `json:"reason" validate:"max=2000"`
}

// ResolveRequestRequest is the reviewer's decision
type ResolveRequestRequest struct {
	Status models.RequestStatus `json:"status" validate:"required,oneof=APPROVED REJECTED" example:"APPROVED"`
}

// AssignManagerRequest names the manager who should review a request
type AssignManagerRequest struct {
	ManagerID uuid.UUID `json:"manager_id" validate:"required"`
}

// RequestListResponse represents a paginated list of requests
type RequestListResponse struct {
	Requests []models.Request `json:"requests"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create files a request for the requester
func (s *RequestService) Create(requesterID uuid.UUID, req *CreateRequestRequest) (*models.Request, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	request := &models.Request{
		RequesterID: requesterID,
		Type:        req.Type,
		Reason:      strings.TrimSpace(req.Reason),
		Status:      models.RequestStatusPending,
	}

	switch req.Type {
	case models.RequestTypeLeave:
		start, err := parseDate("start_date", req.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseDate("end_date", req.EndDate)
		if err != nil {
			return nil, err
		}
		if end.Before(start) {
			return nil, apperrors.ErrInvalidDateRange
		}
		request.StartDate = &start
		request.EndDate = &end
	case models.RequestTypeShiftSwap:
		if req.ShiftID == nil || *req.ShiftID == uuid.Nil {
			return nil, apperrors.NewValidationError("shift_id", "shift_id is required for a shift swap")
		}
		request.ShiftID = req.ShiftID
		request.TargetShiftID = req.TargetShiftID
	}

	if err := s.repo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return s.load(request.ID)
}

// List returns requests visible under scope: the caller's own (default),
// those assigned to the caller as manager, or all of them for admins
func (s *RequestService) List(caller *models.User, scope string, status models.RequestStatus, page, pageSize int) (*RequestListResponse, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "status must be one of PENDING, APPROVED, REJECTED")
	}

	filter := repository.RequestFilter{Status: status}
	switch scope {
	case "", RequestScopeOwn:
		filter.RequesterID = &caller.ID
	case RequestScopeAssigned:
		if !caller.HasAnyRole(models.UserRoleManager, models.UserRoleAdmin) {
			return nil, apperrors.ErrNotAuthorized
		}
		filter.ManagerID = &caller.ID
	case RequestScopeAll:
		if !caller.IsAdmin {
			return nil, apperrors.ErrNotAuthorized
		}
	default:
		return nil, apperrors.NewValidationError("scope", "scope must be one of own, assigned, all")
	}

	page, pageSize, offset := normalizePagination(page, pageSize)
	requests, total, err := s.repo.List(filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return &RequestListResponse{
		Requests: requests,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Get returns a request to its requester, its assigned manager or an admin
func (s *RequestService) Get(caller *models.User, id uuid.UUID) (*models.Request, error) {
	request, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin && request.RequesterID != caller.ID && !isAssignedManager(request, caller.ID) {
		return nil, apperrors.ErrRequestAccessDenied
	}
	return request, nil
}

// Resolve approves or rejects a pending request. Only an admin or the
// assigned manager may do so; anyone else leaves the request unchanged.
func (s *RequestService) Resolve(ctx context.Context, caller *models.User, id uuid.UUID, req *ResolveRequestRequest) (*models.Request, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	request, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin && !isAssignedManager(request, caller.ID) {
		return nil, apperrors.ErrNotRequestReviewer
	}
	if request.Status.IsFinal() {
		return nil, apperrors.ErrRequestAlreadyResolved
	}

	// a manager's resolution only lands while the request is still theirs
	var managerID *uuid.UUID
	if !caller.IsAdmin {
		managerID = &caller.ID
	}
	resolved, err := s.repo.Resolve(id, req.Status, caller.ID, s.now(), managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve request: %w", err)
	}
	if !resolved {
		current, err := s.load(id)
		if err != nil {
			return nil, err
		}
		if current.Status.IsFinal() {
			return nil, apperrors.ErrRequestAlreadyResolved
		}
		return nil, apperrors.ErrNotRequestReviewer
	}

	s.notify(ctx, request.RequesterID, request.ID, models.NotificationRequestResolved,
		"Request "+strings.ToLower(string(req.Status)),
		fmt.Sprintf("Your %s request was %s by %s", requestLabel(request.Type), strings.ToLower(string(req.Status)), caller.FullName))

	return s.load(id)
}

// AssignManager hands a request to a manager for review
func (s *RequestService) AssignManager(ctx context.Context, id uuid.UUID, req *AssignManagerRequest) (*models.Request, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	request, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if request.Status.IsFinal() {
		return nil, apperrors.ErrRequestAlreadyResolved
	}

	manager, err := s.userRepo.GetByID(req.ManagerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load manager: %w", err)
	}
	if !manager.IsManager {
		return nil, apperrors.ErrNotAManager
	}

	if err := s.repo.AssignManager(id, manager.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to assign manager: %w", err)
	}

	requesterName := request.RequesterID.String()
	if request.Requester != nil {
		requesterName = request.Requester.FullName
	}
	s.notify(ctx, manager.ID, request.ID, models.NotificationRequestAssigned,
		"Request assigned to you",
		fmt.Sprintf("%s's %s request is waiting for your review", requesterName, requestLabel(request.Type)))

	return s.load(id)
}

func (s *RequestService) load(id uuid.UUID) (*models.Request, error) {
	request, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return request, nil
}

func (s *RequestService) notify(ctx context.Context, userID, requestID uuid.UUID, kind models.NotificationType, title, message string) {
	log := logger.WithContext(ctx).WithField("request_id", requestID)
	metadata, err := requestMetadata(requestID)
	if err != nil {
		log.WithError(err).Error("failed to encode notification metadata")
		return
	}
	notification := &models.Notification{
		UserID:   userID,
		Title:    title,
		Message:  message,
		Type:     kind,
		Metadata: metadata,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		log.WithError(err).WithField("type", kind).Error("failed to create request notification")
	}
}

func isAssignedManager(request *models.Request, userID uuid.UUID) bool {
	return request.ManagerID != nil && *request.ManagerID == userID
}

func requestLabel(t models.RequestType) string {
	if t == models.RequestTypeShiftSwap {
		return "shift swap"
	}
	return "leave"
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, apperrors.NewValidationError(field, field+" is required for a leave request")
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, field+" must use the YYYY-MM-DD format")
	}
	return t, nil
}
