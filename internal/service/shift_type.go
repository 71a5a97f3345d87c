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

// ShiftTypeService handles business logic for the shift type catalog
type ShiftTypeService struct {
	repo      repository.ShiftTypeRepositoryInterface
	validator *validator.Validate
}

// NewShiftTypeService creates a new shift type service
func NewShiftTypeService(repo repository.ShiftTypeRepositoryInterface, validator *validator.Validate) *ShiftTypeService {
	return &ShiftTypeService{
		repo:      repo,
		validator: validator,
	}
}

// ShiftTypeRequest is the create/update payload. Times are HH:MM wall-clock
// values; an end before the start describes an overnight shift.
type ShiftTypeRequest struct {
	Name        string `json:"name" validate:"required,max=100" example:"Night"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04" example:"22:00"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04" example:"06:00"`
	Description string `json:"description" validate:"max=500"`
}

// Create creates a new shift type
func (s *ShiftTypeService) Create(req *ShiftTypeRequest) (*models.ShiftType, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	shiftType := &models.ShiftType{}
	applyShiftTypeRequest(shiftType, req)
	if err := s.repo.Create(shiftType); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.ErrShiftTypeExists
		}
		return nil, fmt.Errorf("failed to create shift type: %w", err)
	}
	return shiftType, nil
}

// GetByID retrieves a shift type by ID
func (s *ShiftTypeService) GetByID(id uuid.UUID) (*models.ShiftType, error) {
	shiftType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftTypeNotFound
		}
		return nil, fmt.Errorf("failed to get shift type: %w", err)
	}
	return shiftType, nil
}

// GetAll retrieves every shift type
func (s *ShiftTypeService) GetAll() ([]models.ShiftType, error) {
	shiftTypes, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list shift types: %w", err)
	}
	return shiftTypes, nil
}

// Update replaces every field of a shift type
func (s *ShiftTypeService) Update(id uuid.UUID, req *ShiftTypeRequest) (*models.ShiftType, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	shiftType, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	applyShiftTypeRequest(shiftType, req)
	if err := s.repo.Update(shiftType); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.ErrShiftTypeExists
		}
		return nil, fmt.Errorf("failed to update shift type: %w", err)
	}
	return shiftType, nil
}

// Delete removes a shift type that no day binding or coordinator uses
func (s *ShiftTypeService) Delete(id uuid.UUID) error {
	return deleteEntity(s.repo.Delete, id, apperrors.ErrShiftTypeNotFound)
}

func applyShiftTypeRequest(shiftType *models.ShiftType, req *ShiftTypeRequest) {
	shiftType.Name = strings.TrimSpace(req.Name)
	shiftType.StartTime = req.StartTime
	shiftType.EndTime = req.EndTime
	shiftType.Description = strings.TrimSpace(req.Description)
}
