package service

import (
	"errors"
	"fmt"
	"strings"

	"inspection-scheduler-backend/internal/database"
	"inspection-scheduler-backend/internal/database/models"
	"inspection-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogModel is satisfied by pointers to the lookup-table models
// (*models.Role, *models.Agency, *models.TaskType).
type CatalogModel[T any] interface {
	*T
	Entry() *models.CatalogEntry
}

// CatalogRequest is the create/update payload shared by every catalog
type CatalogRequest struct {
	Name        string `json:"name" validate:"required,max=100" example:"Senior Inspector"`
	Description string `json:"description" validate:"max=500"`
}

// CatalogService handles the name/description lookup tables
type CatalogService[T any, PT CatalogModel[T]] struct {
	repo      repository.CatalogRepositoryInterface[T]
	notFound  error
	exists    error
	validator *validator.Validate
}

// NewCatalogService creates a catalog service. notFound and exists are the
// errors reported for a missing id and a duplicate name.
func NewCatalogService[T any, PT CatalogModel[T]](repo repository.CatalogRepositoryInterface[T], notFound, exists error, validator *validator.Validate) *CatalogService[T, PT] {
	return &CatalogService[T, PT]{
		repo:      repo,
		notFound:  notFound,
		exists:    exists,
		validator: validator,
	}
}

// Create creates a new entry
func (s *CatalogService[T, PT]) Create(req *CatalogRequest) (*T, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	entry := new(T)
	applyCatalogRequest(PT(entry).Entry(), req)
	if err := s.repo.Create(entry); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, s.exists
		}
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}
	return entry, nil
}

// GetByID retrieves an entry by ID
func (s *CatalogService[T, PT]) GetByID(id uuid.UUID) (*T, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.notFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return entry, nil
}

// GetAll retrieves every entry ordered by name
func (s *CatalogService[T, PT]) GetAll() ([]T, error) {
	entries, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// Update replaces the name and description of an entry
func (s *CatalogService[T, PT]) Update(id uuid.UUID, req *CatalogRequest) (*T, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	entry, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	applyCatalogRequest(PT(entry).Entry(), req)
	if err := s.repo.Update(entry); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, s.exists
		}
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	return entry, nil
}

// Delete removes an entry. Entries still in use yield a conflict.
func (s *CatalogService[T, PT]) Delete(id uuid.UUID) error {
	return deleteEntity(s.repo.Delete, id, s.notFound)
}

func applyCatalogRequest(entry *models.CatalogEntry, req *CatalogRequest) {
	entry.Name = strings.TrimSpace(req.Name)
	entry.Description = strings.TrimSpace(req.Description)
}
