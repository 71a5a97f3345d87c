package service

import (
	"errors"
	"fmt"
	"strings"

	"inspection-scheduler-backend/internal/auth"
	"inspection-scheduler-backend/internal/database"
	"inspection-scheduler-backend/internal/database/models"
	apperrors "inspection-scheduler-backend/internal/errors"
	"inspection-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for user accounts
type UserService struct {
	repo       repository.UserRepositoryInterface
	agencyRepo repository.CatalogRepositoryInterface[models.Agency]
	validator  *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, agencyRepo repository.CatalogRepositoryInterface[models.Agency], validator *validator.Validate) *UserService {
	return &UserService{
		repo:       repo,
		agencyRepo: agencyRepo,
		validator:  validator,
	}
}

// RegisterRequest is the public self-registration payload. Access flags are
// never taken from it.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,email,max=255" example:"jane.doe@example.com"`
	FullName string `json:"full_name" validate:"required,max=200" example:"Jane Doe"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// CreateUserRequest is the admin payload for creating an account
type CreateUserRequest struct {
	Username    string     `json:"username" validate:"required,email,max=255" example:"jane.doe@example.com"`
	FullName    string     `json:"full_name" validate:"required,max=200" example:"Jane Doe"`
	Password    string     `json:"password" validate:"required,min=8,max=72"`
	IsAdmin     bool       `json:"is_admin"`
	IsManager   bool       `json:"is_manager"`
	IsInspector bool       `json:"is_inspector"`
	AgencyID    *uuid.UUID `json:"agency_id,omitempty"`
}

// UpdateUserRequest is a partial update; nil fields are left unchanged
type UpdateUserRequest struct {
	Username    *string    `json:"username,omitempty" validate:"omitempty,email,max=255"`
	FullName    *string    `json:"full_name,omitempty" validate:"omitempty,max=200"`
	Password    *string    `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	IsAdmin     *bool      `json:"is_admin,omitempty"`
	IsManager   *bool      `json:"is_manager,omitempty"`
	IsInspector *bool      `json:"is_inspector,omitempty"`
	AgencyID    *uuid.UUID `json:"agency_id,omitempty"`
	ClearAgency bool       `json:"clear_agency,omitempty"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []models.User `json:"users"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// Register creates a plain employee account
func (s *UserService) Register(req *RegisterRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return s.create(req.Username, req.FullName, req.Password, func(u *models.User) {})
}

// Create creates an account with the given access flags
func (s *UserService) Create(req *CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.AgencyID != nil {
		if err := s.checkAgency(*req.AgencyID); err != nil {
			return nil, err
		}
	}
	return s.create(req.Username, req.FullName, req.Password, func(u *models.User) {
		u.IsAdmin = req.IsAdmin
		u.IsManager = req.IsManager
		u.IsInspector = req.IsInspector
		u.AgencyID = req.AgencyID
	})
}

func (s *UserService) create(username, fullName, password string, apply func(*models.User)) (*models.User, error) {
	username = normalizeUsername(username)

	existing, err := s.repo.GetByUsername(username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: hash,
	}
	apply(user)

	if err := s.repo.Create(user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// List retrieves users matching the search text and role filter
func (s *UserService) List(query string, role models.UserRole, page, pageSize int) (*UserListResponse, error) {
	if role != "" && !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "role must be one of admin, manager, inspector, employee")
	}
	page, pageSize, offset := normalizePagination(page, pageSize)

	users, total, err := s.repo.GetAll(repository.UserFilter{Query: query, Role: role}, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &UserListResponse{
		Users:    users,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ListInspectors returns every inspector for assignment pickers
func (s *UserService) ListInspectors() ([]models.User, error) {
	return s.listByRole(models.UserRoleInspector)
}

// ListManagers returns every manager for request assignment pickers
func (s *UserService) ListManagers() ([]models.User, error) {
	return s.listByRole(models.UserRoleManager)
}

func (s *UserService) listByRole(role models.UserRole) ([]models.User, error) {
	users, _, err := s.repo.GetAll(repository.UserFilter{Role: role}, -1, -1)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s users: %w", role, err)
	}
	return users, nil
}

// Update applies a partial update. A new password is re-hashed.
func (s *UserService) Update(id uuid.UUID, req *UpdateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		username := normalizeUsername(*req.Username)
		if username != user.Username {
			existing, err := s.repo.GetByUsername(username)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check existing user: %w", err)
			}
			if existing != nil && existing.ID != user.ID {
				return nil, apperrors.ErrUserExists
			}
			user.Username = username
		}
	}
	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.IsManager != nil {
		user.IsManager = *req.IsManager
	}
	if req.IsInspector != nil {
		user.IsInspector = *req.IsInspector
	}
	switch {
	case req.ClearAgency:
		user.AgencyID = nil
	case req.AgencyID != nil:
		if err := s.checkAgency(*req.AgencyID); err != nil {
			return nil, err
		}
		user.AgencyID = req.AgencyID
	}
	user.Agency = nil

	if err := s.repo.Update(user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.GetByID(id)
}

// Delete hard-deletes a user. Callers cannot delete their own account, and a
// user still referenced elsewhere yields a conflict.
func (s *UserService) Delete(id, callerID uuid.UUID) error {
	if id == callerID {
		return apperrors.ErrCannotDeleteSelf
	}
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		if database.IsForeignKeyViolation(err) {
			return apperrors.ErrReferencedEntity
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *UserService) checkAgency(id uuid.UUID) error {
	if _, err := s.agencyRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAgencyNotFound
		}
		return fmt.Errorf("failed to verify agency: %w", err)
	}
	return nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
