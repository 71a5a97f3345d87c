package repository

import (
	"time"

	"inspection-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RequestRepository handles database operations for leave and shift-swap requests
type RequestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create creates a new request
func (r *RequestRepository) Create(request *models.Request) error {
	return r.db.Omit(clause.Associations).Create(request).Error
}

// GetByID retrieves a request with requester, manager and reviewer
func (r *RequestRepository) GetByID(id uuid.UUID) (*models.Request, error) {
	var request models.Request
	err := r.db.Preload("Requester").Preload("Manager").Preload("Reviewer").
		First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// List retrieves requests matching the filter with pagination, newest first
func (r *RequestRepository) List(filter RequestFilter, limit, offset int) ([]models.Request, int64, error) {
	var requests []models.Request
	var total int64

	query := r.db.Model(&models.Request{})
	if filter.RequesterID != nil {
		query = query.Where("requester_id = ?", *filter.RequesterID)
	}
	if filter.ManagerID != nil {
		query = query.Where("manager_id = ?", *filter.ManagerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Requester").Preload("Manager").Preload("Reviewer").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// Resolve writes status, reviewer and review time in one conditional update.
// A non-nil managerID additionally requires the request to still be assigned
// to that manager. It reports false when no row matched.
func (r *RequestRepository) Resolve(id uuid.UUID, status models.RequestStatus, reviewerID uuid.UUID, reviewedAt time.Time, managerID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Request{}).
		Where("id = ? AND status = ?", id, models.RequestStatusPending)
	if managerID != nil {
		query = query.Where("manager_id = ?", *managerID)
	}
	result := query.Updates(map[string]interface{}{
			"status":      status,
			"reviewer_id": reviewerID,
			"reviewed_at": reviewedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// AssignManager sets the manager responsible for reviewing the request
func (r *RequestRepository) AssignManager(id, managerID uuid.UUID) error {
	result := r.db.Model(&models.Request{}).Where("id = ?", id).Update("manager_id", managerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
