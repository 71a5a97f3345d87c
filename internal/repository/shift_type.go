package repository

import (
	"inspection-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftTypeRepository handles database operations for shift types
type ShiftTypeRepository struct {
	db *gorm.DB
}

// NewShiftTypeRepository creates a new shift type repository
func NewShiftTypeRepository(db *gorm.DB) *ShiftTypeRepository {
	return &ShiftTypeRepository{db: db}
}

// Create creates a new shift type
func (r *ShiftTypeRepository) Create(shiftType *models.ShiftType) error {
	return r.db.Create(shiftType).Error
}

// GetByID retrieves a shift type by ID
func (r *ShiftTypeRepository) GetByID(id uuid.UUID) (*models.ShiftType, error) {
	var shiftType models.ShiftType
	if err := r.db.First(&shiftType, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &shiftType, nil
}

// GetAll retrieves every shift type ordered by start time
func (r *ShiftTypeRepository) GetAll() ([]models.ShiftType, error) {
	var shiftTypes []models.ShiftType
	if err := r.db.Order("start_time ASC, name ASC").Find(&shiftTypes).Error; err != nil {
		return nil, err
	}
	return shiftTypes, nil
}

// Update updates a shift type
func (r *ShiftTypeRepository) Update(shiftType *models.ShiftType) error {
	return r.db.Save(shiftType).Error
}

// Delete deletes a shift type
func (r *ShiftTypeRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.ShiftType{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
