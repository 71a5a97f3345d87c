package repository

import (
	"inspection-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuildingRepository handles database operations for buildings and their coordinators
type BuildingRepository struct {
	db *gorm.DB
}

// NewBuildingRepository creates a new building repository
func NewBuildingRepository(db *gorm.DB) *BuildingRepository {
	return &BuildingRepository{db: db}
}

// Create inserts the building and its coordinator bindings in one transaction
func (r *BuildingRepository) Create(building *models.Building) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(building).Error; err != nil {
			return err
		}
		return insertCoordinators(tx, building)
	})
}

// GetByID retrieves a building with its supervisor and coordinators
func (r *BuildingRepository) GetByID(id uuid.UUID) (*models.Building, error) {
	var building models.Building
	err := r.withCoordinators(r.db).First(&building, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &building, nil
}

// GetAll retrieves all buildings with pagination
func (r *BuildingRepository) GetAll(limit, offset int) ([]models.Building, int64, error) {
	var buildings []models.Building
	var total int64

	if err := r.db.Model(&models.Building{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.withCoordinators(r.db).Order("name ASC").Limit(limit).Offset(offset).Find(&buildings).Error
	if err != nil {
		return nil, 0, err
	}

	return buildings, total, nil
}

// Update saves the building columns and replaces its coordinator list wholesale
func (r *BuildingRepository) Update(building *models.Building) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Building{}).Where("id = ?", building.ID).Updates(map[string]interface{}{
			"name":          building.Name,
			"code":          building.Code,
			"area":          building.Area,
			"supervisor_id": building.SupervisorID,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("building_id = ?", building.ID).Delete(&models.BuildingCoordinator{}).Error; err != nil {
			return err
		}
		return insertCoordinators(tx, building)
	})
}

// Delete deletes a building. Coordinators cascade; weekly assignments block the delete.
func (r *BuildingRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Building{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetWithShifts returns every building with its weekly assignments (only
// those for week when week is set) and the full group tree below them.
func (r *BuildingRepository) GetWithShifts(week string) ([]models.Building, error) {
	var buildings []models.Building

	err := r.withCoordinators(r.db).
		Preload("WeeklyAssignments", func(db *gorm.DB) *gorm.DB {
			if week != "" {
				db = db.Where("week = ?", week)
			}
			return db.Order("week DESC")
		}).
		Preload("WeeklyAssignments.InspectorGroups", orderByCreated).
		Preload("WeeklyAssignments.InspectorGroups.Role").
		Preload("WeeklyAssignments.InspectorGroups.Inspectors", orderByCreated).
		Preload("WeeklyAssignments.InspectorGroups.Inspectors.Inspector").
		Preload("WeeklyAssignments.InspectorGroups.Days", orderByDay).
		Preload("WeeklyAssignments.InspectorGroups.Days.ShiftType").
		Order("name ASC").
		Find(&buildings).Error
	if err != nil {
		return nil, err
	}
	return buildings, nil
}

func (r *BuildingRepository) withCoordinators(db *gorm.DB) *gorm.DB {
	return db.Preload("Supervisor").
		Preload("Coordinators", orderByCreated).
		Preload("Coordinators.Coordinator").
		Preload("Coordinators.ShiftType")
}

func insertCoordinators(tx *gorm.DB, building *models.Building) error {
	if len(building.Coordinators) == 0 {
		return nil
	}
	for i := range building.Coordinators {
		building.Coordinators[i].ID = uuid.Nil
		building.Coordinators[i].BuildingID = building.ID
	}
	return tx.Omit(clause.Associations).Create(&building.Coordinators).Error
}

func orderByCreated(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

func orderByDay(db *gorm.DB) *gorm.DB {
	return db.Order("day_of_week ASC")
}
