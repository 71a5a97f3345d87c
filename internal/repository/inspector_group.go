package repository

import (
	"errors"
	"fmt"
	"time"

	"inspection-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InspectorGroupRepository handles single-group operations on the weekly
// assignment aggregate. The API exposes a group as a "shift".
type InspectorGroupRepository struct {
	db *gorm.DB
}

// NewInspectorGroupRepository creates a new inspector group repository
func NewInspectorGroupRepository(db *gorm.DB) *InspectorGroupRepository {
	return &InspectorGroupRepository{db: db}
}

// GetByID retrieves a group with its assignment, building, role, inspectors and days
func (r *InspectorGroupRepository) GetByID(id uuid.UUID) (*models.InspectorGroup, error) {
	var group models.InspectorGroup
	err := preloadGroup(r.db).First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// Create inserts group with its children under assignment. When assignment.ID
// is nil the assignment for (BuildingID, Week) is looked up and created if
// missing, inside the same transaction.
func (r *InspectorGroupRepository) Create(assignment *models.WeeklyShiftAssignment, group *models.InspectorGroup) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if assignment.ID == uuid.Nil {
			var existing models.WeeklyShiftAssignment
			err := tx.Where("building_id = ? AND week = ?", assignment.BuildingID, assignment.Week).First(&existing).Error
			switch {
			case err == nil:
				*assignment = existing
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Omit(clause.Associations).Create(assignment).Error; err != nil {
					return fmt.Errorf("failed to create weekly assignment: %w", err)
				}
			default:
				return fmt.Errorf("failed to find weekly assignment: %w", err)
			}
		} else {
			var count int64
			if err := tx.Model(&models.WeeklyShiftAssignment{}).Where("id = ?", assignment.ID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return insertGroupTree(tx, assignment.ID, group)
	})
}

// Replace updates the group's role and re-creates its inspectors and days
func (r *InspectorGroupRepository) Replace(group *models.InspectorGroup) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return replaceGroupTree(tx, group)
	})
}

// Delete removes a group and its children in one transaction
func (r *InspectorGroupRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.InspectorGroup{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return deleteGroups(tx, []uuid.UUID{id})
	})
}

// List retrieves groups matching the assignment filter with pagination
func (r *InspectorGroupRepository) List(filter AssignmentFilter, limit, offset int) ([]models.InspectorGroup, int64, error) {
	var groups []models.InspectorGroup
	var total int64

	query := r.db.Model(&models.InspectorGroup{}).
		Joins("JOIN weekly_shift_assignments ON weekly_shift_assignments.id = weekly_inspector_groups.weekly_shift_assignment_id")
	query = applyAssignmentFilter(query, filter, "weekly_shift_assignments.")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := preloadGroup(query).
		Order("weekly_shift_assignments.week DESC, weekly_inspector_groups.created_at ASC").
		Limit(limit).Offset(offset).
		Find(&groups).Error
	if err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}

// ListForInspector retrieves every group the inspector is bound to, as primary or backup
func (r *InspectorGroupRepository) ListForInspector(inspectorID uuid.UUID) ([]models.InspectorGroup, error) {
	var groups []models.InspectorGroup

	sub := r.db.Model(&models.GroupInspector{}).
		Select("weekly_inspector_group_id").
		Where("inspector_id = ?", inspectorID)

	err := preloadGroup(r.db).
		Joins("JOIN weekly_shift_assignments ON weekly_shift_assignments.id = weekly_inspector_groups.weekly_shift_assignment_id").
		Where("weekly_inspector_groups.id IN (?)", sub).
		Order("weekly_shift_assignments.week DESC, weekly_inspector_groups.created_at ASC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// UpdateInspectorResponse records an inspector's answer with a single-row
// update. It reports false when the inspector is not bound to the group.
func (r *InspectorGroupRepository) UpdateInspectorResponse(groupID, inspectorID uuid.UUID, status models.AssignmentStatus, reason *string, respondedAt time.Time) (bool, error) {
	result := r.db.Model(&models.GroupInspector{}).
		Where("weekly_inspector_group_id = ? AND inspector_id = ?", groupID, inspectorID).
		Updates(map[string]interface{}{
			"status":           status,
			"rejection_reason": reason,
			"responded_at":     respondedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IsInspectorOfGroup reports whether the inspector currently has a binding in the group
func (r *InspectorGroupRepository) IsInspectorOfGroup(groupID, inspectorID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.GroupInspector{}).
		Where("weekly_inspector_group_id = ? AND inspector_id = ?", groupID, inspectorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func preloadGroup(db *gorm.DB) *gorm.DB {
	return db.Preload("WeeklyShiftAssignment").
		Preload("WeeklyShiftAssignment.Building").
		Preload("Role").
		Preload("Inspectors", orderByCreated).
		Preload("Inspectors.Inspector").
		Preload("Days", orderByDay).
		Preload("Days.ShiftType")
}
