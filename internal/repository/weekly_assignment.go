package repository

import (
	"fmt"

	"inspection-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WeeklyAssignmentRepository persists the weekly shift assignment aggregate:
// the assignment row, its inspector groups, and each group's inspector and
// day bindings. Every write runs in a single transaction.
type WeeklyAssignmentRepository struct {
	db *gorm.DB
}

// NewWeeklyAssignmentRepository creates a new weekly assignment repository
func NewWeeklyAssignmentRepository(db *gorm.DB) *WeeklyAssignmentRepository {
	return &WeeklyAssignmentRepository{db: db}
}

// Create inserts the assignment, then each group with its inspectors and days.
// A failure anywhere rolls back the whole aggregate, parent row included.
func (r *WeeklyAssignmentRepository) Create(assignment *models.WeeklyShiftAssignment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(assignment).Error; err != nil {
			return fmt.Errorf("failed to create weekly assignment: %w", err)
		}
		for i := range assignment.InspectorGroups {
			if err := insertGroupTree(tx, assignment.ID, &assignment.InspectorGroups[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves the full aggregate
func (r *WeeklyAssignmentRepository) GetByID(id uuid.UUID) (*models.WeeklyShiftAssignment, error) {
	var assignment models.WeeklyShiftAssignment
	err := preloadAggregate(r.db).First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// List retrieves assignments matching the filter with pagination, newest week first
func (r *WeeklyAssignmentRepository) List(filter AssignmentFilter, limit, offset int) ([]models.WeeklyShiftAssignment, int64, error) {
	var assignments []models.WeeklyShiftAssignment
	var total int64

	query := applyAssignmentFilter(r.db.Model(&models.WeeklyShiftAssignment{}), filter, "")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := preloadAggregate(query).
		Order("week DESC, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&assignments).Error
	if err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}

// Update writes the assignment columns and applies groups with full-replace
// semantics: a group carrying an id has its role updated and its inspectors
// and days deleted and re-inserted; a group without an id is inserted; groups
// of the assignment that are not in the payload are left untouched.
func (r *WeeklyAssignmentRepository) Update(assignment *models.WeeklyShiftAssignment, groups []models.InspectorGroup) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.WeeklyShiftAssignment{}).Where("id = ?", assignment.ID).Updates(map[string]interface{}{
			"week":             assignment.Week,
			"status":           assignment.Status,
			"rejection_reason": assignment.RejectionReason,
		})
		if result.Error != nil {
			return fmt.Errorf("failed to update weekly assignment: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		for i := range groups {
			group := &groups[i]
			if group.ID == uuid.Nil {
				if err := insertGroupTree(tx, assignment.ID, group); err != nil {
					return err
				}
				continue
			}
			group.WeeklyShiftAssignmentID = assignment.ID
			if err := replaceGroupTree(tx, group); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the aggregate: day bindings, then inspector bindings, then
// groups, then the assignment itself, all in one transaction.
func (r *WeeklyAssignmentRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var groupIDs []uuid.UUID
		if err := tx.Model(&models.InspectorGroup{}).
			Where("weekly_shift_assignment_id = ?", id).
			Pluck("id", &groupIDs).Error; err != nil {
			return fmt.Errorf("failed to list inspector groups: %w", err)
		}

		if err := deleteGroups(tx, groupIDs); err != nil {
			return err
		}

		result := tx.Delete(&models.WeeklyShiftAssignment{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete weekly assignment: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// insertGroupTree inserts one group under assignmentID followed by its children
func insertGroupTree(tx *gorm.DB, assignmentID uuid.UUID, group *models.InspectorGroup) error {
	group.ID = uuid.Nil
	group.WeeklyShiftAssignmentID = assignmentID
	if err := tx.Omit(clause.Associations).Create(group).Error; err != nil {
		return fmt.Errorf("failed to create inspector group: %w", err)
	}
	return insertGroupChildren(tx, group)
}

// replaceGroupTree updates the group's role and swaps its children for the ones
// carried by group. The group must belong to group.WeeklyShiftAssignmentID.
func replaceGroupTree(tx *gorm.DB, group *models.InspectorGroup) error {
	result := tx.Model(&models.InspectorGroup{}).
		Where("id = ? AND weekly_shift_assignment_id = ?", group.ID, group.WeeklyShiftAssignmentID).
		Update("role_id", group.RoleID)
	if result.Error != nil {
		return fmt.Errorf("failed to update inspector group: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	if err := deleteGroupChildren(tx, []uuid.UUID{group.ID}); err != nil {
		return err
	}
	return insertGroupChildren(tx, group)
}

func insertGroupChildren(tx *gorm.DB, group *models.InspectorGroup) error {
	if len(group.Inspectors) > 0 {
		for i := range group.Inspectors {
			inspector := &group.Inspectors[i]
			inspector.ID = uuid.Nil
			inspector.WeeklyInspectorGroupID = group.ID
			if inspector.Status == "" {
				inspector.Status = models.AssignmentStatusPending
			}
		}
		if err := tx.Omit(clause.Associations).Create(&group.Inspectors).Error; err != nil {
			return fmt.Errorf("failed to create group inspectors: %w", err)
		}
	}

	if len(group.Days) > 0 {
		for i := range group.Days {
			group.Days[i].ID = uuid.Nil
			group.Days[i].WeeklyInspectorGroupID = group.ID
		}
		if err := tx.Omit(clause.Associations).Create(&group.Days).Error; err != nil {
			return fmt.Errorf("failed to create daily shift types: %w", err)
		}
	}
	return nil
}

func deleteGroupChildren(tx *gorm.DB, groupIDs []uuid.UUID) error {
	if len(groupIDs) == 0 {
		return nil
	}
	if err := tx.Where("weekly_inspector_group_id IN ?", groupIDs).Delete(&models.DailyShiftType{}).Error; err != nil {
		return fmt.Errorf("failed to delete daily shift types: %w", err)
	}
	if err := tx.Where("weekly_inspector_group_id IN ?", groupIDs).Delete(&models.GroupInspector{}).Error; err != nil {
		return fmt.Errorf("failed to delete group inspectors: %w", err)
	}
	return nil
}

func deleteGroups(tx *gorm.DB, groupIDs []uuid.UUID) error {
	if len(groupIDs) == 0 {
		return nil
	}
	if err := deleteGroupChildren(tx, groupIDs); err != nil {
		return err
	}
	if err := tx.Where("id IN ?", groupIDs).Delete(&models.InspectorGroup{}).Error; err != nil {
		return fmt.Errorf("failed to delete inspector groups: %w", err)
	}
	return nil
}

func preloadAggregate(db *gorm.DB) *gorm.DB {
	return db.Preload("Building").
		Preload("InspectorGroups", orderByCreated).
		Preload("InspectorGroups.Role").
		Preload("InspectorGroups.Inspectors", orderByCreated).
		Preload("InspectorGroups.Inspectors.Inspector").
		Preload("InspectorGroups.Days", orderByDay).
		Preload("InspectorGroups.Days.ShiftType")
}

// applyAssignmentFilter adds the filter conditions. prefix qualifies the
// columns when the assignment table is joined.
func applyAssignmentFilter(query *gorm.DB, filter AssignmentFilter, prefix string) *gorm.DB {
	if filter.BuildingID != nil {
		query = query.Where(prefix+"building_id = ?", *filter.BuildingID)
	}
	if filter.Week != "" {
		query = query.Where(prefix+"week = ?", filter.Week)
	}
	return query
}
