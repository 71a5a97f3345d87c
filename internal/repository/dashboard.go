package repository

import (
	"inspection-scheduler-backend/internal/database/models"

	"gorm.io/gorm"
)

// DashboardRepository reads the aggregate counts for the admin dashboard
type DashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Counts returns a snapshot of row counts. Weekly assignments are counted for week only.
func (r *DashboardRepository) Counts(week string) (*DashboardCounts, error) {
	counts := &DashboardCounts{ResponsesByStatus: map[models.AssignmentStatus]int64{}}

	steps := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&counts.Users, r.db.Model(&models.User{})},
		{&counts.Admins, r.db.Model(&models.User{}).Where("is_admin = ?", true)},
		{&counts.Managers, r.db.Model(&models.User{}).Where("is_manager = ?", true)},
		{&counts.Inspectors, r.db.Model(&models.User{}).Where("is_inspector = ?", true)},
		{&counts.Buildings, r.db.Model(&models.Building{})},
		{&counts.WeeklyAssignments, r.db.Model(&models.WeeklyShiftAssignment{}).Where("week = ?", week)},
		{&counts.PendingRequests, r.db.Model(&models.Request{}).Where("status = ?", models.RequestStatusPending)},
	}
	for _, step := range steps {
		if err := step.query.Count(step.dest).Error; err != nil {
			return nil, err
		}
	}

	var rows []struct {
		Status models.AssignmentStatus
		Total  int64
	}
	err := r.db.Model(&models.GroupInspector{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts.ResponsesByStatus[row.Status] = row.Total
	}

	return counts, nil
}
