package service

import (
	"fmt"
	"time"

	"inspection-scheduler-backend/internal/database/models"
	"inspection-scheduler-backend/internal/repository"
)

// DashboardService builds the admin overview
type DashboardService struct {
	repo repository.DashboardRepositoryInterface
	now  func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo repository.DashboardRepositoryInterface) *DashboardService {
	return &DashboardService{repo: repo, now: time.Now}
}

// UserCounts breaks the user total down by access flag. A user holding
// several flags is counted under each.
type UserCounts struct {
	Total      int64 `json:"total"`
	Admins     int64 `json:"admins"`
	Managers   int64 `json:"managers"`
	Inspectors int64 `json:"inspectors"`
}

// DashboardResponse is the admin dashboard snapshot
type DashboardResponse struct {
	Week                     string                            `json:"week" example:"2024-W12"`
	Users                    UserCounts                        `json:"users"`
	Buildings                int64                             `json:"buildings"`
	WeeklyAssignmentsForWeek int64                             `json:"weekly_assignments_for_week"`
	PendingRequests          int64                             `json:"pending_requests"`
	ResponsesByStatus        map[models.AssignmentStatus]int64 `json:"responses_by_status"`
}

// Get returns the counts for the current ISO week
func (s *DashboardService) Get() (*DashboardResponse, error) {
	week := isoWeek(s.now())

	counts, err := s.repo.Counts(week)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard counts: %w", err)
	}

	responses := map[models.AssignmentStatus]int64{
		models.AssignmentStatusPending:  0,
		models.AssignmentStatusAccepted: 0,
		models.AssignmentStatusRejected: 0,
	}
	for status, n := range counts.ResponsesByStatus {
		responses[status] = n
	}

	return &DashboardResponse{
		Week: week,
		Users: UserCounts{
			Total:      counts.Users,
			Admins:     counts.Admins,
			Managers:   counts.Managers,
			Inspectors: counts.Inspectors,
		},
		Buildings:                counts.Buildings,
		WeeklyAssignmentsForWeek: counts.WeeklyAssignments,
		PendingRequests:          counts.PendingRequests,
		ResponsesByStatus:        responses,
	}, nil
}
