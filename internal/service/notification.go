package service

import (
	"fmt"

	"inspection-scheduler-backend/internal/database/models"
	apperrors "inspection-scheduler-backend/internal/errors"
	"inspection-scheduler-backend/internal/repository"

	"github.com/google/uuid"
)

// NotificationService serves the per-user inbox
type NotificationService struct {
	repo      repository.NotificationRepositoryInterface
	groupRepo repository.InspectorGroupRepositoryInterface
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface, groupRepo repository.InspectorGroupRepositoryInterface) *NotificationService {
	return &NotificationService{
		repo:      repo,
		groupRepo: groupRepo,
	}
}

// List returns the user's notifications, newest first. A notification tied to
// a shift is only returned while the user is still one of its inspectors; this
// is checked on every read, so reassignment hides it retroactively.
func (s *NotificationService) List(userID uuid.UUID) ([]models.Notification, error) {
	notifications, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	bound := make(map[uuid.UUID]bool)
	visible := make([]models.Notification, 0, len(notifications))
	for i := range notifications {
		shiftID, ok := notifications[i].ShiftID()
		if !ok {
			visible = append(visible, notifications[i])
			continue
		}

		member, seen := bound[shiftID]
		if !seen {
			member, err = s.groupRepo.IsInspectorOfGroup(shiftID, userID)
			if err != nil {
				return nil, fmt.Errorf("failed to check shift membership: %w", err)
			}
			bound[shiftID] = member
		}
		if member {
			visible = append(visible, notifications[i])
		}
	}
	return visible, nil
}

// UnreadCount counts the unread notifications List would return
func (s *NotificationService) UnreadCount(userID uuid.UUID) (int64, error) {
	notifications, err := s.List(userID)
	if err != nil {
		return 0, err
	}
	var count int64
	for _, n := range notifications {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

// MarkRead marks one of the user's notifications read
func (s *NotificationService) MarkRead(id, userID uuid.UUID) error {
	updated, err := s.repo.MarkRead(id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if !updated {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead marks every notification of the user read and returns how many changed
func (s *NotificationService) MarkAllRead(userID uuid.UUID) (int64, error) {
	count, err := s.repo.MarkAllRead(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return count, nil
}
