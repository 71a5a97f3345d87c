package service

import (
	"context"
	"encoding/json"
	"fmt"

	"inspection-scheduler-backend/internal/database/models"
	"inspection-scheduler-backend/internal/logger"
	"inspection-scheduler-backend/internal/repository"

	"github.com/google/uuid"
)

// shiftNotifier fans out the side effects of a committed schedule write.
// Nothing it does can fail the write that triggered it.
type shiftNotifier struct {
	notificationRepo repository.NotificationRepositoryInterface
	mailer           EmailServiceInterface
}

type assignmentMail struct {
	to      string
	details ShiftAssignmentEmail
}

// notifyAssigned creates one SHIFT_ASSIGNED notification and sends one email
// per inspector bound to groups.
func (n *shiftNotifier) notifyAssigned(ctx context.Context, building *models.Building, week string, groups []models.InspectorGroup) {
	log := logger.WithContext(ctx).WithField("week", week)

	var buildingName, buildingCode string
	if building != nil {
		buildingName = building.Name
		buildingCode = building.Code
	}

	var notifications []models.Notification
	var mails []assignmentMail
	for _, group := range groups {
		days := describeDays(group.Days)
		roleName := ""
		if group.Role != nil {
			roleName = group.Role.Name
		}

		for _, gi := range group.Inspectors {
			metadata, err := shiftMetadata(group.ID, gi.InspectorID)
			if err != nil {
				log.WithError(err).Error("failed to encode notification metadata")
				continue
			}
			notifications = append(notifications, models.Notification{
				UserID:   gi.InspectorID,
				Title:    "New shift assignment",
				Message:  fmt.Sprintf("You have been assigned to %s for week %s", buildingName, week),
				Type:     models.NotificationShiftAssigned,
				Metadata: metadata,
			})

			if gi.Inspector == nil || gi.Inspector.Username == "" {
				continue
			}
			mails = append(mails, assignmentMail{
				to: gi.Inspector.Username,
				details: ShiftAssignmentEmail{
					InspectorName: gi.Inspector.FullName,
					BuildingName:  buildingName,
					BuildingCode:  buildingCode,
					Week:          week,
					RoleName:      roleName,
					IsPrimary:     gi.IsPrimary,
					Days:          days,
				},
			})
		}
	}

	if len(notifications) > 0 {
		if err := n.notificationRepo.CreateBatch(notifications); err != nil {
			log.WithError(err).WithField("count", len(notifications)).Error("failed to create shift notifications")
		}
	}

	sent := 0
	for _, m := range mails {
		if n.mailer.SendShiftAssignment(ctx, m.to, m.details) {
			sent++
		}
	}
	if len(mails) > 0 {
		log.WithFields(map[string]interface{}{"sent": sent, "total": len(mails)}).Info("shift assignment emails processed")
	}
}

// notifyRejected tells the assignment's creator that an inspector turned a shift down
func (n *shiftNotifier) notifyRejected(ctx context.Context, group *models.InspectorGroup, inspectorID uuid.UUID, reason string) {
	assignment := group.WeeklyShiftAssignment
	if assignment == nil || assignment.CreatedBy == nil {
		return
	}

	inspectorName := inspectorID.String()
	for _, gi := range group.Inspectors {
		if gi.InspectorID == inspectorID && gi.Inspector != nil {
			inspectorName = gi.Inspector.FullName
		}
	}
	buildingName := ""
	if assignment.Building != nil {
		buildingName = assignment.Building.Name
	}

	metadata, err := json.Marshal(models.NotificationMetadata{RejectedShiftID: &group.ID, InspectorID: &inspectorID})
	if err != nil {
		logger.WithContext(ctx).WithError(err).Error("failed to encode notification metadata")
		return
	}
	notification := &models.Notification{
		UserID:   *assignment.CreatedBy,
		Title:    "Shift rejected",
		Message:  fmt.Sprintf("%s rejected the shift at %s for week %s: %s", inspectorName, buildingName, assignment.Week, reason),
		Type:     models.NotificationShiftRejected,
		Metadata: metadata,
	}
	if err := n.notificationRepo.Create(notification); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("shift_id", group.ID).Error("failed to create rejection notification")
	}
}

func shiftMetadata(shiftID, inspectorID uuid.UUID) (json.RawMessage, error) {
	return json.Marshal(models.NotificationMetadata{ShiftID: &shiftID, InspectorID: &inspectorID})
}

func requestMetadata(requestID uuid.UUID) (json.RawMessage, error) {
	return json.Marshal(models.NotificationMetadata{RequestID: &requestID})
}

func describeDays(days []models.DailyShiftType) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		if d.ShiftType == nil {
			out = append(out, dayName(d.DayOfWeek))
			continue
		}
		out = append(out, fmt.Sprintf("%s: %s (%s-%s)", dayName(d.DayOfWeek), d.ShiftType.Name, d.ShiftType.StartTime, d.ShiftType.EndTime))
	}
	return out
}
