package service

import (
	"context"
	"testing"

	"inspection-scheduler-backend/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNewEmailService(t *testing.T) {
	assert.IsType(t, &LogEmailService{}, NewEmailService(&config.Config{}))
	assert.IsType(t, &SMTPEmailService{}, NewEmailService(&config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587}))
}

func TestLogEmailService_AlwaysSucceeds(t *testing.T) {
	svc := &LogEmailService{}

	assert.True(t, svc.SendShiftAssignment(context.Background(), "jane@example.com", ShiftAssignmentEmail{Week: "2024-W12"}))
}

func TestSMTPEmailService_FailureIsReportedNotReturned(t *testing.T) {
	svc := &SMTPEmailService{cfg: &config.Config{
		SMTPHost: "127.0.0.1",
		SMTPPort: 1,
		SMTPFrom: "scheduler@example.com",
	}}

	assert.False(t, svc.SendShiftAssignment(context.Background(), "jane@example.com", ShiftAssignmentEmail{Week: "2024-W12"}))
}

func TestSMTPEmailService_InvalidRecipient(t *testing.T) {
	svc := &SMTPEmailService{cfg: &config.Config{
		SMTPHost: "127.0.0.1",
		SMTPPort: 1,
		SMTPFrom: "scheduler@example.com",
	}}

	assert.False(t, svc.SendShiftAssignment(context.Background(), "not an address", ShiftAssignmentEmail{}))
}

func TestShiftAssignmentBody(t *testing.T) {
	details := ShiftAssignmentEmail{
		InspectorName: "Jane Doe",
		BuildingName:  "North Terminal",
		BuildingCode:  "NT-01",
		Week:          "2024-W12",
		RoleName:      "Lead",
		IsPrimary:     true,
		Days:          []string{"Monday: Morning (06:00-14:00)", "Tuesday: Night (22:00-06:00)"},
	}

	assert.Equal(t, "New shift assignment: North Terminal, 2024-W12", shiftAssignmentSubject(details))

	body := shiftAssignmentBody(details)
	assert.Contains(t, body, "Hello Jane Doe,")
	assert.Contains(t, body, "building North Terminal (NT-01) for week 2024-W12")
	assert.Contains(t, body, "Role: Lead")
	assert.Contains(t, body, "You are the primary inspector")
	assert.Contains(t, body, "  - Tuesday: Night (22:00-06:00)\n")

	details.IsPrimary = false
	details.RoleName = ""
	details.Days = nil
	body = shiftAssignmentBody(details)
	assert.Contains(t, body, "backup inspector")
	assert.NotContains(t, body, "Role:")
	assert.NotContains(t, body, "Schedule:")
}
