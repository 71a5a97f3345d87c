package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"inspection-scheduler-backend/internal/config"
	"inspection-scheduler-backend/internal/logger"

	"github.com/wneessen/go-mail"
)

const smtpTimeout = 15 * time.Second

// ShiftAssignmentEmail carries what an inspector needs to know about a new shift
type ShiftAssignmentEmail struct {
	InspectorName string
	BuildingName  string
	BuildingCode  string
	Week          string
	RoleName      string
	IsPrimary     bool
	Days          []string
}

// SMTPEmailService sends mail through the configured SMTP relay
type SMTPEmailService struct {
	cfg *config.Config
}

// LogEmailService only logs outgoing mail. It is used when SMTP_HOST is empty.
type LogEmailService struct{}

// NewEmailService returns an SMTP sender, or a logging no-op when SMTP is not configured
func NewEmailService(cfg *config.Config) EmailServiceInterface {
	if !cfg.MailEnabled() {
		return &LogEmailService{}
	}
	return &SMTPEmailService{cfg: cfg}
}

// SendShiftAssignment sends the assignment notice synchronously. Failures are
// logged and reported as false, never returned.
func (s *SMTPEmailService) SendShiftAssignment(ctx context.Context, to string, details ShiftAssignmentEmail) bool {
	log := logger.WithContext(ctx).WithField("to", to).WithField("week", details.Week)

	msg := mail.NewMsg()
	if err := msg.From(s.cfg.SMTPFrom); err != nil {
		log.WithError(err).Error("invalid sender address")
		return false
	}
	if err := msg.To(to); err != nil {
		log.WithError(err).Warn("invalid recipient address")
		return false
	}
	msg.Subject(shiftAssignmentSubject(details))
	msg.SetBodyString(mail.TypeTextPlain, shiftAssignmentBody(details))

	opts := []mail.Option{
		mail.WithPort(s.cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(smtpTimeout),
	}
	if s.cfg.SMTPUser != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.SMTPUser),
			mail.WithPassword(s.cfg.SMTPPassword),
		)
	}

	client, err := mail.NewClient(s.cfg.SMTPHost, opts...)
	if err != nil {
		log.WithError(err).Error("failed to create SMTP client")
		return false
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		log.WithError(err).Warn("failed to send shift assignment email")
		return false
	}

	log.Info("shift assignment email sent")
	return true
}

// SendShiftAssignment logs the message that would have been sent
func (s *LogEmailService) SendShiftAssignment(ctx context.Context, to string, details ShiftAssignmentEmail) bool {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"to":      to,
		"subject": shiftAssignmentSubject(details),
	}).Info("SMTP not configured, skipping email")
	return true
}

func shiftAssignmentSubject(details ShiftAssignmentEmail) string {
	return fmt.Sprintf("New shift assignment: %s, %s", details.BuildingName, details.Week)
}

func shiftAssignmentBody(details ShiftAssignmentEmail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", details.InspectorName)
	fmt.Fprintf(&b, "You have been assigned to building %s (%s) for week %s.\n", details.BuildingName, details.BuildingCode, details.Week)
	if details.RoleName != "" {
		fmt.Fprintf(&b, "Role: %s\n", details.RoleName)
	}
	if details.IsPrimary {
		b.WriteString("You are the primary inspector for this shift.\n")
	} else {
		b.WriteString("You are a backup inspector for this shift.\n")
	}
	if len(details.Days) > 0 {
		b.WriteString("\nSchedule:\n")
		for _, d := range details.Days {
			fmt.Fprintf(&b, "  - %s\n", d)
		}
	}
	b.WriteString("\nPlease log in to accept or reject the shift.\n")
	return b.String()
}
