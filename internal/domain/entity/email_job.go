// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus represents the delivery state of an outbox entry.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplateType identifies the notification being sent.
type EmailTemplateType string

const (
	TemplatePayoutDeclared EmailTemplateType = "payout_declared"
	TemplatePayoutCredited EmailTemplateType = "payout_credited"
)

// emailRetryDelays is indexed by the number of attempts already made.
var emailRetryDelays = []time.Duration{0, time.Minute, 5 * time.Minute}

// EmailJob is a notification written to the outbox inside a ledger unit of
// work and delivered by the worker after commit. DedupKey is unique so the
// same ledger event never queues two emails.
type EmailJob struct {
	ID             uuid.UUID
	TemplateType   EmailTemplateType
	DedupKey       string
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ResendID       string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewPayoutEmailJob queues a payout notification for the payout's owner.
func NewPayoutEmailJob(templateType EmailTemplateType, payoutID uuid.UUID, user *User, subject string, data map[string]interface{}) *EmailJob {
	now := time.Now().UTC()
	return &EmailJob{
		ID:             uuid.New(),
		TemplateType:   templateType,
		DedupKey:       string(templateType) + ":" + payoutID.String(),
		RecipientEmail: user.Email,
		RecipientName:  user.Name,
		Subject:        subject,
		TemplateData:   data,
		Status:         EmailStatusPending,
		MaxAttempts:    len(emailRetryDelays),
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing marks the job as claimed by a worker.
func (e *EmailJob) MarkProcessing() {
	e.Status = EmailStatusProcessing
}

// MarkSent records a successful delivery.
func (e *EmailJob) MarkSent(resendID string) {
	now := time.Now().UTC()
	e.Status = EmailStatusSent
	e.ResendID = resendID
	e.ProcessedAt = &now
}

// MarkFailed records a failed attempt. Temporary failures are rescheduled
// until MaxAttempts is reached.
func (e *EmailJob) MarkFailed(err error, permanent bool) {
	e.Attempts++
	e.LastError = err.Error()

	now := time.Now().UTC()
	if permanent || e.Attempts >= e.MaxAttempts {
		e.Status = EmailStatusFailed
		e.ProcessedAt = &now
		return
	}

	delay := emailRetryDelays[len(emailRetryDelays)-1]
	if e.Attempts < len(emailRetryDelays) {
		delay = emailRetryDelays[e.Attempts]
	}
	e.Status = EmailStatusPending
	e.ScheduledAt = now.Add(delay)
}
