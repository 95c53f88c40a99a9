package email

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/infra/db/dbtest"
	"github.com/estateshare/backend/internal/integration/email/templates"
	"github.com/estateshare/backend/internal/integration/persistence"
)

type recordingSender struct {
	sent []adapter.SendEmailInput
	err  error
}

func (s *recordingSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ResendID: fmt.Sprintf("re_%d", len(s.sent))}, nil
}

func newWorker(t *testing.T, sender adapter.EmailSender) (*Worker, adapter.EmailQueueRepository) {
	t.Helper()

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	queue := persistence.NewEmailQueueRepository(dbtest.Open(t))
	cfg := DefaultWorkerConfig()
	cfg.AppBaseURL = "https://app.estateshare.dev/"
	return NewWorker(queue, sender, renderer, cfg), queue
}

func enqueue(t *testing.T, queue adapter.EmailQueueRepository, template entity.EmailTemplateType) *entity.EmailJob {
	t.Helper()

	user := entity.NewUser(uuid.New(), "ada@example.com", "Ada")
	job := entity.NewPayoutEmailJob(template, uuid.New(), user, "Payout", map[string]interface{}{
		"name":          "Ada",
		"property_name": "Lekki Court",
		"amount":        "₦333.33",
		"shares":        int64(25),
	})
	if err := queue.Enqueue(context.Background(), job); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	return job
}

func TestWorker_SendsQueuedPayoutEmail(t *testing.T) {
	ctx := context.Background()
	sender := &recordingSender{}
	worker, queue := newWorker(t, sender)

	job := enqueue(t, queue, entity.TemplatePayoutDeclared)
	worker.ProcessNow(ctx)

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sender.sent))
	}
	sent := sender.sent[0]
	if sent.To != "ada@example.com" || sent.Subject != "Payout" {
		t.Errorf("unexpected email %+v", sent)
	}
	if !strings.Contains(sent.Text, "Your 25 shares earn ₦333.33") {
		t.Errorf("unexpected text body %q", sent.Text)
	}
	if !strings.Contains(sent.HTML, "https://app.estateshare.dev/wallet") {
		t.Error("expected wallet link in HTML body")
	}

	stored, err := queue.GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	if stored.Status != entity.EmailStatusSent || stored.ResendID != "re_1" {
		t.Errorf("unexpected stored job %+v", stored)
	}

	worker.ProcessNow(ctx)
	if len(sender.sent) != 1 {
		t.Error("sent job must not be delivered twice")
	}
}

func TestWorker_DuplicateJobIsDropped(t *testing.T) {
	ctx := context.Background()
	sender := &recordingSender{}
	worker, queue := newWorker(t, sender)

	user := entity.NewUser(uuid.New(), "ada@example.com", "Ada")
	payoutID := uuid.New()
	for i := 0; i < 2; i++ {
		job := entity.NewPayoutEmailJob(entity.TemplatePayoutCredited, payoutID, user, "Credited", map[string]interface{}{"amount": "₦1.00"})
		if err := queue.Enqueue(ctx, job); err != nil {
			t.Fatalf("enqueue %d: %v", i, err)
		}
	}

	worker.ProcessNow(ctx)
	if len(sender.sent) != 1 {
		t.Errorf("expected 1 email, got %d", len(sender.sent))
	}
}

func TestWorker_Failures(t *testing.T) {
	tests := []struct {
		name       string
		template   entity.EmailTemplateType
		sendErr    error
		wantStatus entity.EmailStatus
	}{
		{
			name:       "temporary failure is retried",
			template:   entity.TemplatePayoutDeclared,
			sendErr:    domainerror.NewEmailError(domainerror.ErrCodeEmailDeferred, "rate limited", errors.New("429")),
			wantStatus: entity.EmailStatusPending,
		},
		{
			name:       "permanent failure is final",
			template:   entity.TemplatePayoutDeclared,
			sendErr:    domainerror.NewEmailError(domainerror.ErrCodeEmailRejected, "rejected", errors.New("422")),
			wantStatus: entity.EmailStatusFailed,
		},
		{
			name:       "unclassified failure is retried",
			template:   entity.TemplatePayoutDeclared,
			sendErr:    errors.New("connection reset by peer"),
			wantStatus: entity.EmailStatusPending,
		},
		{
			name:       "unknown template is final",
			template:   entity.EmailTemplateType("password_reset"),
			wantStatus: entity.EmailStatusFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			worker, queue := newWorker(t, &recordingSender{err: tt.sendErr})

			job := enqueue(t, queue, tt.template)
			worker.ProcessNow(ctx)

			stored, err := queue.GetByID(ctx, job.ID)
			if err != nil {
				t.Fatalf("get job: %v", err)
			}
			if stored.Status != tt.wantStatus || stored.Attempts != 1 {
				t.Errorf("expected %s after 1 attempt, got %s after %d", tt.wantStatus, stored.Status, stored.Attempts)
			}
			if tt.wantStatus == entity.EmailStatusPending && !stored.ScheduledAt.After(time.Now().UTC()) {
				t.Error("expected retry to be scheduled in the future")
			}
		})
	}
}

func TestIsPermanentError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{err: nil, want: false},
		{err: errors.New("422 validation_error: invalid from address"), want: true},
		{err: errors.New("401 Unauthorized"), want: true},
		{err: errors.New("429 rate_limit_exceeded"), want: false},
		{err: errors.New("503 service unavailable"), want: false},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			if got := isPermanentError(tt.err); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
