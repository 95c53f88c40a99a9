// Package email delivers queued payout notifications.
package email

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/integration/email/templates"
)

// Worker drains the outbox and hands rendered emails to the sender.
type Worker struct {
	queue         adapter.EmailQueueRepository
	sender        adapter.EmailSender
	renderer      *templates.Renderer
	pollInterval  time.Duration
	batchSize     int
	walletURL     string
	retentionDays int
}

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	// AppBaseURL prefixes the wallet link in every email.
	AppBaseURL string
	// RetentionDays is how long sent jobs are kept. Zero disables cleanup.
	RetentionDays int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval:  5 * time.Second,
		BatchSize:     10,
		AppBaseURL:    "http://localhost:3000",
		RetentionDays: 30,
	}
}

// NewWorker creates a new email worker.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	return &Worker{
		queue:         queue,
		sender:        sender,
		renderer:      renderer,
		pollInterval:  config.PollInterval,
		batchSize:     config.BatchSize,
		walletURL:     strings.TrimRight(config.AppBaseURL, "/") + "/wallet",
		retentionDays: config.RetentionDays,
	}
}

// Start runs the worker loop until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Email worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	cleanup := time.NewTicker(24 * time.Hour)
	defer cleanup.Stop()

	w.processBatch(ctx)
	w.purgeSent(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Email worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		case <-cleanup.C:
			w.purgeSent(ctx)
		}
	}
}

func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending email jobs", "error", err)
		return
	}
	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing email batch", "count", len(jobs))

	for _, job := range jobs {
		if ctx.Err() != nil {
			return
		}
		w.processJob(ctx, job)
	}
}

func (w *Worker) processJob(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.TemplateType,
		"recipient", job.RecipientEmail,
	)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	html, text, err := w.renderTemplate(job)
	if err != nil {
		logger.Error("Failed to render email template", "error", err)
		w.handleFailure(ctx, job, err, true)
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("Failed to send email", "error", err)

		w.handleFailure(ctx, job, err, !domainerror.IsRetryableEmailError(err))
		return
	}

	job.MarkSent(result.ResendID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Email sent", "resend_id", result.ResendID)
}

func (w *Worker) renderTemplate(job *entity.EmailJob) (html string, text string, err error) {
	switch job.TemplateType {
	case entity.TemplatePayoutDeclared, entity.TemplatePayoutCredited:
	default:
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeUnknownEmailTemplate,
			"unknown template type",
			domainerror.ErrUnknownEmailTemplate,
		)
	}

	data := templates.PayoutData{
		InvestorName: getString(job.TemplateData, "name"),
		PropertyName: getString(job.TemplateData, "property_name"),
		Amount:       getString(job.TemplateData, "amount"),
		Shares:       getNumber(job.TemplateData, "shares"),
		WalletURL:    w.walletURL,
	}

	html, text, err = w.renderer.Render(string(job.TemplateType), data)
	if err != nil {
		return "", "", domainerror.NewEmailError(domainerror.ErrCodeEmailRenderFailed, "failed to render template", err)
	}
	return html, text, nil
}

func (w *Worker) handleFailure(ctx context.Context, job *entity.EmailJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.EmailStatusFailed {
		slog.Warn("Email job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
		return
	}
	slog.Info("Email job scheduled for retry",
		"job_id", job.ID,
		"attempts", job.Attempts,
		"scheduled_at", job.ScheduledAt,
	)
}

func (w *Worker) purgeSent(ctx context.Context) {
	if w.retentionDays <= 0 {
		return
	}
	deleted, err := w.queue.DeleteOldSentJobs(ctx, w.retentionDays)
	if err != nil {
		slog.Error("Failed to purge sent email jobs", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("Purged sent email jobs", "count", deleted)
	}
}

func getString(data map[string]interface{}, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}

// getNumber reads an integer that may have been decoded from JSON as float64.
func getNumber(data map[string]interface{}, key string) string {
	switch v := data[key].(type) {
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	}
	return ""
}

// ProcessNow processes one batch immediately.
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
