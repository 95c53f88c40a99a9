package email

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
)

// LogSender writes emails to the log. Used when no Resend key is configured.
type LogSender struct{}

// NewLogSender creates a new LogSender.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send implements the adapter.EmailSender interface.
func (s *LogSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	id := "log-" + uuid.NewString()
	slog.InfoContext(ctx, "Email not sent, no provider configured",
		"to", input.To,
		"subject", input.Subject,
		"log_id", id,
	)
	return &adapter.SendEmailResult{ResendID: id}, nil
}

var _ adapter.EmailSender = (*LogSender)(nil)
