package email

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/estateshare/backend/internal/application/adapter"
	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// ResendOption customises a ResendClient.
type ResendOption func(*ResendClient)

// WithBaseURL sends API calls to another Resend compatible endpoint.
// Unparseable URLs are ignored.
func WithBaseURL(raw string) ResendOption {
	return func(c *ResendClient) {
		if raw == "" {
			return
		}
		u, err := url.Parse(strings.TrimRight(raw, "/") + "/")
		if err != nil {
			return
		}
		c.client.BaseURL = u
	}
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string, opts ...ResendOption) *ResendClient {
	c := &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send sends an email via Resend.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	from := fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		if isPermanentError(err) {
			return nil, domainerror.NewEmailError(
				domainerror.ErrCodeEmailRejected,
				"email rejected by provider",
				err,
			)
		}
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeEmailDeferred,
			"email delivery deferred",
			err,
		)
	}

	return &adapter.SendEmailResult{
		ResendID: resp.Id,
	}, nil
}

// isPermanentError reports whether Resend rejected the request outright.
// Rate limits and 5xx responses are retried.
func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	permanentPatterns := []string{
		"401",
		"403",
		"422",
		"unauthorized",
		"forbidden",
		"validation",
		"invalid",
		"bad request",
	}

	for _, pattern := range permanentPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

var _ adapter.EmailSender = (*ResendClient)(nil)
