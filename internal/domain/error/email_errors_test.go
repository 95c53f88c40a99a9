package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsRetryableEmailError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "deferred", err: NewEmailError(ErrCodeEmailDeferred, "rate limited", errors.New("429")), want: true},
		{name: "wrapped deferred", err: fmt.Errorf("send: %w", NewEmailError(ErrCodeEmailDeferred, "timeout", nil)), want: true},
		{name: "rejected", err: NewEmailError(ErrCodeEmailRejected, "bad address", errors.New("422")), want: false},
		{name: "unknown template", err: NewEmailError(ErrCodeUnknownEmailTemplate, "unknown template type", ErrUnknownEmailTemplate), want: false},
		{name: "render failure", err: NewEmailError(ErrCodeEmailRenderFailed, "failed to render template", nil), want: false},
		{name: "unclassified", err: errors.New("connection reset"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryableEmailError(tt.err); got != tt.want {
				t.Errorf("IsRetryableEmailError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
