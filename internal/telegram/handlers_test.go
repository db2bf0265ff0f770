package telegram

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mixelka/tempmailbot/internal/mailtm"
)

func TestProviderErrorText(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"auth failed", fmt.Errorf("failed to list messages: %w", mailtm.ErrAuthFailed), "Создайте почту заново"},
		{"rejected", fmt.Errorf("failed to create account: %w", mailtm.ErrRejected), "отклонил запрос"},
		{"unavailable", fmt.Errorf("failed to list domains: %w", mailtm.ErrUnavailable), "Попробуйте позже"},
		{"unknown error", fmt.Errorf("boom"), "Попробуйте позже"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := providerErrorText(tt.err); !strings.Contains(got, tt.want) {
				t.Errorf("providerErrorText = %q, want substring %q", got, tt.want)
			}
		})
	}
}
