package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MailTmBase != "https://api.mail.tm" {
		t.Errorf("MailTmBase = %q", cfg.MailTmBase)
	}
	if cfg.HTTPTimeout != 20*time.Second {
		t.Errorf("HTTPTimeout = %v, want 20s", cfg.HTTPTimeout)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("unexpected logging defaults: %q %q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadTrimsBaseURL(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("MAILTM_BASE", " https://api.mail.tm/ ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MailTmBase != "https://api.mail.tm" {
		t.Errorf("MailTmBase = %q, want trimmed", cfg.MailTmBase)
	}
}

func TestLoadRequiresToken(t *testing.T) {
	// t.Setenv registers the restore, Unsetenv makes the var truly absent
	t.Setenv("TELEGRAM_BOT_TOKEN", "x")
	os.Unsetenv("TELEGRAM_BOT_TOKEN")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without bot token")
	}
}
