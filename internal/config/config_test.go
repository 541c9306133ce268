package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTP.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.HTTP.Port)
	}
	if cfg.Notify.Timezone != "Europe/Moscow" {
		t.Errorf("timezone = %q, want Europe/Moscow", cfg.Notify.Timezone)
	}
	if cfg.Notify.MorningCron != "0 0 9 * * *" || cfg.Notify.EveningCron != "0 0 20 * * *" {
		t.Errorf("cron defaults wrong: %+v", cfg.Notify)
	}
	if cfg.Notify.Enabled {
		t.Error("notifications must default to disabled")
	}
	if cfg.Redis.NoteTTL != 5*time.Minute {
		t.Errorf("note cache ttl = %v, want 5m", cfg.Redis.NoteTTL)
	}
	if cfg.Database.URL == "" {
		t.Error("database url should be derived from parts when unset")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("NOTIFY_ENABLED", "true")
	t.Setenv("TELEGRAM_CHAT_ID", "123456789")
	t.Setenv("NOTIFY_TIMEZONE", "UTC")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/life?sslmode=disable")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTP.Port != "9000" {
		t.Errorf("port = %q, want 9000", cfg.HTTP.Port)
	}
	if !cfg.Notify.Enabled {
		t.Error("expected notifications enabled")
	}
	if cfg.Notify.ChatID != 123456789 {
		t.Errorf("chat id = %d, want 123456789", cfg.Notify.ChatID)
	}
	if cfg.Notify.Timezone != "UTC" {
		t.Errorf("timezone = %q, want UTC", cfg.Notify.Timezone)
	}
	if cfg.Database.URL != "postgres://u:p@db:5432/life?sslmode=disable" {
		t.Errorf("database url = %q", cfg.Database.URL)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")
	t.Setenv("DB_MAX_OPEN_CONNS", "lots")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Notify.ChatID != 0 {
		t.Errorf("chat id = %d, want fallback 0", cfg.Notify.ChatID)
	}
	if cfg.Database.MaxOpenConns != 25 {
		t.Errorf("max open conns = %d, want fallback 25", cfg.Database.MaxOpenConns)
	}
}
