package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TOKEN", "test-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Telegram.Token != "test-token" {
		t.Errorf("Token = %q", cfg.Telegram.Token)
	}
	if cfg.DB.Driver != DriverPostgres || cfg.DB.Port != 5432 {
		t.Errorf("DB = %+v", cfg.DB)
	}
	if cfg.Menu.BreakfastText != "你的早饭就吃[food]吧" || cfg.Menu.DrinkText != "你的饮料就喝[food]吧" {
		t.Errorf("Menu texts = %+v", cfg.Menu)
	}
	if cfg.Menu.ConfirmTimeout != 15*time.Second {
		t.Errorf("ConfirmTimeout = %s", cfg.Menu.ConfirmTimeout)
	}
	if cfg.Reminder.Enabled || cfg.Reminder.BreakfastTime != "07:00" || cfg.Reminder.LunchTime != "12:00" || cfg.Reminder.DinnerTime != "18:00" {
		t.Errorf("Reminder = %+v", cfg.Reminder)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/menus.db")
	t.Setenv("AT_THE_USER", "true")
	t.Setenv("REMINDER_ENABLED", "true")
	t.Setenv("REMINDER_CHAT_IDS", "-100123,42")
	t.Setenv("CONFIRM_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DB.Driver != DriverSQLite || cfg.DB.SQLitePath != "/tmp/menus.db" {
		t.Errorf("DB = %+v", cfg.DB)
	}
	if !cfg.Menu.AtTheUser || cfg.Menu.ConfirmTimeout != 30*time.Second {
		t.Errorf("Menu = %+v", cfg.Menu)
	}
	if !cfg.Reminder.Enabled || len(cfg.Reminder.ChatIDs) != 2 || cfg.Reminder.ChatIDs[0] != -100123 {
		t.Errorf("Reminder = %+v", cfg.Reminder)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestPostgresURL(t *testing.T) {
	c := DBConfig{User: "u", Password: "p", Host: "h", Port: 5433, Database: "d"}
	if got := c.PostgresURL(); got != "postgres://u:p@h:5433/d" {
		t.Errorf("PostgresURL = %q", got)
	}
}
