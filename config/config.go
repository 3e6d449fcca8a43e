package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DB       DBConfig
	Telegram TelegramConfig
	Menu     MenuConfig
	Reminder ReminderConfig
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type DBConfig struct {
	Driver      string `env:"DB_DRIVER" envDefault:"postgres"`
	Host        string `env:"DB_HOST" envDefault:"localhost"`
	Port        int    `env:"DB_PORT" envDefault:"5432"`
	User        string `env:"DB_USER" envDefault:"postgres"`
	Password    string `env:"DB_PASSWORD"`
	Database    string `env:"DB_NAME" envDefault:"food_picker"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"data/food-picker.db"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"false"`
}

type TelegramConfig struct {
	Token string `env:"TOKEN"`
}

// MenuConfig covers the reply texts of the draw command. "[food]" in a
// template is replaced with the drawn item.
type MenuConfig struct {
	AtTheUser      bool          `env:"AT_THE_USER" envDefault:"false"`
	Language       string        `env:"LANGUAGE" envDefault:"zh"`
	BreakfastText  string        `env:"BREAKFAST_TEXT" envDefault:"你的早饭就吃[food]吧"`
	LunchText      string        `env:"LUNCH_TEXT" envDefault:"你的午饭就吃[food]吧"`
	DinnerText     string        `env:"DINNER_TEXT" envDefault:"你的晚饭就吃[food]吧"`
	SnacksText     string        `env:"SNACKS_TEXT" envDefault:"你的零食就吃[food]吧"`
	DrinkText      string        `env:"DRINK_TEXT" envDefault:"你的饮料就喝[food]吧"`
	ConfirmTimeout time.Duration `env:"CONFIRM_TIMEOUT" envDefault:"15s"`
}

// ReminderConfig times are 24-hour HH:mm; they are validated by reminder.NewSchedule.
type ReminderConfig struct {
	Enabled       bool    `env:"REMINDER_ENABLED" envDefault:"false"`
	BreakfastTime string  `env:"BREAKFAST_TIME" envDefault:"07:00"`
	LunchTime     string  `env:"LUNCH_TIME" envDefault:"12:00"`
	DinnerTime    string  `env:"DINNER_TIME" envDefault:"18:00"`
	ChatIDs       []int64 `env:"REMINDER_CHAT_IDS" envSeparator:","`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DB.Driver != DriverPostgres && cfg.DB.Driver != DriverSQLite {
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DB.Driver)
	}
	if cfg.Menu.ConfirmTimeout <= 0 {
		return nil, fmt.Errorf("CONFIRM_TIMEOUT must be positive, got %s", cfg.Menu.ConfirmTimeout)
	}
	return &cfg, nil
}

// PostgresURL is the pgx connection string for the configured database.
func (c DBConfig) PostgresURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		c.User, c.Password, c.Host, c.Port, c.Database,
	)
}
