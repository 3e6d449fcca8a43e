package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"food-picker/bot"
	"food-picker/config"
	"food-picker/db"
	"food-picker/lang"
	"food-picker/menu"
	"food-picker/reminder"
	"food-picker/services"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("config")
	}
	zerolog.SetGlobalLevel(level)

	// migrate subcommand: apply the schema and exit
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		_, closeStore := openStore(cfg, true)
		defer closeStore()
		log.Info().Str("driver", cfg.DB.Driver).Msg("migrations applied")
		return
	}

	if cfg.Telegram.Token == "" {
		log.Fatal().Msg("TOKEN not set")
	}

	var schedule reminder.Schedule
	if cfg.Reminder.Enabled {
		schedule, err = reminder.NewSchedule(cfg.Reminder.BreakfastTime, cfg.Reminder.LunchTime, cfg.Reminder.DinnerTime)
		if err != nil {
			log.Fatal().Err(err).Msg("reminder")
		}
	}

	if cfg.Menu.Language == lang.En {
		menu.ListSeparator = ", "
	}

	store, closeStore := openStore(cfg, cfg.DB.AutoMigrate)
	defer closeStore()

	menus := services.NewMenuService(store, cfg.Menu.ConfirmTimeout)
	b, err := bot.New(cfg, menus)
	if err != nil {
		log.Fatal().Err(err).Msg("bot")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if schedule != nil {
		if len(cfg.Reminder.ChatIDs) == 0 {
			log.Warn().Msg("reminders enabled but REMINDER_CHAT_IDS is empty")
		}
		broadcaster := bot.NewBroadcaster(b.API(), cfg.Reminder.ChatIDs, cfg.Menu.Language)
		go reminder.NewScheduler(schedule, broadcaster).Run(ctx)
	}

	log.Info().Str("bot", b.API().Self.UserName).Str("driver", cfg.DB.Driver).Msg("bot started")
	b.Start(ctx)
	log.Info().Msg("bot stopped")
}

// openStore connects the configured backend and applies migrations when
// migrate is set. Failures are fatal.
func openStore(cfg *config.Config, migrate bool) (services.Store, func()) {
	ctx := context.Background()
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		conn, err := db.OpenSQLite(cfg.DB.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("db")
		}
		if migrate {
			applyMigrations(ctx, db.SQLExec(conn))
		}
		return services.NewSQLiteStore(conn), func() { closeSQL(conn) }
	default:
		if err := db.Init(cfg.DB); err != nil {
			log.Fatal().Err(err).Msg("db")
		}
		if migrate {
			applyMigrations(ctx, db.PgExec(db.Pool))
		}
		return services.NewPgStore(db.Pool), db.Close
	}
}

func applyMigrations(ctx context.Context, exec db.ExecFunc) {
	if err := db.ApplyMigrations(ctx, exec); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}
}

func closeSQL(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		log.Error().Err(err).Msg("close sqlite")
	}
}
