package bot

import (
	"context"
	"strings"
	"sync"
	"time"

	"food-picker/config"
	"food-picker/lang"
	"food-picker/models"
	"food-picker/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// platform prefixes every stored user id.
const platform = "telegram"

type Bot struct {
	api     *tgbotapi.BotAPI
	out     Sender
	name    string
	cfg     *config.Config
	menus   *services.MenuService
	prompts *prompter
	lang    string

	templates map[models.MenuType]string
	now       func() time.Time

	handlers sync.WaitGroup
}

func New(cfg *config.Config, menus *services.MenuService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	b := newBot(cfg, menus, api)
	b.api = api
	b.name = api.Self.UserName
	return b, nil
}

func newBot(cfg *config.Config, menus *services.MenuService, out Sender) *Bot {
	code := cfg.Menu.Language
	if !lang.Supported(code) {
		code = lang.Zh
	}
	return &Bot{
		out:     out,
		cfg:     cfg,
		menus:   menus,
		prompts: newPrompter(),
		lang:    code,
		templates: map[models.MenuType]string{
			models.MenuBreakfast: cfg.Menu.BreakfastText,
			models.MenuLunch:     cfg.Menu.LunchText,
			models.MenuDinner:    cfg.Menu.DinnerText,
			models.MenuSnacks:    cfg.Menu.SnacksText,
			models.MenuDrink:     cfg.Menu.DrinkText,
		},
		now: time.Now,
	}
}

// API returns the Telegram client, shared with the reminder broadcaster.
func (b *Bot) API() *tgbotapi.BotAPI {
	return b.api
}

func (b *Bot) setBotCommands() error {
	var cmds []tgbotapi.BotCommand
	for _, c := range []string{cmdEat, cmdAdd, cmdMenu, cmdDelete, cmdCopy, cmdClear, cmdHelp} {
		cmds = append(cmds, tgbotapi.BotCommand{Command: c, Description: b.t("cmd_" + c)})
	}
	_, err := b.api.Request(tgbotapi.NewSetMyCommands(cmds...))
	return err
}

// Start long-polls for updates until ctx is done, then waits for running
// handlers to finish.
func (b *Bot) Start(ctx context.Context) {
	if err := b.setBotCommands(); err != nil {
		log.Warn().Err(err).Msg("set bot commands")
	}
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	// handlers outlive shutdown so a started command still gets its reply
	hctx := context.WithoutCancel(ctx)
	for update := range updates {
		msg := update.Message
		if msg == nil || msg.From == nil {
			continue
		}
		text := strings.TrimSpace(msg.Text)
		if text == "" {
			continue
		}
		if b.prompts.deliver(msg.Chat.ID, msg.From.ID, text) {
			continue
		}
		b.handlers.Add(1)
		go func() {
			defer b.handlers.Done()
			b.handleMessage(hctx, msg)
		}()
	}
	b.handlers.Wait()
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	cmd, ok := parseCommand(msg.Text, b.name)
	if !ok {
		return
	}
	log.Debug().Int64("chat", msg.Chat.ID).Int64("user", msg.From.ID).Str("command", cmd.name).Msg("command")
	if reply := b.dispatch(ctx, msg, cmd); reply != "" {
		b.reply(msg, reply)
	}
}

func (b *Bot) dispatch(ctx context.Context, msg *tgbotapi.Message, cmd command) string {
	switch cmd.name {
	case cmdStart, cmdHelp:
		return b.t("help")
	case cmdEat:
		return b.handleEat(ctx, msg, cmd.args)
	case cmdAdd:
		return b.handleAdd(ctx, msg, cmd.args)
	case cmdMenu:
		return b.handleMenu(ctx, msg, cmd.args)
	case cmdDelete:
		return b.handleDelete(ctx, msg, cmd.args)
	case cmdCopy:
		return b.handleCopy(ctx, msg, cmd.args)
	case cmdClear:
		return b.handleClear(ctx, msg, cmd.args)
	}
	return ""
}

func (b *Bot) t(key string, args ...interface{}) string {
	return lang.T(b.lang, key, args...)
}

func (b *Bot) menuName(t models.MenuType) string {
	return lang.MenuName(b.lang, t)
}

func (b *Bot) reply(msg *tgbotapi.Message, text string) {
	if b.cfg.Menu.AtTheUser {
		text = mention(msg.From) + " " + text
	}
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ReplyToMessageID = msg.MessageID
	if _, err := b.out.Send(out); err != nil {
		log.Error().Err(err).Int64("chat", msg.Chat.ID).Msg("send reply")
	}
}

func userID(u *tgbotapi.User) string {
	return models.UserID(platform, u.ID)
}

func mention(u *tgbotapi.User) string {
	if u.UserName != "" {
		return "@" + u.UserName
	}
	return displayName(u)
}

func displayName(u *tgbotapi.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.UserName
	}
	return name
}
