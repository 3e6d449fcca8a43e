package bot

import (
	"context"
	"errors"
	"strings"

	"food-picker/lang"
	"food-picker/menu"
	"food-picker/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

func (b *Bot) handleEat(ctx context.Context, msg *tgbotapi.Message, args []string) string {
	mt, ok := menuArg(args)
	if !ok {
		return b.t("eat_usage")
	}
	res, err := b.menus.Draw(ctx, userID(msg.From), mt, b.now())
	if err != nil {
		log.Error().Err(err).Int64("user", msg.From.ID).Msg("draw")
		return b.t("draw_failed")
	}

	name := b.menuName(res.MenuType)
	if res.Empty {
		if res.Suggest != "" {
			return b.t("draw_empty_copy", name, b.menuName(res.Suggest))
		}
		return b.t("draw_empty", name)
	}
	return fillTemplate(b.templates[res.MenuType], res.Item)
}

func (b *Bot) handleAdd(ctx context.Context, msg *tgbotapi.Message, args []string) string {
	if len(args) < 2 {
		return b.t("add_usage")
	}
	mt, ok := models.ParseMenuType(args[0])
	if !ok {
		return b.t("add_usage")
	}

	res, err := b.menus.Add(ctx, userID(msg.From), mt, args[1:])
	var fe *menu.FormatError
	var ve *menu.ValidationError
	switch {
	case errors.As(err, &fe):
		return b.t("format_error")
	case errors.As(err, &ve) && ve.TooLarge:
		return b.t("weight_limit", menu.FormatWeight(menu.MaxWeight))
	case errors.As(err, &ve):
		return b.t("weight_error")
	case err != nil:
		log.Error().Err(err).Int64("user", msg.From.ID).Str("menu", string(mt)).Msg("add menu items")
		return b.t("error")
	}

	name := b.menuName(mt)
	lines := []string{b.t("added", name), b.t("menu_line", name, res.Listing)}
	if res.Increments.Len() > 0 {
		lines = append(lines, b.t("increments", res.Increments.String()))
	}
	return strings.Join(lines, "\n")
}

func (b *Bot) handleMenu(ctx context.Context, msg *tgbotapi.Message, args []string) string {
	mt, ok := menuArg(args)
	if !ok {
		return b.t("view_usage")
	}
	listings, err := b.menus.View(ctx, userID(msg.From), mt)
	if err != nil {
		log.Error().Err(err).Int64("user", msg.From.ID).Msg("view menu")
		return b.t("error")
	}

	if mt != nil {
		name := b.menuName(*mt)
		if len(listings) == 0 || listings[0].Items == "" {
			return b.t("view_empty_one", name)
		}
		return b.t("view_one") + "\n" + b.t("menu_line", name, listings[0].Items)
	}
	if len(listings) == 0 {
		return b.t("view_empty_all")
	}
	lines := []string{b.t("view_all")}
	for _, l := range listings {
		lines = append(lines, b.t("menu_line", b.menuName(l.MenuType), l.Items))
	}
	return strings.Join(lines, "\n")
}

func (b *Bot) handleDelete(ctx context.Context, msg *tgbotapi.Message, args []string) string {
	if len(args) == 0 {
		return b.t("delete_usage")
	}
	outcomes, err := b.menus.Delete(ctx, userID(msg.From), args)
	lines := make([]string, 0, len(outcomes)+1)
	for _, o := range outcomes {
		if o.Removed {
			lines = append(lines, b.t("delete_ok", o.Name))
		} else {
			lines = append(lines, b.t("delete_missing", o.Name))
		}
	}
	if err != nil {
		log.Error().Err(err).Int64("user", msg.From.ID).Msg("delete menu items")
		lines = append(lines, b.t("error"))
	}
	return strings.Join(lines, "\n")
}

// handleCopy copies another user's menus when the command replies to one of
// their messages, and one of the caller's own menus otherwise.
func (b *Bot) handleCopy(ctx context.Context, msg *tgbotapi.Message, args []string) string {
	if src := msg.ReplyToMessage; src != nil && src.From != nil && src.From.ID != msg.From.ID && !src.From.IsBot {
		mt, ok := menuArg(args)
		if !ok || len(args) > 1 {
			return b.t("copy_usage")
		}
		if _, err := b.menus.CopyFromUser(ctx, userID(msg.From), userID(src.From), mt); err != nil {
			log.Error().Err(err).Int64("user", msg.From.ID).Int64("from", src.From.ID).Msg("copy menu from user")
			return b.t("error")
		}
		who := displayName(src.From)
		if mt == nil {
			return b.t("copy_all", who)
		}
		return b.t("copy_from_user", who, b.menuName(*mt))
	}

	if len(args) != 2 {
		return b.t("copy_usage")
	}
	target, ok := models.ParseMenuType(args[0])
	if !ok {
		return b.t("copy_usage")
	}
	source, ok := models.ParseMenuType(args[1])
	if !ok {
		return b.t("copy_usage")
	}
	if _, err := b.menus.CopyMenu(ctx, userID(msg.From), target, source); err != nil {
		log.Error().Err(err).Int64("user", msg.From.ID).Msg("copy menu")
		return b.t("error")
	}
	return b.t("copy_menu", b.menuName(source), b.menuName(target))
}

// handleClear empties one menu, or every menu after the user confirms.
func (b *Bot) handleClear(ctx context.Context, msg *tgbotapi.Message, args []string) string {
	if len(args) > 0 {
		mt, ok := models.ParseMenuType(args[0])
		if !ok {
			return b.t("clear_usage")
		}
		if _, err := b.menus.Clear(ctx, userID(msg.From), mt); err != nil {
			log.Error().Err(err).Int64("user", msg.From.ID).Str("menu", string(mt)).Msg("clear menu")
			return b.t("error")
		}
		return b.t("clear_ok", b.menuName(mt))
	}

	// listen before asking so a quick answer is not taken for a new command
	answers, stop := b.prompts.listen(msg.Chat.ID, msg.From.ID)
	defer stop()
	b.reply(msg, b.t("clear_confirm", int(b.menus.ConfirmTimeout().Seconds())))
	cleared, err := b.menus.ClearAll(ctx, userID(msg.From), func(ctx context.Context) bool {
		answer, ok := receive(ctx, answers)
		return ok && lang.IsConfirm(answer)
	})
	switch {
	case err != nil:
		log.Error().Err(err).Int64("user", msg.From.ID).Msg("clear all menus")
		return b.t("error")
	case !cleared:
		return b.t("clear_cancelled")
	}
	return b.t("clear_all_ok")
}
