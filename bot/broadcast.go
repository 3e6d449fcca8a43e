package bot

import (
	"context"
	"errors"
	"fmt"

	"food-picker/lang"
	"food-picker/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of *tgbotapi.BotAPI used to post messages.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Broadcaster posts meal reminders to a fixed list of chats.
type Broadcaster struct {
	out     Sender
	chatIDs []int64
	lang    string
}

func NewBroadcaster(out Sender, chatIDs []int64, langCode string) *Broadcaster {
	return &Broadcaster{out: out, chatIDs: chatIDs, lang: langCode}
}

// Broadcast sends the reminder for slot to every chat. A chat that fails does
// not stop the others; all failures are returned together.
func (b *Broadcaster) Broadcast(ctx context.Context, slot models.MenuType) error {
	text := lang.T(b.lang, "remind_"+string(slot))
	var errs []error
	for _, chatID := range b.chatIDs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := b.out.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			errs = append(errs, fmt.Errorf("chat %d: %w", chatID, err))
		}
	}
	return errors.Join(errs...)
}
