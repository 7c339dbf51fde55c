package telegram

import (
	"context"
	"fmt"
	"strconv"

	"github.com/diegoclair/weekly-signup-bot/internal/domain/contract"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
)

// Deliverer sends payloads to the group chat, or to a user's private chat.
type Deliverer struct {
	bot    contract.TelegramBot
	chatID int64
}

func NewDeliverer(bot contract.TelegramBot, chatID int64) *Deliverer {
	return &Deliverer{
		bot:    bot,
		chatID: chatID,
	}
}

// Deliver sends the payload. The bot API has no context support, so ctx is
// only checked before sending.
func (d *Deliverer) Deliver(ctx context.Context, target entity.Target, payload entity.Payload) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to send %s: %w", payload.Kind, err)
	}

	chatID := d.chatID
	if target.Kind == entity.TargetUser {
		userChatID, err := strconv.ParseInt(target.UserID, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse telegram user id %q: %w", target.UserID, err)
		}
		chatID = userChatID
	}

	if _, err := d.bot.Send(NewPayloadMessage(chatID, payload)); err != nil {
		return fmt.Errorf("failed to send %s to telegram chat %d: %w", payload.Kind, chatID, err)
	}

	return nil
}
