package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/contract"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const pollTimeout = 60

// Listener long-polls Telegram and applies commands and button presses.
type Listener struct {
	bot           contract.TelegramBot
	signupService contract.SignupService
}

func NewListener(bot contract.TelegramBot, signupService contract.SignupService) *Listener {
	return &Listener{
		bot:           bot,
		signupService: signupService,
	}
}

// Run polls for updates until ctx is cancelled or the update channel closes.
func (l *Listener) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout

	updates := l.bot.GetUpdatesChan(u)
	log.Println("Telegram listener started")

	for {
		select {
		case <-ctx.Done():
			l.bot.StopReceivingUpdates()
			log.Println("Telegram listener stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			l.handleUpdate(ctx, update)
		}
	}
}

func (l *Listener) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		l.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		l.handleCommand(ctx, update.Message)
	}
}

func (l *Listener) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start", "help":
		l.replyMarkdown(chatID, helpText(l.signupService.Days()))
	case "signup", "send_signup":
		if day := strings.TrimSpace(msg.CommandArguments()); day != "" {
			l.replyAction(ctx, chatID, msg.From, entity.Intent{Kind: entity.IntentClaim, Day: day})
			return
		}
		if _, err := l.bot.Send(NewPayloadMessage(chatID, l.signupService.OpenPrompt())); err != nil {
			log.Printf("ERROR posting signup prompt to chat %d: %v", chatID, err)
		}
	case "cancel":
		l.replyAction(ctx, chatID, msg.From, entity.Intent{Kind: entity.IntentCancel})
	case "status":
		l.replyAction(ctx, chatID, msg.From, entity.Intent{Kind: entity.IntentSnapshot})
	}
}

func (l *Listener) replyAction(ctx context.Context, chatID int64, from *tgbotapi.User, intent entity.Intent) {
	result, err := l.handle(ctx, from, intent)
	if err != nil {
		l.reply(chatID, l.errorText(err, intent.Day))
		return
	}

	if intent.Kind == entity.IntentSnapshot {
		l.replyMarkdown(chatID, messageText(result.Payload))
		return
	}
	l.reply(chatID, result.Message)
}

func (l *Listener) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	cb, err := parseCallback(query.Data)
	if err != nil {
		log.Printf("Ignoring telegram callback: %v", err)
		l.answer(query.ID, "")
		return
	}

	var chatID int64
	var messageID int
	if query.Message != nil {
		chatID = query.Message.Chat.ID
		messageID = query.Message.MessageID
	}

	if cb.kind == callbackPicker {
		l.answer(query.ID, "")
		if query.Message == nil {
			return
		}
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, pickerPrompt, DayPicker(l.signupService.Days()))
		if _, err := l.bot.Send(edit); err != nil {
			log.Printf("ERROR showing day picker in chat %d: %v", chatID, err)
		}
		return
	}

	intent := entity.Intent{Kind: entity.IntentClaim, Day: cb.day}
	if cb.kind == callbackCancel {
		intent = entity.Intent{Kind: entity.IntentCancel}
	}

	result, err := l.handle(ctx, query.From, intent)
	if err != nil {
		l.answer(query.ID, l.errorText(err, intent.Day))
	} else {
		l.answer(query.ID, result.Message)
	}

	if query.Message == nil {
		return
	}

	// The picker replaced the prompt, so a change always restores it. Other
	// presses only edit on mutation since Telegram rejects unchanged edits.
	var payload entity.Payload
	switch {
	case result != nil && result.Outcome.Mutated():
		payload = result.Payload
	case cb.kind == callbackChange:
		payload = l.signupService.OpenPrompt()
	default:
		return
	}

	if _, err := l.bot.Send(NewPayloadEdit(chatID, messageID, payload)); err != nil {
		log.Printf("ERROR refreshing signup prompt %d in chat %d: %v", messageID, chatID, err)
	}
}

func (l *Listener) handle(ctx context.Context, from *tgbotapi.User, intent entity.Intent) (*entity.ActionResult, error) {
	if from == nil {
		return nil, fmt.Errorf("update without sender")
	}

	return l.signupService.Handle(ctx, entity.UserAction{
		UserID:      strconv.FormatInt(from.ID, 10),
		DisplayName: displayName(from),
		Intent:      intent,
	})
}

func (l *Listener) errorText(err error, day string) string {
	if errors.Is(err, domain.ErrInvalidDay) {
		return fmt.Sprintf("❌ %q isn't a signup day. Pick one of: %s", day, joinDays(l.signupService.Days()))
	}

	log.Printf("ERROR handling telegram action: %v", err)
	return "❌ Something went wrong, please try again"
}

func (l *Listener) answer(queryID, text string) {
	if _, err := l.bot.Request(tgbotapi.NewCallback(queryID, text)); err != nil {
		log.Printf("ERROR answering callback %s: %v", queryID, err)
	}
}

// reply sends plain text, so user input echoed back needs no escaping.
func (l *Listener) reply(chatID int64, text string) {
	l.send(chatID, tgbotapi.NewMessage(chatID, text))
}

func (l *Listener) replyMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	l.send(chatID, msg)
}

func (l *Listener) send(chatID int64, msg tgbotapi.MessageConfig) {
	if _, err := l.bot.Send(msg); err != nil {
		log.Printf("ERROR replying in chat %d: %v", chatID, err)
	}
}

// displayName prefers the first name, like the roster shows people in the group.
func displayName(user *tgbotapi.User) string {
	switch {
	case user.FirstName != "":
		return user.FirstName
	case user.UserName != "":
		return user.UserName
	}
	return strconv.FormatInt(user.ID, 10)
}

func helpText(days []domain.Day) string {
	return "👋 Welcome! Here's what I can do:\n\n" +
		"/send\\_signup - post this week's signup form\n" +
		"/signup <day> - sign up for a day (" + joinDays(days) + ")\n" +
		"/cancel - remove your signup\n" +
		"/status - show this week's signups"
}

func joinDays(days []domain.Day) string {
	names := make([]string, 0, len(days))
	for _, day := range days {
		names = append(names, string(day))
	}
	return strings.Join(names, ", ")
}
