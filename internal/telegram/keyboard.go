package telegram

import (
	"fmt"
	"strings"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback data sent by the inline keyboard buttons.
const (
	CallbackSignupPrefix = "signup_"
	CallbackChangePrefix = "change_"
	CallbackChangeDay    = "change_day"
	CallbackCancel       = "cancel_signup"
)

const pickerPrompt = "Which day would you like to switch to?"

// callbackKind is how a callback should be handled.
type callbackKind int

const (
	callbackClaim callbackKind = iota
	callbackChange
	callbackPicker
	callbackCancel
)

type callback struct {
	kind callbackKind
	day  string
}

func parseCallback(data string) (callback, error) {
	switch {
	case data == CallbackCancel:
		return callback{kind: callbackCancel}, nil
	case data == CallbackChangeDay:
		return callback{kind: callbackPicker}, nil
	case strings.HasPrefix(data, CallbackChangePrefix):
		return callback{kind: callbackChange, day: strings.TrimPrefix(data, CallbackChangePrefix)}, nil
	case strings.HasPrefix(data, CallbackSignupPrefix):
		return callback{kind: callbackClaim, day: strings.TrimPrefix(data, CallbackSignupPrefix)}, nil
	}
	return callback{}, fmt.Errorf("unknown callback %q", data)
}

func buttonLabel(day domain.Day) string {
	if day == domain.Unavailable {
		return "🚫 Not Available"
	}
	return string(day)
}

// SignupKeyboard lays out the days two per row, Unavailable on its own row and
// the change and cancel buttons last.
func SignupKeyboard(days []domain.Day) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	var unavailable bool

	for _, day := range days {
		if day == domain.Unavailable {
			unavailable = true
			continue
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(buttonLabel(day), CallbackSignupPrefix+string(day)))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	if unavailable {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(buttonLabel(domain.Unavailable), CallbackSignupPrefix+string(domain.Unavailable)),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Change Day", CallbackChangeDay),
		tgbotapi.NewInlineKeyboardButtonData("Cancel Signup", CallbackCancel),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// DayPicker lists one day per row for moving an existing signup.
func DayPicker(days []domain.Day) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(days))
	for _, day := range days {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(buttonLabel(day), CallbackChangePrefix+string(day)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// escapeMarkdown escapes user supplied text for legacy Markdown messages.
func escapeMarkdown(text string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, text)
}

func messageText(payload entity.Payload) string {
	return payload.Render(escapeMarkdown)
}

// NewPayloadMessage builds a Markdown message for chatID with the signup
// keyboard attached when the payload is interactive.
func NewPayloadMessage(chatID int64, payload entity.Payload) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, messageText(payload))
	msg.ParseMode = tgbotapi.ModeMarkdown
	if payload.Interactive() {
		msg.ReplyMarkup = SignupKeyboard(payload.Choices)
	}
	return msg
}

// NewPayloadEdit re-renders an existing prompt message in place.
func NewPayloadEdit(chatID int64, messageID int, payload entity.Payload) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, messageText(payload), SignupKeyboard(payload.Choices))
	edit.ParseMode = tgbotapi.ModeMarkdown
	return edit
}
