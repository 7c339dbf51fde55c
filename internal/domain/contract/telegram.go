package contract

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// TelegramBot is the subset of *tgbotapi.BotAPI used by the bot.
type TelegramBot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}
