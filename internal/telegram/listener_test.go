package telegram

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
	"github.com/diegoclair/weekly-signup-bot/mocks"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const groupChatID int64 = -100123

type listenerMocks struct {
	t             *testing.T
	bot           *mocks.MockTelegramBot
	signupService *mocks.MockSignupService
}

var alice = &tgbotapi.User{ID: 42, FirstName: "Alice", UserName: "alice"}

func commandUpdate(text string) tgbotapi.Update {
	length := strings.IndexByte(text, ' ')
	if length < 0 {
		length = len(text)
	}
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 1,
			From:      alice,
			Chat:      &tgbotapi.Chat{ID: groupChatID},
			Text:      text,
			Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}},
		},
	}
}

func callbackUpdate(data string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb-1",
			From: alice,
			Message: &tgbotapi.Message{
				MessageID: 7,
				Chat:      &tgbotapi.Chat{ID: groupChatID},
			},
			Data: data,
		},
	}
}

// expectReply matches a reply in the group chat sent with mode and containing text.
func expectReply(m listenerMocks, mode, text string) {
	m.bot.EXPECT().
		Send(gomock.Any()).
		DoAndReturn(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
			msg, ok := c.(tgbotapi.MessageConfig)
			if assert.True(m.t, ok, "expected a message, got %T", c) {
				assert.Equal(m.t, groupChatID, msg.ChatID)
				assert.Equal(m.t, mode, msg.ParseMode)
				assert.Contains(m.t, msg.Text, text)
			}
			return tgbotapi.Message{}, nil
		}).Times(1)
}

func expectAnswer(m listenerMocks, text string) {
	m.bot.EXPECT().
		Request(tgbotapi.NewCallback("cb-1", text)).
		Return(&tgbotapi.APIResponse{Ok: true}, nil).Times(1)
}

// expectEdit matches an edit of the prompt message.
func expectEdit(m listenerMocks, text string) {
	m.bot.EXPECT().
		Send(gomock.Any()).
		DoAndReturn(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
			edit, ok := c.(tgbotapi.EditMessageTextConfig)
			if assert.True(m.t, ok, "expected an edit, got %T", c) {
				assert.Equal(m.t, 7, edit.MessageID)
				assert.Contains(m.t, edit.Text, text)
			}
			return tgbotapi.Message{}, nil
		}).Times(1)
}

func action(intent entity.Intent) entity.UserAction {
	return entity.UserAction{UserID: "42", DisplayName: "Alice", Intent: intent}
}

func TestListener_Run(t *testing.T) {
	prompt := entity.Payload{Kind: entity.PayloadOpenPrompt, Title: "📋 *Signups are open!*", Choices: testDays}

	tests := []struct {
		name       string
		update     tgbotapi.Update
		buildMocks func(m listenerMocks)
	}{
		{
			name:   "Should welcome on start",
			update: commandUpdate("/start"),
			buildMocks: func(m listenerMocks) {
				m.signupService.EXPECT().Days().Return(testDays).Times(1)
				expectReply(m, tgbotapi.ModeMarkdown, "Welcome")
			},
		},
		{
			name:   "Should post the signup prompt",
			update: commandUpdate("/send_signup"),
			buildMocks: func(m listenerMocks) {
				m.signupService.EXPECT().OpenPrompt().Return(prompt).Times(1)
				expectReply(m, tgbotapi.ModeMarkdown, "Signups are open!")
			},
		},
		{
			name:   "Should claim the day given to signup",
			update: commandUpdate("/signup tue"),
			buildMocks: func(m listenerMocks) {
				m.signupService.EXPECT().
					Handle(gomock.Any(), action(entity.Intent{Kind: entity.IntentClaim, Day: "tue"})).
					Return(&entity.ActionResult{
						Outcome: entity.Outcome{Kind: entity.OutcomeAccepted, Day: "Tuesday"},
						Message: "You signed up for Tuesday!",
					}, nil).Times(1)
				expectReply(m, "", "You signed up for Tuesday!")
			},
		},
		{
			name:   "Should list the valid days for an unknown one",
			update: commandUpdate("/signup sunday"),
			buildMocks: func(m listenerMocks) {
				m.signupService.EXPECT().
					Handle(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: %q", domain.ErrInvalidDay, "sunday")).Times(1)
				m.signupService.EXPECT().Days().Return(testDays).Times(1)
				expectReply(m, "", "Monday, Tuesday, Wednesday, Unavailable")
			},
		},
		{
			name:   "Should echo an unknown day with markup characters as plain text",
			update: commandUpdate("/signup foo_bar"),
			buildMocks: func(m listenerMocks) {
				m.signupService.EXPECT().
					Handle(gomock.Any(), action(entity.Intent{Kind: entity.IntentClaim, Day: "foo_bar"})).
					Return(nil, fmt.Errorf("%w: %q", domain.ErrInvalidDay, "foo_bar")).Times(1)
				m.signupService.EXPECT().Days().Return(testDays).Times(1)
				expectReply(m, "", `"foo_bar" isn't a signup day`)
			},
		},
		{
			name:   "Should escape member names in the status",
			update: commandUpdate("/status"),
			buildMocks: func(m listenerMocks) {
				m.signupService.EXPECT().
					Handle(gomock.Any(), action(entity.Intent{Kind: entity.IntentSnapshot})).
					Return(&entity.ActionResult{
						Outcome: entity.Outcome{Kind: entity.OutcomeShown},
						Payload: entity.Payload{
							Title:   "📋 *Signups are open!*",
							Entries: []entity.PayloadEntry{{Label: "*Monday* (1 slot left)", Names: []string{"Mary_Ann"}, ListNames: true}},
						},
					}, nil).Times(1)
				expectReply(m, tgbotapi.ModeMarkdown, `*Monday* (1 slot left): Mary\_Ann`)
			},
		},
		{
			name:   "Should cancel a signup",
			update: commandUpdate("/cancel"),
			buildMocks: func(m listenerMocks) {
				m.signupService.EXPECT().
					Handle(gomock.Any(), action(entity.Intent{Kind: entity.IntentCancel})).
					Return(&entity.ActionResult{
						Outcome: entity.Outcome{Kind: entity.OutcomeRemoved, From: "Monday"},
						Message: "You cancelled your signup for Monday.",
					}, nil).Times(1)
				expectReply(m, "", "You cancelled your signup for Monday.")
			},
		},
		{
			name:   "Should show the status",
			update: commandUpdate("/status"),
			buildMocks: func(m listenerMocks) {
				m.signupService.EXPECT().
					Handle(gomock.Any(), action(entity.Intent{Kind: entity.IntentSnapshot})).
					Return(&entity.ActionResult{
						Outcome: entity.Outcome{Kind: entity.OutcomeShown},
						Payload: entity.Payload{
							Title:   "📋 *Signups are open!*",
							Entries: []entity.PayloadEntry{{Label: "*Monday* (1 slot left)", Names: []string{"Bob"}, ListNames: true}},
						},
					}, nil).Times(1)
				expectReply(m, tgbotapi.ModeMarkdown, "*Monday* (1 slot left): Bob")
			},
		},
		{
			name:   "Should ignore plain messages",
			update: tgbotapi.Update{Message: &tgbotapi.Message{Text: "hello", Chat: &tgbotapi.Chat{ID: groupChatID}}},
		},
		{
			name:   "Should claim from a button and refresh the prompt",
			update: callbackUpdate("signup_Monday"),
			buildMocks: func(m listenerMocks) {
				m.signupService.EXPECT().
					Handle(gomock.Any(), action(entity.Intent{Kind: entity.IntentClaim, Day: "Monday"})).
					Return(&entity.ActionResult{
						Outcome: entity.Outcome{Kind: entity.OutcomeAccepted, Day: "Monday"},
						Message: "You signed up for Monday!",
						Payload: prompt,
					}, nil).Times(1)
				expectAnswer(m, "You signed up for Monday!")
				expectEdit(m, "Signups are open!")
			},
		},
		{
			name:   "Should only answer when the day is full",
			update: callbackUpdate("signup_Monday"),
			buildMocks: func(m listenerMocks) {
				m.signupService.EXPECT().
					Handle(gomock.Any(), gomock.Any()).
					Return(&entity.ActionResult{
						Outcome: entity.Outcome{Kind: entity.OutcomeRejected, Day: "Monday"},
						Message: "Monday is full! Pick another day.",
						Payload: prompt,
					}, nil).Times(1)
				expectAnswer(m, "Monday is full! Pick another day.")
			},
		},
		{
			name:   "Should show the day picker",
			update: callbackUpdate("change_day"),
			buildMocks: func(m listenerMocks) {
				expectAnswer(m, "")
				m.signupService.EXPECT().Days().Return(testDays).Times(1)
				expectEdit(m, pickerPrompt)
			},
		},
		{
			name:   "Should restore the prompt after a rejected change",
			update: callbackUpdate("change_Monday"),
			buildMocks: func(m listenerMocks) {
				m.signupService.EXPECT().
					Handle(gomock.Any(), action(entity.Intent{Kind: entity.IntentClaim, Day: "Monday"})).
					Return(&entity.ActionResult{
						Outcome: entity.Outcome{Kind: entity.OutcomeAlreadyOnDay, Day: "Monday"},
						Message: "You're already signed up for Monday.",
					}, nil).Times(1)
				expectAnswer(m, "You're already signed up for Monday.")
				m.signupService.EXPECT().OpenPrompt().Return(prompt).Times(1)
				expectEdit(m, "Signups are open!")
			},
		},
		{
			name:   "Should cancel from a button",
			update: callbackUpdate("cancel_signup"),
			buildMocks: func(m listenerMocks) {
				m.signupService.EXPECT().
					Handle(gomock.Any(), action(entity.Intent{Kind: entity.IntentCancel})).
					Return(&entity.ActionResult{
						Outcome: entity.Outcome{Kind: entity.OutcomeNotFound},
						Message: "You don't have a signup to cancel.",
						Payload: prompt,
					}, nil).Times(1)
				expectAnswer(m, "You don't have a signup to cancel.")
			},
		},
		{
			name:   "Should answer unknown callbacks silently",
			update: callbackUpdate("vote_yes"),
			buildMocks: func(m listenerMocks) {
				expectAnswer(m, "")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := listenerMocks{
				t:             t,
				bot:           mocks.NewMockTelegramBot(ctrl),
				signupService: mocks.NewMockSignupService(ctrl),
			}
			if tt.buildMocks != nil {
				tt.buildMocks(m)
			}

			updates := make(chan tgbotapi.Update, 1)
			updates <- tt.update
			close(updates)
			m.bot.EXPECT().GetUpdatesChan(gomock.Any()).Return(tgbotapi.UpdatesChannel(updates)).Times(1)

			NewListener(m.bot, m.signupService).Run(context.Background())
		})
	}
}

func TestListener_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bot := mocks.NewMockTelegramBot(ctrl)
	bot.EXPECT().GetUpdatesChan(gomock.Any()).Return(tgbotapi.UpdatesChannel(make(chan tgbotapi.Update))).Times(1)
	bot.EXPECT().StopReceivingUpdates().Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	NewListener(bot, mocks.NewMockSignupService(ctrl)).Run(ctx)
}
