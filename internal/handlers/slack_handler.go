package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/contract"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/weekly-signup-bot/internal/slack"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackutilsx"
)

// interactionTimeout bounds the Slack calls made after an interaction was acknowledged.
const interactionTimeout = 10 * time.Second

type SlackHandler struct {
	slackClient   contract.SlackClient
	signupService contract.SignupService
	signingSecret string

	inflight sync.WaitGroup
}

func NewSlackHandler(slackClient contract.SlackClient, signupService contract.SignupService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		slackClient:   slackClient,
		signupService: signupService,
		signingSecret: signingSecret,
	}
}

// verify checks the Slack signature and returns the raw body.
func (h *SlackHandler) verify(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.verify(w, r); !ok {
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdClaim:
		return h.handleAction(ctx, slashCmd, entity.Intent{Kind: entity.IntentClaim, Day: cmd.Day()})
	case slackcmd.CmdCancel:
		return h.handleAction(ctx, slashCmd, entity.Intent{Kind: entity.IntentCancel})
	case slackcmd.CmdShow:
		return h.handleAction(ctx, slashCmd, entity.Intent{Kind: entity.IntentSnapshot})
	case slackcmd.CmdPost:
		return h.handlePost(ctx, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleAction(ctx context.Context, slashCmd *slack.SlashCommand, intent entity.Intent) *slack.Msg {
	result, err := h.signupService.Handle(ctx, entity.UserAction{
		UserID:      slashCmd.UserID,
		DisplayName: h.displayName(slashCmd.UserID, slashCmd.UserName),
		Intent:      intent,
	})
	if err != nil {
		return h.actionError(err, intent)
	}

	text := result.Message
	if intent.Kind == entity.IntentSnapshot {
		text = slackcmd.Text(result.Payload)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) handlePost(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	payload := h.signupService.OpenPrompt()

	if _, _, err := h.slackClient.PostMessageContext(ctx, slashCmd.ChannelID, slackcmd.MessageOptions(payload)...); err != nil {
		log.Printf("ERROR posting signup prompt to %s: %v", slashCmd.ChannelID, err)
		return h.createErrorResponse("Couldn't post the signup prompt. Is the bot invited to this channel?")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "✅ Signup prompt posted!",
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(h.signupService.Days()),
	}
}

// HandleInteraction acknowledges button presses on the signup prompt at once
// and applies them in the background. Slack expects the acknowledgement within
// three seconds.
func (h *SlackHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verify(w, r)
	if !ok {
		return
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(form.Get("payload")), &callback); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)

	if callback.Type != slack.InteractionTypeBlockActions {
		return
	}

	var intents []entity.Intent
	for _, action := range callback.ActionCallback.BlockActions {
		if action.BlockID != slackcmd.ActionsBlockID {
			continue
		}

		intent, err := slackcmd.ParseAction(action)
		if err != nil {
			log.Printf("Ignoring slack action: %v", err)
			continue
		}
		intents = append(intents, intent)
	}
	if len(intents) == 0 {
		return
	}

	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), interactionTimeout)
		defer cancel()

		for _, intent := range intents {
			h.handleButton(ctx, &callback, intent)
		}
	}()
}

// Wait blocks until every acknowledged interaction has been applied.
func (h *SlackHandler) Wait() {
	h.inflight.Wait()
}

func (h *SlackHandler) handleButton(ctx context.Context, callback *slack.InteractionCallback, intent entity.Intent) {
	userID := callback.User.ID
	channelID := callback.Container.ChannelID
	if channelID == "" {
		channelID = callback.Channel.ID
	}

	result, err := h.signupService.Handle(ctx, entity.UserAction{
		UserID:      userID,
		DisplayName: h.displayName(userID, callback.User.Name),
		Intent:      intent,
	})

	var message string
	if err != nil {
		message = h.actionError(err, intent).Text
	} else {
		message = result.Message
	}

	if _, err := h.slackClient.PostEphemeralContext(ctx, channelID, userID, slack.MsgOptionText(message, false)); err != nil {
		log.Printf("ERROR answering %s in %s: %v", userID, channelID, err)
	}

	if result == nil || !result.Outcome.Mutated() || callback.Container.MessageTs == "" {
		return
	}

	if _, _, _, err := h.slackClient.UpdateMessageContext(ctx, channelID, callback.Container.MessageTs, slackcmd.MessageOptions(result.Payload)...); err != nil {
		log.Printf("ERROR refreshing signup prompt %s: %v", callback.Container.MessageTs, err)
	}
}

// displayName resolves the name shown in the roster, falling back to the handle.
func (h *SlackHandler) displayName(userID, fallback string) string {
	userInfo, err := h.slackClient.GetUserInfo(userID)
	if err != nil {
		log.Printf("ERROR getting user info from Slack API for %s: %v", userID, err)
		return fallback
	}

	displayName := userInfo.Profile.RealName
	if displayName == "" {
		displayName = userInfo.Profile.DisplayName
	}
	if displayName == "" {
		displayName = userInfo.Name
	}
	if displayName == "" {
		displayName = fallback
	}
	return displayName
}

func (h *SlackHandler) actionError(err error, intent entity.Intent) *slack.Msg {
	if errors.Is(err, domain.ErrInvalidDay) {
		day := slackutilsx.EscapeMessage(intent.Day)
		return h.createErrorResponse(fmt.Sprintf("%q isn't a signup day. Pick one of: %s", day, joinDays(h.signupService.Days())))
	}

	log.Printf("ERROR handling %s: %v", intent.Kind, err)
	return h.createErrorResponse("Something went wrong, please try again")
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func joinDays(days []domain.Day) string {
	names := make([]string, 0, len(days))
	for _, day := range days {
		names = append(names, string(day))
	}
	return strings.Join(names, ", ")
}
