package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/weekly-signup-bot/internal/handlers"
	"github.com/diegoclair/weekly-signup-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	SignupServiceMock *mocks.MockSignupService
	SlackClientMock   *mocks.MockSlackClient
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		SignupServiceMock: mocks.NewMockSignupService(ctrl),
		SlackClientMock:   mocks.NewMockSlackClient(ctrl),
	}

	handler = handlers.NewSlackHandler(m.SlackClientMock, m.SignupServiceMock, SigningSecret)

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, userID, signingSecret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"signups"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	return signedRequest(t, "/slack/commands", form.Encode(), signingSecret)
}

// CreateInteractionRequest creates a properly signed Slack interactivity request
func CreateInteractionRequest(t *testing.T, payload any, signingSecret string) *http.Request {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	form := url.Values{"payload": {string(raw)}}

	return signedRequest(t, "/slack/interactions", form.Encode(), signingSecret)
}

// BlockActionPayload builds the JSON Slack sends when a signup button is pressed
func BlockActionPayload(userID, userName, channelID, messageTs, blockID, actionID, value string) map[string]any {
	return map[string]any{
		"type":    "block_actions",
		"user":    map[string]any{"id": userID, "name": userName},
		"channel": map[string]any{"id": channelID},
		"container": map[string]any{
			"type":       "message",
			"channel_id": channelID,
			"message_ts": messageTs,
		},
		"actions": []map[string]any{
			{
				"type":      "button",
				"block_id":  blockID,
				"action_id": actionID,
				"value":     value,
			},
		},
	}
}

func signedRequest(t *testing.T, path, body, signingSecret string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)

	// Set content type
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
