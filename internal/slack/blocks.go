package slack

import (
	"fmt"
	"strings"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
	"github.com/diegoclair/weekly-signup-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackutilsx"
)

const (
	// ActionsBlockID identifies the block holding the signup buttons.
	ActionsBlockID = "signup_actions"

	ActionClaim  = "signup_claim"
	ActionCancel = "signup_cancel"
)

// Text renders a payload as mrkdwn. Member names are escaped so a name like
// <!channel> can't ping anyone.
func Text(payload entity.Payload) string {
	return payload.Render(slackutilsx.EscapeMessage)
}

// Blocks renders a payload as a markdown section, followed by one button per
// day and a cancel button when the payload is interactive.
func Blocks(payload entity.Payload) []slack.Block {
	text := slack.NewTextBlockObject(slack.MarkdownType, Text(payload), false, false)
	blocks := []slack.Block{slack.NewSectionBlock(text, nil, nil)}

	if !payload.Interactive() {
		return blocks
	}

	elements := make([]slack.BlockElement, 0, len(payload.Choices)+1)
	for _, day := range payload.Choices {
		label := slack.NewTextBlockObject(slack.PlainTextType, string(day), false, false)
		button := slack.NewButtonBlockElement(claimActionID(day), string(day), label)
		if day != domain.Unavailable {
			button = button.WithStyle(slack.StylePrimary)
		}
		elements = append(elements, button)
	}

	cancelLabel := slack.NewTextBlockObject(slack.PlainTextType, "Cancel signup", false, false)
	elements = append(elements, slack.NewButtonBlockElement(ActionCancel, "cancel", cancelLabel).WithStyle(slack.StyleDanger))

	return append(blocks, slack.NewActionBlock(ActionsBlockID, elements...))
}

// MessageOptions renders a payload with a plain text fallback for notifications.
func MessageOptions(payload entity.Payload) []slack.MsgOption {
	return []slack.MsgOption{
		slack.MsgOptionText(Text(payload), false),
		slack.MsgOptionBlocks(Blocks(payload)...),
	}
}

// ParseAction decodes a button press into an intent.
func ParseAction(action *slack.BlockAction) (entity.Intent, error) {
	if action == nil {
		return entity.Intent{}, fmt.Errorf("empty action")
	}

	switch {
	case action.ActionID == ActionCancel:
		return entity.Intent{Kind: entity.IntentCancel}, nil
	case strings.HasPrefix(action.ActionID, ActionClaim):
		day := action.Value
		if day == "" {
			day = strings.TrimPrefix(strings.TrimPrefix(action.ActionID, ActionClaim), ":")
		}
		return entity.Intent{Kind: entity.IntentClaim, Day: day}, nil
	}

	return entity.Intent{}, fmt.Errorf("unknown action %q", action.ActionID)
}

// Action ids must be unique inside a block.
func claimActionID(day domain.Day) string {
	return fmt.Sprintf("%s:%s", ActionClaim, strings.ToLower(string(day)))
}
