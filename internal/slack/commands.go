package slack

import (
	"fmt"
	"strings"

	"github.com/diegoclair/weekly-signup-bot/internal/domain"
)

type CommandType string

const (
	CmdClaim  CommandType = "claim"
	CmdCancel CommandType = "cancel"
	CmdShow   CommandType = "show"
	CmdPost   CommandType = "post"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// Day returns the day text of a claim command.
func (c *Command) Day() string {
	return strings.Join(c.Args, " ")
}

// ParseCommand parses the text of the slash command. Anything that isn't a
// known keyword is taken as the day to claim.
func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "cancel", "remove", "rm":
		cmd.Type = CmdCancel
	case "show", "status", "list", "ls":
		cmd.Type = CmdShow
	case "post", "send":
		cmd.Type = CmdPost
	case "help":
		cmd.Type = CmdHelp
	case "change", "claim", "join":
		if len(parts) < 2 {
			return nil, fmt.Errorf("please tell me which day: `/signup %s monday`", strings.ToLower(parts[0]))
		}
		cmd.Type = CmdClaim
		cmd.Args = parts[1:]
	default:
		cmd.Type = CmdClaim
		cmd.Args = parts
	}

	return cmd, nil
}

func GetHelpText(days []domain.Day) string {
	names := make([]string, 0, len(days))
	for _, day := range days {
		names = append(names, string(day))
	}

	return `*Available commands:*

*Signups:*
• ` + "`/signup <day>`" + ` - Sign up for a day (` + strings.Join(names, ", ") + `)
• ` + "`/signup change <day>`" + ` - Move your signup to another day
• ` + "`/signup unavailable`" + ` - Let everyone know you can't make it this week
• ` + "`/signup cancel`" + ` - Remove your signup

*Roster:*
• ` + "`/signup show`" + ` - Show this week's signups
• ` + "`/signup post`" + ` - Post the signup buttons in this channel`
}
