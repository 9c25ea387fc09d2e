package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdRemind   CommandType = "remind"
	CmdTimezone CommandType = "timezone"
	CmdAdd      CommandType = "add"
	CmdList     CommandType = "list"
	CmdSummary  CommandType = "summary"
	CmdSearch   CommandType = "search"
	CmdEdit     CommandType = "edit"
	CmdDelete   CommandType = "delete"
	CmdSetJob   CommandType = "setjob"
	CmdEstimate CommandType = "estimate"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch parts[0] {
	case "remind", "rm":
		cmd.Type = CmdRemind
	case "timezone", "tz":
		cmd.Type = CmdTimezone
	case "add":
		cmd.Type = CmdAdd
	case "list", "ls":
		cmd.Type = CmdList
	case "summary":
		cmd.Type = CmdSummary
	case "search":
		cmd.Type = CmdSearch
	case "edit":
		cmd.Type = CmdEdit
	case "delete", "del":
		cmd.Type = CmdDelete
	case "setjob":
		cmd.Type = CmdSetJob
	case "estimate":
		cmd.Type = CmdEstimate
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Reminders:*
• ` + "`/assistant timezone America/New_York`" + ` - Set your timezone (required before creating reminders)
• ` + "`/assistant remind @user [@user2 @user3] YYYY-MM-DD HH:MM message`" + ` - DM up to 3 users at the given time

*Budget:*
• ` + "`/assistant add income|expense amount category [description]`" + ` - Record a transaction
• ` + "`/assistant list`" + ` - Show the 10 most recent transactions
• ` + "`/assistant summary`" + ` - Show totals and balance
• ` + "`/assistant search keyword`" + ` - Find transactions by text or amount
• ` + "`/assistant edit id field value`" + ` - Change amount, category, description or type
• ` + "`/assistant delete id`" + ` - Remove a transaction

*Paycheck:*
• ` + "`/assistant setjob name hourly_wage`" + ` - Save your job and wage
• ` + "`/assistant estimate [@user] hours`" + ` - Estimate take-home pay for the hours worked`
}
