package slack

import "strings"

// Command is a parsed slash-command verb.
type Command int

const (
	CmdHelp Command = iota
	CmdInit
	CmdAdd
	CmdRemove
	CmdStatus
	CmdCommit
	CmdReset
	CmdLog
	CmdPush
)

// ParseCommand splits the slash-command text into a command and its
// argument remainder. An empty or unrecognized first word falls back to
// CmdHelp.
func ParseCommand(text string) (Command, string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return CmdHelp, ""
	}
	word := text
	rest := ""
	if i := strings.IndexByte(text, ' '); i >= 0 {
		word, rest = text[:i], strings.TrimSpace(text[i+1:])
	}
	switch strings.ToLower(word) {
	case "init":
		return CmdInit, rest
	case "add":
		return CmdAdd, rest
	case "rm":
		return CmdRemove, rest
	case "status":
		return CmdStatus, rest
	case "commit":
		return CmdCommit, rest
	case "reset":
		return CmdReset, rest
	case "log":
		return CmdLog, rest
	case "push":
		return CmdPush, rest
	default:
		return CmdHelp, ""
	}
}
