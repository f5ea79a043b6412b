// Package command parses the owner's dot-prefixed administrative commands
// into a closed set of command kinds. Ordinary user text never matches.
package command

import (
	"errors"
	"strconv"
	"strings"
)

// Kind identifies an owner command
type Kind int

const (
	Menu Kind = iota
	MenuSection
	Mute
	Unmute
	UnmuteAll
	SetRateBelow50
	SetRateAtOrAbove50
	SetCoverCost
	ToggleSleep
	ToggleAutoReply
	ShowTotal
	ShowUserPriceInfo
	ShowStats
	SetWelcome
)

// ErrInvalidValue marks a recognized command whose numeric argument is
// missing or malformed. The command itself is still returned so the handler
// can reply with the matching guidance message instead of crashing.
var ErrInvalidValue = errors.New("invalid command value")

// Command is one parsed owner command
type Command struct {
	Kind    Kind
	Section string // menu section number for MenuSection
	Target  int64  // explicit user id for Mute/Unmute/ShowUserPriceInfo, 0 if absent
	Value   int    // numeric argument for the price commands
	Text    string // free-text argument for SetWelcome
	Err     error  // ErrInvalidValue when the argument failed validation
}

// Parse recognizes an owner command in text. The second return value is
// false when the text is not a command at all.
func Parse(text string) (Command, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, ".") {
		return Command{}, false
	}

	fields := strings.Fields(text)
	token := fields[0]
	args := fields[1:]

	switch token {
	case ".م":
		return Command{Kind: Menu}, true
	case ".م1", ".م2", ".م3", ".م4", ".م5", ".م6":
		return Command{Kind: MenuSection, Section: strings.TrimPrefix(token, ".م")}, true
	case ".الغاء":
		return targetCommand(Mute, args), true
	case ".سماح":
		return targetCommand(Unmute, args), true
	case ".سماح_للكل":
		return Command{Kind: UnmuteAll}, true
	case ".ت1":
		return priceCommand(SetRateBelow50, args), true
	case ".ت2":
		return priceCommand(SetRateAtOrAbove50, args), true
	case ".ت3":
		return priceCommand(SetCoverCost, args), true
	case ".نوم":
		return Command{Kind: ToggleSleep}, true
	case ".رد":
		return Command{Kind: ToggleAutoReply}, true
	case ".المجموع":
		return Command{Kind: ShowTotal}, true
	case ".معلومات":
		return targetCommand(ShowUserPriceInfo, args), true
	case ".احصائيات":
		return Command{Kind: ShowStats}, true
	case ".ترحيب":
		cmd := Command{Kind: SetWelcome}
		rest := strings.TrimSpace(strings.TrimPrefix(text, token))
		if rest == "" {
			cmd.Err = ErrInvalidValue
			return cmd, true
		}
		cmd.Text = rest
		return cmd, true
	}

	return Command{}, false
}

// targetCommand parses an optional explicit user id. A missing id is not an
// error here: the handler falls back to reply-to resolution.
func targetCommand(kind Kind, args []string) Command {
	cmd := Command{Kind: kind}
	if len(args) == 0 {
		return cmd
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		cmd.Err = ErrInvalidValue
		return cmd
	}
	cmd.Target = id
	return cmd
}

func priceCommand(kind Kind, args []string) Command {
	cmd := Command{Kind: kind}
	if len(args) != 1 {
		cmd.Err = ErrInvalidValue
		return cmd
	}
	v, err := strconv.Atoi(args[0])
	if err != nil || v < 0 {
		cmd.Err = ErrInvalidValue
		return cmd
	}
	cmd.Value = v
	return cmd
}
