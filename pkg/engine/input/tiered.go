package input

import (
	"sort"
	"strings"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceTerminal
	DeviceLine
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	ActionGo
	ActionTake
	ActionDrop
	ActionLook
	ActionHelp
	ActionQuit
)

// Intent is the high‑level description of what the player wants to do.
// Arg is the command's operand, such as a direction or an item name.
type Intent struct {
	Action Action
	Arg    string
}

// RawInput is the event read from an input device: either a whole typed
// line or a key code such as "arrow_up".
type RawInput struct {
	Device Device
	Code   string
}

// bindings maps command words to actions.
// Multiple words may point to the same Action.
var bindings = map[string]Action{
	"vai": ActionGo,
	"go":  ActionGo,

	"prendi": ActionTake,
	"take":   ActionTake,

	"posa": ActionDrop,
	"drop": ActionDrop,

	"guarda": ActionLook,
	"look":   ActionLook,

	"aiuto": ActionHelp,
	"help":  ActionHelp,
	"?":     ActionHelp,

	"fine": ActionQuit,
	"quit": ActionQuit,
	"q":    ActionQuit,
}

// arrows maps arrow key codes to the direction they move in.
var arrows = map[string]string{
	"arrow_up":    "nord",
	"arrow_down":  "sud",
	"arrow_right": "est",
	"arrow_left":  "ovest",
}

// ParseLine turns a typed command such as "prendi osso" into an Intent.
// The first word selects the action and the rest of the line is its
// argument. Unknown words give ActionNone with the whole line as Arg.
func ParseLine(line string) Intent {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Intent{Action: ActionNone}
	}
	act, ok := bindings[strings.ToLower(fields[0])]
	if !ok {
		return Intent{Action: ActionNone, Arg: strings.Join(fields, " ")}
	}
	return Intent{Action: act, Arg: strings.Join(fields[1:], " ")}
}

// MapToIntent applies the bindings to a raw input and returns an Intent.
func MapToIntent(raw RawInput) Intent {
	if dir, ok := arrows[raw.Code]; ok {
		return Intent{Action: ActionGo, Arg: dir}
	}
	return ParseLine(raw.Code)
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionGo:
		return "Go"
	case ActionTake:
		return "Take"
	case ActionDrop:
		return "Drop"
	case ActionLook:
		return "Look"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
