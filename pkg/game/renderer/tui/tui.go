package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"diadia/pkg/engine/input"
	"diadia/pkg/engine/terminal"
	"diadia/pkg/game/renderer"
	"diadia/pkg/game/state"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorRoom        color.Style
	colorItem        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style
	colorSuccess     color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a new TUI renderer writing to w
func NewWithWriter(w io.Writer) *TUIRenderer {
	return &TUIRenderer{out: w}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorRoom = color.Style{color.FgBlue, color.OpBold}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorSuccess = color.Style{color.FgGreen}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:%]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if !input.IsTerminal() {
		return
	}
	c := exec.Command("clear")
	c.Stdout = t.out
	c.Run()
}

// GetInput reads the next command from the terminal.
func (t *TUIRenderer) GetInput() input.Intent {
	return input.MapToIntent(input.ReadRaw())
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleSuccess:
		return t.colorSuccess.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = t.colorItem.Sprint(operand)
		case "ROOM":
			val = t.colorRoom.Sprint(operand)
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		case "DENIED":
			val = t.colorDenied.Sprint(operand)
		case "OK":
			val = t.colorSuccess.Sprint(operand)
		default:
			return fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	fmt.Fprintf(t.out, "%s %s\n\n", t.FormatText("GT{IN_ROOM}"), t.StyleText(g.CurrentRoom.Name(), renderer.StyleRoom))

	// The room describes itself; its text is shown as is.
	fmt.Fprintln(t.out, g.CurrentRoom.Description())

	t.printStatusBar(g)

	t.printPossibleActions()

	t.printMessagesPane(g)

	fmt.Fprint(t.out, "\n> ")
}

// printBullet prints a bulleted item
func (t *TUIRenderer) printBullet(txt string) {
	fmt.Fprint(t.out, "- "+t.FormatText("%s", txt)+"\n")
}

// printPossibleActions prints the available commands
func (t *TUIRenderer) printPossibleActions() {
	fmt.Fprintln(t.out)
	t.printBullet("ACTION{vai} <direzione>  ACTION{prendi} <attrezzo>  ACTION{posa} <attrezzo>")
	t.printBullet("ACTION{guarda}  ACTION{aiuto}  ACTION{fine}")
}

// printStatusBar renders the CFU and bag status, wrapped to the terminal width
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	fmt.Fprintln(t.out)

	status := fmt.Sprintf("%s %d  %s %s", dynamicGet("CFU"), g.CFU, dynamicGet("BAG"), g.Bag.String())
	for _, line := range terminal.Wrap(status, terminal.GetWidth()) {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint(line))
	}
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := terminal.GetWidth()

	label := " " + dynamicGet("MESSAGES") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", rightLen)

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(leftDashes+label+rightDashes))

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+dynamicGet("NO_MESSAGES")))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
