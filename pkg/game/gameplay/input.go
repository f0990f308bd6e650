// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "diadia/pkg/engine/input"
	"diadia/pkg/game/renderer"
	"diadia/pkg/game/state"
)

// dynamicGet looks up translation keys chosen at runtime.
var dynamicGet = gotext.Get

// ProcessIntent handles a high-level input intent.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if g.Finished {
		return
	}

	switch intent.Action {
	case engineinput.ActionNone:
		if intent.Arg != "" {
			logMessage(g, "UNKNOWN_COMMAND", intent.Arg)
		}
		return

	case engineinput.ActionGo:
		Move(g, intent.Arg)
		return

	case engineinput.ActionTake:
		Take(g, intent.Arg)
		return

	case engineinput.ActionDrop:
		Drop(g, intent.Arg)
		return

	case engineinput.ActionLook:
		Look(g)
		return

	case engineinput.ActionHelp:
		logMessage(g, "HELP", strings.Join(Verbs(), "; "))
		return

	case engineinput.ActionQuit:
		g.Finished = true
		logMessage(g, "GOODBYE")
		return
	}

	logMessage(g, "UNKNOWN_COMMAND", intent.Arg)
}

// Verbs returns one help entry per command, such as "Vai (go, vai)",
// built from the input bindings.
func Verbs() []string {
	byAction := engineinput.GetBindingsByAction()

	var verbs []string
	for act := engineinput.ActionGo; act <= engineinput.ActionQuit; act++ {
		codes, ok := byAction[act]
		if !ok {
			continue
		}
		name := dynamicGet(engineinput.ActionName(act))
		verbs = append(verbs, fmt.Sprintf("%s (%s)", name, strings.Join(codes, ", ")))
	}
	return verbs
}

// Look reports the player's CFU and the contents of the bag
func Look(g *state.Game) {
	logMessage(g, "LOOK", g.CFU, renderer.StyleText(g.Bag.String(), renderer.StyleItem))
}

// logMessage translates key, applies the renderer markup to the translation
// and then fills in a. Arguments are never read as markup, so names typed
// by the player are shown as they are.
func logMessage(g *state.Game, key string, a ...any) {
	msg := renderer.ApplyMarkup("%s", dynamicGet(key))
	if len(a) > 0 {
		msg = fmt.Sprintf(msg, a...)
	}
	g.AddMessage(msg)
}
