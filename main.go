package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"diadia/pkg/game/config"
	"diadia/pkg/game/gameplay"
	"diadia/pkg/game/labyrinth"
	"diadia/pkg/game/renderer"
	"diadia/pkg/game/renderer/tui"
)

// initGettext loads the message catalogue for the configured locale.
// Missing catalogues are not fatal: messages then show their keys.
func initGettext(cfg config.Config) {
	lang := cfg.CatalogLanguage()
	catalog := filepath.Join(cfg.LocalesDir, lang, "LC_MESSAGES", "default.po")
	if _, err := os.Stat(catalog); err != nil {
		log.Printf("No translations for %s: %v", lang, err)
	}
	gotext.Configure(cfg.LocalesDir, lang, "default")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Cannot load configuration: %v", err)
	}

	flag.StringVar(&cfg.Locale, "locale", cfg.Locale, "language for game messages (e.g. it-IT, en-GB)")
	flag.IntVar(&cfg.CFU, "cfu", cfg.CFU, "starting CFU")
	flag.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	initGettext(cfg)

	if cfg.NoColor {
		color.Enable = false
	}
	renderer.SetRenderer(tui.New())
	renderer.Init()

	g, err := gameplay.BuildGame(labyrinth.DefaultGenerator, cfg.CFU, cfg.BagMaxWeight)
	if err != nil {
		log.Fatalf("Cannot build game: %v", err)
	}

	for !g.Finished {
		renderer.Clear()
		renderer.RenderFrame(g)
		gameplay.ProcessIntent(g, renderer.GetInput())
	}

	renderer.ShowMessage(g.Messages[len(g.Messages)-1])
}
