// Package main is an interactive viewer for one observation file: move a
// cursor over the rendered screen and read what each cell is called.
//
//	explore -catalog content/catalog/sample.yaml -obs obs.json
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/cory-johannsen/glyphspeak/cmd/explore/ui"
	"github.com/cory-johannsen/glyphspeak/internal/action"
	"github.com/cory-johannsen/glyphspeak/internal/config"
	"github.com/cory-johannsen/glyphspeak/internal/describe"
	"github.com/cory-johannsen/glyphspeak/internal/glyph"
	"github.com/cory-johannsen/glyphspeak/internal/observability"
	"github.com/cory-johannsen/glyphspeak/internal/observation"
	"github.com/cory-johannsen/glyphspeak/internal/translate"
)

func main() {
	catalogPath := flag.String("catalog", "content/catalog/sample.yaml", "path to catalog YAML file")
	obsPath := flag.String("obs", "", "path to an observation JSON file")
	flag.Parse()

	if *obsPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "explore: needs an interactive terminal; use describe for scripted output")
		os.Exit(2)
	}

	// The terminal belongs to the UI; only errors are logged.
	logger, err := observability.NewLogger(config.LoggingConfig{Level: "error", Format: "console"})
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	catalog, err := glyph.LoadCatalogFromFile(*catalogPath)
	if err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}
	describer, err := describe.NewDescriber(catalog, logger)
	if err != nil {
		logger.Fatal("building describer", zap.Error(err))
	}

	data, err := os.ReadFile(*obsPath)
	if err != nil {
		log.Fatalf("reading observation: %v", err)
	}
	if !gjson.ValidBytes(data) {
		log.Fatalf("observation %s is not valid JSON", *obsPath)
	}
	obs, err := observation.Decode(gjson.ParseBytes(data))
	if err != nil {
		log.Fatalf("decoding observation: %v", err)
	}

	model := ui.NewModel(translate.New(describer, action.DefaultRegistry()), obs)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "explore: %v\n", err)
		os.Exit(1)
	}
}
