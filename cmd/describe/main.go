// Package main prints the text views of one observation file.
//
//	describe -catalog content/catalog/sample.yaml -obs obs.json [-op all]
//	describe -action "far east"
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tidwall/sjson"
	"go.uber.org/zap"

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
	op := flag.String("op", observation.OpAll, "glyphs, stats, inventory, cursor, message or all")
	actionText := flag.String("action", "", "resolve a text action instead of describing an observation")
	verbose := flag.Bool("v", false, "log catalog statistics")
	flag.Parse()

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger, err := observability.NewLogger(config.LoggingConfig{Level: level, Format: "console"})
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if *actionText != "" {
		a, err := action.DefaultRegistry().Resolve(*actionText)
		if err != nil {
			log.Fatal(err)
		}
		key, err := a.Key()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s\t%s\t%d\n", a.Name, a.Notation, key)
		return
	}

	if *obsPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	catalog, err := glyph.LoadCatalogFromFile(*catalogPath)
	if err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}
	describer, err := describe.NewDescriber(catalog, logger)
	if err != nil {
		logger.Fatal("building describer", zap.Error(err))
	}
	tr := translate.New(describer, action.DefaultRegistry())

	data, err := os.ReadFile(*obsPath)
	if err != nil {
		log.Fatalf("reading observation: %v", err)
	}
	data, err = sjson.SetBytes(data, "op", *op)
	if err != nil {
		log.Fatalf("setting op: %v", err)
	}
	req, err := observation.Parse(data)
	if err != nil {
		log.Fatalf("parsing observation: %v", err)
	}

	if req.Op != observation.OpAll {
		text, err := tr.Text(req)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(text)
		return
	}

	texts := tr.All(&req.Observation)
	for _, section := range []struct{ title, body string }{
		{"glyphs", texts.Glyphs},
		{"cursor", texts.Cursor},
		{"message", texts.Message},
		{"inventory", texts.Inventory},
		{"stats", texts.Blstats},
	} {
		fmt.Printf("== %s ==\n%s\n\n", section.title, section.body)
	}
}
