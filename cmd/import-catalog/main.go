package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cory-johannsen/glyphspeak/internal/importer"
	"github.com/cory-johannsen/glyphspeak/internal/importer/nethack"
)

func main() {
	format := flag.String("format", "nethack", "source format: nethack")
	sourceDir := flag.String("source", "", "path to the game source tree")
	output := flag.String("output", "content/catalog/nethack.yaml", "catalog YAML file to write")
	defines := flag.String("defines", strings.Join(nethack.DefaultDefines, ","), "comma-separated compile options to treat as defined")
	flag.Parse()

	if *sourceDir == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "usage: import-catalog -source <dir> [-output <file>] [-format nethack] [-defines MAIL,...]")
		os.Exit(1)
	}

	var src importer.Source
	switch *format {
	case "nethack":
		src = nethack.NewSource(splitDefines(*defines))
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q (supported: nethack)\n", *format)
		os.Exit(1)
	}

	start := time.Now()
	if _, err := importer.New(src).Run(*sourceDir, *output); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("import complete in %s\n", time.Since(start).Round(time.Millisecond))
}

func splitDefines(s string) []string {
	var out []string
	for _, d := range strings.Split(s, ",") {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}
