// Package main applies the transcript schema migrations embedded in the
// storage package.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/glyphspeak/internal/config"
	"github.com/cory-johannsen/glyphspeak/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 0, "number of steps (0 = all)")
	flag.Parse()

	// Only the database section is read; the rest of the file may be for a
	// different deployment.
	v := config.Defaults()
	v.SetConfigFile(*configPath)
	v.SetEnvPrefix("GLYPHSPEAK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("reading config: %v", err)
	}

	var dbCfg config.DatabaseConfig
	if err := unmarshalDatabase(v, &dbCfg); err != nil {
		log.Fatalf("parsing database config: %v", err)
	}

	res, err := postgres.Migrate(dbCfg.DSN(), *direction, *steps)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	elapsed := time.Since(start)
	if res.NoChange {
		fmt.Fprintf(os.Stdout, "no changes (version=%d dirty=%v) [%s]\n", res.Version, res.Dirty, elapsed)
		return
	}
	fmt.Fprintf(os.Stdout, "migrated %s to version=%d dirty=%v [%s]\n", *direction, res.Version, res.Dirty, elapsed)
}

func unmarshalDatabase(v *viper.Viper, out *config.DatabaseConfig) error {
	return v.UnmarshalKey("database", out)
}
