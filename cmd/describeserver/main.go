// Package main runs the description server: the JSON line protocol over TCP
// and, when enabled, the MCP tool server over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/glyphspeak/internal/action"
	"github.com/cory-johannsen/glyphspeak/internal/config"
	"github.com/cory-johannsen/glyphspeak/internal/describe"
	"github.com/cory-johannsen/glyphspeak/internal/frontend/handlers"
	"github.com/cory-johannsen/glyphspeak/internal/frontend/telnet"
	"github.com/cory-johannsen/glyphspeak/internal/glyph"
	"github.com/cory-johannsen/glyphspeak/internal/mcpserver"
	"github.com/cory-johannsen/glyphspeak/internal/observability"
	"github.com/cory-johannsen/glyphspeak/internal/server"
	"github.com/cory-johannsen/glyphspeak/internal/storage/postgres"
	"github.com/cory-johannsen/glyphspeak/internal/storage/sqlite"
	"github.com/cory-johannsen/glyphspeak/internal/translate"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	catalogPath := flag.String("catalog", "", "override catalog.path from the configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting glyphspeak",
		zap.Bool("telnet", cfg.Telnet.Enabled),
		zap.Bool("mcp", cfg.MCP.Enabled),
		zap.Bool("transcripts", cfg.Transcripts.Enabled),
		zap.Bool("tracing", cfg.Tracing.Enabled),
	)

	catalog, err := glyph.LoadCatalogFromFile(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("loading catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
	}
	describer, err := describe.NewDescriber(catalog, logger)
	if err != nil {
		logger.Fatal("building describer", zap.Error(err))
	}

	actions := action.DefaultRegistry()
	if len(cfg.Actions.Allowed) > 0 {
		actions, err = actions.Restrict(cfg.Actions.Allowed)
		if err != nil {
			logger.Fatal("restricting actions", zap.Error(err))
		}
	}
	translator := translate.New(describer, actions)

	ctx := context.Background()
	lifecycle := server.NewLifecycle(logger)

	tracing, err := observability.InitTracing(ctx, cfg.Tracing)
	if err != nil {
		logger.Fatal("initializing tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(shutdownCtx); err != nil {
			logger.Warn("flushing spans", zap.Error(err))
		}
	}()

	// Left as nil interfaces when transcripts are disabled.
	var lineStore handlers.TranscriptStore
	var toolStore mcpserver.TranscriptStore
	if cfg.Transcripts.Enabled && cfg.Transcripts.Driver == "sqlite" {
		repo, err := sqlite.Open(cfg.Transcripts.SQLitePath)
		if err != nil {
			logger.Fatal("opening transcript database", zap.String("path", cfg.Transcripts.SQLitePath), zap.Error(err))
		}
		defer repo.Close()
		logger.Info("transcripts stored in sqlite", zap.String("path", cfg.Transcripts.SQLitePath))
		lineStore = repo
		toolStore = repo
	}
	if cfg.Transcripts.Enabled && cfg.Transcripts.Driver == "postgres" {
		dbStart := time.Now()
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		logger.Info("database connected",
			zap.String("host", cfg.Database.Host),
			zap.Int("port", cfg.Database.Port),
			zap.String("database", cfg.Database.Name),
			zap.Duration("elapsed", time.Since(dbStart)),
		)
		repo := postgres.NewTranscriptRepository(pool.DB())
		lineStore = repo
		toolStore = repo

		quit := make(chan struct{})
		lifecycle.Add("postgres", &server.FuncService{
			StartFn: func() error {
				ticker := time.NewTicker(30 * time.Second)
				defer ticker.Stop()
				for {
					select {
					case <-quit:
						return nil
					case <-ticker.C:
						if err := pool.Health(ctx, 5*time.Second); err != nil {
							logger.Warn("database health check failed", zap.Error(err))
						}
					}
				}
			},
			StopFn: func() {
				close(quit)
				pool.Close()
			},
		})
	}

	if cfg.Telnet.Enabled {
		handler := handlers.NewDescribeHandler(translator, lineStore, logger)
		acceptor := telnet.NewAcceptor(cfg.Telnet, handler, logger)
		lifecycle.Add("telnet", &server.FuncService{
			StartFn: acceptor.ListenAndServe,
			StopFn:  acceptor.Stop,
		})
	}

	if cfg.MCP.Enabled {
		tools := mcpserver.New(cfg.MCP, translator, toolStore, cfg.Transcripts.RecentLimit, logger)
		lifecycle.Add("mcp", &server.FuncService{
			StartFn: tools.ListenAndServe,
			StopFn:  tools.Stop,
		})
	}

	logger.Info("glyphspeak initialized",
		zap.Duration("startup", time.Since(start)),
		zap.Strings("services", lifecycle.Names()),
		zap.Int("actions", len(actions.Actions())),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
