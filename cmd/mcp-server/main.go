// Package main provides the MCP server entry point for zkVerify documentation.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/zkverify-community/docs-mcp/internal/catalog"
	"github.com/zkverify-community/docs-mcp/internal/config"
	"github.com/zkverify-community/docs-mcp/internal/docs"
	"github.com/zkverify-community/docs-mcp/internal/markdown"
	mcpserver "github.com/zkverify-community/docs-mcp/internal/mcp"
)

func main() {
	// Load .env file if present (local development), ignore if missing (production)
	_ = godotenv.Load()

	// All diagnostics go to stderr; stdout is reserved for the stdio
	// transport payload.
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	// Create context that cancels on SIGTERM/SIGINT
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	// A topic without a bundled fallback is fatal: the resolver's
	// never-fails guarantee depends on catalog completeness.
	store, err := catalog.New()
	if err != nil {
		log.Fatal().Err(err).Msg("catalog verification failed")
	}

	fetcher := docs.NewFetcher(cfg.BaseURL, docs.WithTimeout(cfg.FetchTimeout()))
	extractor := docs.NewExtractor(cfg.MaxContentLength)
	resolver := docs.NewResolver(store, fetcher, extractor, log)

	server := mcpserver.NewServer(&mcpserver.Config{
		Resolver: resolver,
		Outliner: markdown.NewOutliner(),
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/", mcpserver.NewLandingHandler())
	mux.HandleFunc("/health", mcpserver.NewHealthHandler(fetcher, len(store.Topics())))
	mux.Handle("/mcp", mcpserver.NewHTTPHandler(server, nil))

	if cfg.ServerMode {
		// HTTP mode: serve MCP over HTTP for remote clients
		addr := "0.0.0.0:" + cfg.Port
		log.Info().Str("addr", addr).Msg("starting HTTP server (MCP at /mcp, health at /health)")
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
		return
	}

	// Stdio mode: run MCP over stdin/stdout for local clients, with the
	// health endpoint in the background for local testing.
	go func() {
		addr := "0.0.0.0:" + cfg.Port
		log.Info().Str("addr", addr).Msg("starting health server")
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Warn().Err(err).Msg("health server error")
		}
	}()

	log.Info().
		Str("origin", cfg.BaseURL).
		Int("topics", len(store.Topics())).
		Msg("starting zkVerify docs MCP server (stdio mode)")
	if err := server.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server error")
		os.Exit(1)
	}
}
