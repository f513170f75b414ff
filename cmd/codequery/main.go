package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"codequery/internal/config"
	"codequery/internal/index"
	"codequery/internal/mcp"
	"codequery/internal/provider"
	"codequery/internal/rag"
)

var version = "dev"

func main() {
	cfg := config.Load()

	// Logs go to stderr; stdout is reserved for the MCP protocol.
	log := newLogger(cfg.LogLevel)
	log.Info().Str("version", version).Str("provider", cfg.Provider.Key).Msg("codequery starting")

	prov, err := provider.New(cfg.Provider, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize provider")
	}

	ix := index.New(index.NewMemoryStore(), prov, log)
	ix.SetWorkers(cfg.Workers)
	service := rag.NewService(ix, prov, log)

	server := mcp.NewServer(ix, service, prov, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		log.Info().Msg("MCP server ready, listening on stdio")
		errChan <- server.Serve(ctx)
	}()

	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		cancel()
	case err := <-errChan:
		if err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}

	log.Info().Msg("server stopped")
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}
