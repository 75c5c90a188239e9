package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"golang.org/x/xerrors"

	"github.com/vuln-tools/euvd-mcp/euvd"
	"github.com/vuln-tools/euvd-mcp/server"
	"github.com/vuln-tools/euvd-mcp/settings"
)

const version = "0.1.0"

var (
	transport = flag.String("transport", "stdio", "MCP transport (stdio, http)")
	addr      = flag.String("addr", "", "listen address for the http transport (default from HOST/PORT)")
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()
	initLogger()

	cfg, err := settings.Load()
	if err != nil {
		return xerrors.Errorf("unable to load settings: %w", err)
	}

	client := euvd.NewClient(
		euvd.WithBaseURL(cfg.BaseURL),
		euvd.WithUserAgent(cfg.UserAgent),
		euvd.WithTimeout(cfg.Timeout),
		euvd.WithRetry(cfg.MaxRetries),
	)
	s := server.New(client, version)

	switch *transport {
	case "stdio":
		slog.Info("serving MCP over stdio")
		if err := mcpserver.ServeStdio(s); err != nil {
			return xerrors.Errorf("stdio server error: %w", err)
		}
	case "http":
		listenAddr := *addr
		if listenAddr == "" {
			listenAddr = cfg.Addr()
		}
		slog.Info("serving MCP over http", "addr", listenAddr)
		if err := mcpserver.NewStreamableHTTPServer(s).Start(listenAddr); err != nil {
			return xerrors.Errorf("http server error: %w", err)
		}
	default:
		return xerrors.Errorf("unknown transport %q", *transport)
	}
	return nil
}

// initLogger routes logs to stderr; stdout belongs to the stdio transport.
func initLogger() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		}),
	))
}
