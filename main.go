// intentdesk - a terminal client for the community intent assistant.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jeranaias/intentdesk-tui/internal/api"
	"github.com/jeranaias/intentdesk-tui/internal/app"
	"github.com/jeranaias/intentdesk-tui/internal/cli"
	"github.com/jeranaias/intentdesk-tui/internal/config"
	"github.com/jeranaias/intentdesk-tui/internal/realtime"
	"github.com/jeranaias/intentdesk-tui/internal/server"
	"github.com/jeranaias/intentdesk-tui/internal/store"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI()
	case cli.CmdAsk:
		if err := cli.HandleAsk(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdServe:
		if err := runServe(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	}
}

// =============================================================================
// TUI
// =============================================================================

func runTUI() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: the TUI requires an interactive terminal (try 'intentdesk ask' in scripts)")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using defaults\n", err)
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	client := api.NewClient(cfg.Server.URL)

	sub := realtime.NewSubscriber(cfg.Server.SocketURL)
	sub.Start()
	defer sub.Close()

	p := tea.NewProgram(
		app.New(cfg, client, sub.Events()),
		tea.WithAltScreen(),
	)

	// Live-reload the config file; edits take effect without a restart.
	if path, err := config.Path(); err == nil {
		watcher, err := config.Watch(path, func(next *config.Config) {
			p.Send(app.ConfigReloadedMsg{Config: next})
		}, nil)
		if err == nil {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// STUB SERVER
// =============================================================================

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":5001", "listen address")
	dbPath := fs.String("db", "", "SQLite database path (default ~/.intentdesk/intentdesk.db)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	path := *dbPath
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
		path = filepath.Join(dir, "intentdesk.db")
	}

	repo, err := store.NewSQLiteRepository(path)
	if err != nil {
		return err
	}
	defer repo.Close()

	srv := &http.Server{
		Addr:              *addr,
		Handler:           server.New(repo, logger).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("stub server listening", "addr", *addr, "db", path)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
