package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fletnix/fletnix/internal/api"
	"github.com/fletnix/fletnix/internal/config"
	"github.com/fletnix/fletnix/internal/log"
	"github.com/fletnix/fletnix/internal/service"
	"github.com/fletnix/fletnix/internal/session"
	"github.com/fletnix/fletnix/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("fletnix %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("fletnix must run in a terminal")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting fletnix", "version", Version, "api", cfg.API.URL)

	// The session store lives for the process lifetime and restores any
	// stored token and user before the first view mounts.
	sessions, err := session.Open(cfg.SessionPath(), logger)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer sessions.Close()

	client := api.NewClient(cfg.API.URL, cfg.API.Timeout, logger)
	authSvc := service.NewAuthService(client, sessions, logger)
	catalogSvc := service.NewCatalogService(client, sessions, logger)

	model := tui.NewModel(authSvc, catalogSvc, sessions, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
