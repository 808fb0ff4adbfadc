// folio-tui is the terminal edition of the portfolio.
//
// Usage:
//
//	folio-tui [flags]
//
// Flags:
//
//	--content  Directory holding profile.yaml and projects.yaml (default: embedded data)
//	--log      Log file path (default: $TMPDIR/folio-tui.log)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zachkp/folio/internal/carousel"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/tui"
	"github.com/Zachkp/folio/internal/typing"
	"github.com/Zachkp/folio/pkg/logger"
)

func main() {
	contentDir := flag.String("content", "", "Directory holding profile.yaml and projects.yaml")
	logPath := flag.String("log", filepath.Join(os.TempDir(), "folio-tui.log"), "Log file path")
	flag.Parse()

	if err := run(*contentDir, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func run(contentDir, logPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the program; logs go to a file.
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	logger.InitWriter(f)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		_ = logger.SetLevelString("info")
	}
	log := logger.Get()

	if contentDir == "" {
		contentDir = cfg.ContentDir
	}
	site, err := content.Default()
	if contentDir != "" {
		site, err = content.FromDir(contentDir)
	}
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model, err := tui.NewModel(ctx, site, tui.Options{
		Timing: typing.Timing{
			Interval: cfg.TypingInterval(),
			Pause:    cfg.TypingPause(),
			Blink:    cfg.CursorBlink(),
		},
		Carousel: []carousel.Option{carousel.WithDuration(cfg.Transition())},
		Log:      log,
	})
	if err != nil {
		return err
	}

	log.Info(ctx, "starting tui", logger.Int("projects", len(site.Projects)))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	log.Info(ctx, "tui stopped")
	return nil
}
