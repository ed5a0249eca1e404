package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cornish/nodemap/app"
	"github.com/cornish/nodemap/config"
	"github.com/cornish/nodemap/graph"
	"github.com/cornish/nodemap/ui"
)

// runNodemap opens the graph named by args, or the sample graph.
func runNodemap(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := openLog(viper.GetString("log"))
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, cfgPath, cfgErr := loadConfig()
	opts := app.Options{Config: cfg, Logger: logger}
	var loadErr *config.ConfigLoadError
	if errors.As(cfgErr, &loadErr) {
		logger.Warn("config not loaded", "path", loadErr.FilePath, "err", loadErr.Err)
		opts.Message = fmt.Sprintf("Config error, using defaults: %v", loadErr.Err)
		opts.MessageType = "error"
	} else if cfgErr != nil {
		return cfgErr
	}

	caps := config.DetectCapabilities()
	ui.UseTrueColor = caps.ShouldUseTrueColor(cfg.Display.TrueColor)
	opts.ASCII = caps.ShouldUseASCII(cfg.Display.AsciiMode) || viper.GetBool("ascii")
	logger.Debug("terminal", "utf8", caps.UTF8Support, "color", caps.ColorMode, "ascii", opts.ASCII)

	if len(args) == 1 {
		g, err := graph.Load(args[0])
		if err != nil {
			return fmt.Errorf("open graph: %w", err)
		}
		logger.Info("graph loaded", "path", args[0], "nodes", len(g.Nodes), "encoding", g.Encoding)
		opts.Graph = g
		opts.Path = args[0]

		if cfgErr == nil && cfgPath != "" {
			cfg.AddRecentFile(args[0])
			if err := cfg.Save(cfgPath); err != nil {
				logger.Warn("saving recent files", "err", err)
			}
		}
	}

	p := tea.NewProgram(app.New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running nodemap: %w", err)
	}
	return nil
}

// openLog returns a debug logger writing to path. stdout belongs to the
// terminal UI, so with no path logs are discarded.
func openLog(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { f.Close() }, nil
}
