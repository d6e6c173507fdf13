// File: run.go
// Title: REPL Entry Point
// Description: Builds the transpiler, interpreter session, and history
//              store for the REPL and runs the Bubbletea program.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-21
// Modified: 2026-06-21
//
// Change History:
// - 2026-06-21 v0.1.0: Initial implementation

package repl

import (
	tea "github.com/charmbracelet/bubbletea"

	coreerror "github.com/brahmic-lang/brahmic/internal/core/error"
	corelog "github.com/brahmic-lang/brahmic/internal/core/log"
	"github.com/brahmic-lang/brahmic/internal/history"
	"github.com/brahmic-lang/brahmic/internal/runner"
	"github.com/brahmic-lang/brahmic/pkg/teng"
)

// Run starts the REPL and blocks until the user quits.
func Run(cfg Config) error {
	logger := cfg.Logger
	if logger == nil {
		logger = corelog.GetDefault()
	}

	transpiler, err := teng.New(teng.Options{Logger: logger})
	if err != nil {
		return coreerror.Wrap(err, "cannot create transpiler").
			WithCode(coreerror.CodeInternal).
			WithOperation("repl.Run")
	}

	session, err := runner.NewSession(logger)
	if err != nil {
		return err
	}
	defer session.Close()

	// History persistence is best-effort: the REPL works without it.
	var store *history.Store
	if cfg.HistoryPath != "" {
		store, err = history.Open(history.Config{Path: cfg.HistoryPath})
		if err != nil {
			logger.WarnWithErr("history store unavailable", err)
		} else {
			defer store.Close()
		}
	}

	p := tea.NewProgram(New(cfg, transpiler, session, store), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
